package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hms-backend/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Options are application-level knobs read from the environment.
type Options struct {
	// RecomputeRoomStatusOnCancel controls whether cancelling a booking
	// re-derives the cached room status from the remaining bookings, or
	// leaves the hint as-is. The hint is advisory either way.
	RecomputeRoomStatusOnCancel bool
}

func LoadOptions() Options {
	return Options{
		RecomputeRoomStatusOnCancel: strings.EqualFold(
			envOrDefault("RECOMPUTE_ROOM_STATUS_ON_CANCEL", "false"), "true"),
	}
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// Migrate applies the schema for every entity. Shared with tests, which run
// the same migrations against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Room{},
		&models.Guest{},
		&models.Booking{},
		&models.Service{},
		&models.BookingServiceItem{},
		&models.Payment{},
		&models.CleaningSchedule{},
	)
}

// SeedDatabase fills an empty database with a starter room inventory and
// service catalog so a fresh install is usable immediately.
func SeedDatabase(db *gorm.DB) {
	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{RoomNumber: "101", Type: "Basic", Capacity: 2, PricePerNight: 50, Status: models.RoomStatusAvailable, Floor: "1"},
			{RoomNumber: "102", Type: "Basic", Capacity: 2, PricePerNight: 50, Status: models.RoomStatusAvailable, Floor: "1"},
			{RoomNumber: "201", Type: "Advanced", Capacity: 3, PricePerNight: 80, Status: models.RoomStatusAvailable, Floor: "2"},
			{RoomNumber: "202", Type: "Business", Capacity: 2, PricePerNight: 120, Status: models.RoomStatusAvailable, Floor: "2"},
			{RoomNumber: "301", Type: "Dorm", Capacity: 6, PricePerNight: 25, Status: models.RoomStatusAvailable, Floor: "3"},
		}
		if err := db.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("rooms seeded")
		}
	}

	var serviceCount int64
	db.Model(&models.Service{}).Count(&serviceCount)
	if serviceCount == 0 {
		services := []models.Service{
			{Name: "Breakfast", Description: "Continental breakfast", Price: 10, IsActive: true},
			{Name: "Laundry", Description: "Per load", Price: 8, IsActive: true},
			{Name: "Airport transfer", Description: "One way", Price: 30, IsActive: true},
		}
		if err := db.Create(&services).Error; err != nil {
			log.Printf("warning: failed to seed services: %v", err)
		} else {
			log.Println("service catalog seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	if err := Migrate(db); err != nil {
		return err
	}

	DB = db
	SeedDatabase(db)
	return nil
}
