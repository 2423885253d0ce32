package services

import (
	"fmt"
	"strings"
	"testing"

	"hms-backend/config"
	"hms-backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	// One connection keeps the shared in-memory database alive for the test.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func createRoom(t *testing.T, db *gorm.DB, number string, capacity int) models.Room {
	t.Helper()
	room := models.Room{
		RoomNumber:    number,
		Type:          "Basic",
		Capacity:      capacity,
		PricePerNight: 50,
		Status:        models.RoomStatusAvailable,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("create room %s: %v", number, err)
	}
	return room
}

func createGuest(t *testing.T, db *gorm.DB, passport string) models.Guest {
	t.Helper()
	guest := models.Guest{
		PassportNumber: passport,
		FirstName:      "Ivan",
		LastName:       "Petrov",
		Phone:          "+7 900 123-45-67",
	}
	if err := db.Create(&guest).Error; err != nil {
		t.Fatalf("create guest %s: %v", passport, err)
	}
	return guest
}

func createBooking(t *testing.T, db *gorm.DB, roomID, guestID uint, checkIn, checkOut string, status string) models.Booking {
	t.Helper()
	in, err := models.ParseDate(checkIn)
	if err != nil {
		t.Fatalf("bad check-in %s: %v", checkIn, err)
	}
	out, err := models.ParseDate(checkOut)
	if err != nil {
		t.Fatalf("bad check-out %s: %v", checkOut, err)
	}
	booking := models.Booking{
		GuestID:      guestID,
		RoomID:       roomID,
		CheckInDate:  in,
		CheckOutDate: out,
		Adults:       1,
		Status:       status,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return booking
}

func guestInput(passport string) GuestInput {
	return GuestInput{
		PassportNumber: passport,
		FirstName:      "Anna",
		LastName:       "Smirnova",
		Phone:          "+7 911 000-11-22",
	}
}
