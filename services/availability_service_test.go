package services

import (
	"testing"

	"hms-backend/models"
)

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return d
}

func TestIsAvailable(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db)

	room := createRoom(t, db, "101", 2)
	guest := createGuest(t, db, "AB1234567")
	createBooking(t, db, room.ID, guest.ID, "2024-06-01", "2024-06-05", models.BookingStatusConfirmed)

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{"overlapping", "2024-06-04", "2024-06-06", false},
		{"contained", "2024-06-02", "2024-06-03", false},
		{"identical", "2024-06-01", "2024-06-05", false},
		{"adjacent after check-out", "2024-06-05", "2024-06-08", true},
		{"adjacent before check-in", "2024-05-28", "2024-06-01", true},
		{"disjoint", "2024-07-01", "2024-07-05", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.IsAvailable(room.ID, mustDate(t, tt.checkIn), mustDate(t, tt.checkOut))
			if err != nil {
				t.Fatalf("IsAvailable: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsAvailable(%s, %s) = %v, want %v", tt.checkIn, tt.checkOut, got, tt.want)
			}

			// IsAvailable is false iff a conflicting booking exists.
			conflict, err := svc.FindConflictingBooking(room.ID, mustDate(t, tt.checkIn), mustDate(t, tt.checkOut))
			if err != nil {
				t.Fatalf("FindConflictingBooking: %v", err)
			}
			if (conflict == nil) != got {
				t.Errorf("conflict lookup disagrees with IsAvailable: conflict=%v available=%v", conflict, got)
			}
		})
	}
}

func TestIsAvailableIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db)

	room := createRoom(t, db, "101", 2)
	guest := createGuest(t, db, "AB1234567")
	createBooking(t, db, room.ID, guest.ID, "2024-06-01", "2024-06-05", models.BookingStatusConfirmed)

	in, out := mustDate(t, "2024-06-03"), mustDate(t, "2024-06-07")
	first, err := svc.IsAvailable(room.ID, in, out)
	if err != nil {
		t.Fatalf("IsAvailable: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := svc.IsAvailable(room.ID, in, out)
		if err != nil {
			t.Fatalf("IsAvailable: %v", err)
		}
		if again != first {
			t.Fatalf("result changed between calls with no writes: %v then %v", first, again)
		}
	}
}

func TestCancelledBookingsDoNotConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db)

	room := createRoom(t, db, "101", 2)
	guest := createGuest(t, db, "AB1234567")
	createBooking(t, db, room.ID, guest.ID, "2024-06-01", "2024-06-05", models.BookingStatusCancelled)

	available, err := svc.IsAvailable(room.ID, mustDate(t, "2024-06-01"), mustDate(t, "2024-06-05"))
	if err != nil {
		t.Fatalf("IsAvailable: %v", err)
	}
	if !available {
		t.Error("cancelled bookings must be excluded from overlap checks")
	}
}

func TestCheckedInBookingsStillConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db)

	room := createRoom(t, db, "101", 2)
	guest := createGuest(t, db, "AB1234567")
	createBooking(t, db, room.ID, guest.ID, "2024-06-01", "2024-06-05", models.BookingStatusCheckedIn)

	available, err := svc.IsAvailable(room.ID, mustDate(t, "2024-06-02"), mustDate(t, "2024-06-04"))
	if err != nil {
		t.Fatalf("IsAvailable: %v", err)
	}
	if available {
		t.Error("checked-in bookings must still block the room")
	}
}

func TestAnnotateRoomsWithRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db)

	busy := createRoom(t, db, "101", 2)
	free := createRoom(t, db, "102", 2)
	guest := createGuest(t, db, "AB1234567")
	createBooking(t, db, busy.ID, guest.ID, "2024-06-01", "2024-06-05", models.BookingStatusConfirmed)

	in, out := mustDate(t, "2024-06-02"), mustDate(t, "2024-06-04")
	annotated, err := svc.AnnotateRooms([]models.Room{busy, free}, &in, &out)
	if err != nil {
		t.Fatalf("AnnotateRooms: %v", err)
	}
	if len(annotated) != 2 {
		t.Fatalf("got %d rooms, want 2", len(annotated))
	}

	byNumber := map[string]RoomAvailability{}
	for _, ra := range annotated {
		byNumber[ra.RoomNumber] = ra
	}
	if byNumber["101"].Available || byNumber["101"].DynamicStatus != models.RoomStatusOccupied {
		t.Errorf("room 101 should be occupied for the range: %+v", byNumber["101"])
	}
	if !byNumber["102"].Available || byNumber["102"].DynamicStatus != models.RoomStatusAvailable {
		t.Errorf("room 102 should be free for the range: %+v", byNumber["102"])
	}
}

func TestAnnotateRoomsWithoutRangeFallsBackToCachedStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db)

	room := createRoom(t, db, "101", 2)
	guest := createGuest(t, db, "AB1234567")
	// A future booking exists but without a range only the hint is consulted.
	createBooking(t, db, room.ID, guest.ID, "2031-01-01", "2031-01-05", models.BookingStatusConfirmed)

	annotated, err := svc.AnnotateRooms([]models.Room{room}, nil, nil)
	if err != nil {
		t.Fatalf("AnnotateRooms: %v", err)
	}
	if !annotated[0].Available || annotated[0].DynamicStatus != models.RoomStatusAvailable {
		t.Errorf("date-less query must use the cached status: %+v", annotated[0])
	}
}
