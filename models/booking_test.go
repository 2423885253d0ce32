package models

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2024-06-01" {
		t.Errorf("got %s, want 2024-06-01", d)
	}

	for _, bad := range []string{"", "01.06.2024", "2024-13-40", "not-a-date", "2024-06-01T00:00:00Z"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestBookingOverlaps(t *testing.T) {
	booking := Booking{
		CheckInDate:  NewDate(2024, time.June, 1),
		CheckOutDate: NewDate(2024, time.June, 5),
	}

	tests := []struct {
		name     string
		checkIn  Date
		checkOut Date
		want     bool
	}{
		{"identical range", NewDate(2024, time.June, 1), NewDate(2024, time.June, 5), true},
		{"contained", NewDate(2024, time.June, 2), NewDate(2024, time.June, 4), true},
		{"partial front", NewDate(2024, time.May, 30), NewDate(2024, time.June, 2), true},
		{"partial back", NewDate(2024, time.June, 4), NewDate(2024, time.June, 8), true},
		{"surrounding", NewDate(2024, time.May, 1), NewDate(2024, time.July, 1), true},
		{"adjacent after", NewDate(2024, time.June, 5), NewDate(2024, time.June, 8), false},
		{"adjacent before", NewDate(2024, time.May, 28), NewDate(2024, time.June, 1), false},
		{"disjoint", NewDate(2024, time.July, 1), NewDate(2024, time.July, 3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := booking.Overlaps(tt.checkIn, tt.checkOut); got != tt.want {
				t.Errorf("Overlaps(%s, %s) = %v, want %v", tt.checkIn, tt.checkOut, got, tt.want)
			}
		})
	}
}

func TestBookingCoversAndNights(t *testing.T) {
	booking := Booking{
		CheckInDate:  NewDate(2024, time.June, 1),
		CheckOutDate: NewDate(2024, time.June, 5),
	}

	if n := booking.Nights(); n != 4 {
		t.Errorf("Nights() = %d, want 4", n)
	}
	if !booking.Covers(NewDate(2024, time.June, 1)) {
		t.Error("check-in night should be covered")
	}
	if !booking.Covers(NewDate(2024, time.June, 4)) {
		t.Error("last night should be covered")
	}
	if booking.Covers(NewDate(2024, time.June, 5)) {
		t.Error("check-out day must not be covered (half-open)")
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan("2024-06-01 00:00:00+00:00"); err != nil {
		t.Fatalf("Scan(string): %v", err)
	}
	if d.String() != "2024-06-01" {
		t.Errorf("got %s, want 2024-06-01", d)
	}

	if err := d.Scan(time.Date(2024, time.June, 2, 13, 45, 0, 0, time.Local)); err != nil {
		t.Fatalf("Scan(time.Time): %v", err)
	}
	if d.String() != "2024-06-02" {
		t.Errorf("got %s, want 2024-06-02 (time-of-day must be dropped)", d)
	}
}
