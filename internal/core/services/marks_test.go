package services

import (
	"testing"
	"time"

	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/domain"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/json_types"
)

func TestBuildCalendarMarksCountsCheckInsOnly(t *testing.T) {
	facilities := []domain.Facility{
		{
			Bookings: []domain.Booking{
				booking(wireDate(2024, time.August, 1), wireDate(2024, time.August, 5)),
			},
		},
		{
			Bookings: []domain.Booking{
				booking(wireDate(2024, time.August, 1), wireDate(2024, time.August, 3)),
			},
		},
	}

	marks := BuildCalendarMarks(facilities, domain.StatusFilterAll)

	mark, ok := marks["2024-08-01"]
	if !ok {
		t.Fatal("expected a mark on the shared check-in day")
	}
	if mark.Count != 2 {
		t.Fatalf("expected count 2 on 2024-08-01, got %d", mark.Count)
	}

	// Середина и конец интервала меток не получают
	for _, key := range []string{"2024-08-02", "2024-08-03", "2024-08-05"} {
		if _, ok := marks[key]; ok {
			t.Fatalf("unexpected mark on %s", key)
		}
	}
}

func TestBuildCalendarMarksAllKeepsCancelled(t *testing.T) {
	cancelled := booking(wireDate(2024, time.August, 1), wireDate(2024, time.August, 3))
	cancelled.PaymentStatus = domain.BookingTagCancelled

	facilities := []domain.Facility{
		{Bookings: []domain.Booking{cancelled}},
	}

	allMarks := BuildCalendarMarks(facilities, domain.StatusFilterAll)
	if mark, ok := allMarks["2024-08-01"]; !ok || mark.Count != 1 {
		t.Fatalf("ALL must count cancelled bookings, got %+v", allMarks)
	}

	bookedMarks := BuildCalendarMarks(facilities, domain.StatusFilterBooked)
	if _, ok := bookedMarks["2024-08-01"]; ok {
		t.Fatal("BOOKED filter must skip cancelled bookings")
	}
}

func TestBuildCalendarMarksFilteredByKind(t *testing.T) {
	facilities := []domain.Facility{
		{
			Bookings: []domain.Booking{
				booking(wireDate(2024, time.August, 1), wireDate(2024, time.August, 3)),
			},
			Reservations: []domain.Reservation{
				reservation(wireDate(2024, time.August, 2), wireDate(2024, time.August, 4)),
			},
			OutOfOrders: []domain.OutOfOrder{
				outOfOrder(wireDate(2024, time.August, 3), wireDate(2024, time.August, 6)),
			},
		},
	}

	reserved := BuildCalendarMarks(facilities, domain.StatusFilterReserved)
	if len(reserved) != 1 {
		t.Fatalf("expected exactly one reserved mark, got %d", len(reserved))
	}
	if mark := reserved["2024-08-02"]; mark == nil || mark.Count != 1 {
		t.Fatalf("expected reserved mark on 2024-08-02, got %+v", reserved)
	}
	if reserved["2024-08-02"].Color != domain.StatusFilterReserved.Color() {
		t.Fatalf("unexpected reserved color %s", reserved["2024-08-02"].Color)
	}

	maintenance := BuildCalendarMarks(facilities, domain.StatusFilterMaintenance)
	if mark := maintenance["2024-08-03"]; mark == nil || mark.Count != 1 {
		t.Fatalf("expected maintenance mark on 2024-08-03, got %+v", maintenance)
	}
}

func TestBuildCalendarMarksAvailableProducesNothing(t *testing.T) {
	facilities := []domain.Facility{
		{
			Bookings: []domain.Booking{
				booking(wireDate(2024, time.August, 1), wireDate(2024, time.August, 3)),
			},
		},
	}

	marks := BuildCalendarMarks(facilities, domain.StatusFilterAvailable)
	if len(marks) != 0 {
		t.Fatalf("AVAILABLE filter must produce no marks, got %d", len(marks))
	}
}

func TestBuildCalendarMarksSkipsRecordsWithoutStart(t *testing.T) {
	facilities := []domain.Facility{
		{
			Bookings: []domain.Booking{
				booking(json_types.DateTimeOrEmpty{}, wireDate(2024, time.August, 3)),
			},
		},
	}

	marks := BuildCalendarMarks(facilities, domain.StatusFilterAll)
	if len(marks) != 0 {
		t.Fatalf("records without start date must be skipped, got %+v", marks)
	}
}

func TestDayMarkDisplayCount(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{1, "1"},
		{9, "9"},
		{10, "9+"},
		{42, "9+"},
	}

	for _, tt := range tests {
		mark := domain.DayMark{Count: tt.count}
		if got := mark.DisplayCount(); got != tt.want {
			t.Fatalf("DisplayCount(%d) = %s, want %s", tt.count, got, tt.want)
		}
	}
}
