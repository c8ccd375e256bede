package utils

import (
	"testing"
	"time"

	"github.com/Atif-Muhammad/psc-calendar-svc/internal/config"
)

func TestStartCurrentDay(t *testing.T) {
	now := time.Date(2024, time.June, 1, 18, 45, 12, 300, time.Local)
	got := StartCurrentDay(now)

	want := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestStartNextDay(t *testing.T) {
	now := time.Date(2024, time.June, 30, 23, 59, 0, 0, time.Local)
	got := StartNextDay(now)

	want := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLocalDayNormalizesZone(t *testing.T) {
	// 23:30 UTC того же дня в восточной таймзоне уже следующий день
	instant := time.Date(2024, time.June, 1, 23, 30, 0, 0, time.UTC)
	got := LocalDay(instant)

	want := StartCurrentDay(instant.In(config.TimeZone))
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Fatalf("LocalDay must produce midnight, got %v", got)
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.Local)
	evening := time.Date(2024, time.June, 1, 22, 0, 0, 0, time.Local)
	nextDay := time.Date(2024, time.June, 2, 0, 0, 0, 0, time.Local)

	if !SameDay(morning, evening) {
		t.Fatal("same calendar day must match")
	}
	if SameDay(evening, nextDay) {
		t.Fatal("different days must not match")
	}
}

func TestDateKey(t *testing.T) {
	d := time.Date(2024, time.June, 1, 15, 4, 5, 0, time.Local)
	if got := DateKey(d); got != "2024-06-01" {
		t.Fatalf("got %q", got)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"rfc3339", "2024-06-01T14:30:00+05:00"},
		{"naive datetime", "2024-06-01T14:30:00"},
		{"date only", "2024-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Year() != 2024 || got.Month() != time.June || got.Day() != 1 {
				t.Fatalf("got %v", got)
			}
		})
	}

	if _, err := ParseDate("01.06.2024"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
