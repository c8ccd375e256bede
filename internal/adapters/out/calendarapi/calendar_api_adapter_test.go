package calendarapi

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Atif-Muhammad/psc-calendar-svc/internal/adapters/out/logger"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/config"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/domain"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/ports/out"
)

func newTestAdapter(t *testing.T, baseURL string) *CalendarApiAdapter {
	t.Helper()

	cfg := &config.Config{}
	cfg.CalendarApi.URL = baseURL
	cfg.CalendarApi.Username = "svc"
	cfg.CalendarApi.Password = "secret"

	log, err := logger.NewConsoleLogger("UTC")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	return NewCalendarApiAdapter(cfg, log)
}

func TestGetFacilitiesRequestShape(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	adapter := newTestAdapter(t, server.URL)

	query := out.FacilityQuery{StartDate: "2024-08-01", EndDate: "2024-08-31", RoomNumber: "101"}
	if _, err := adapter.GetFacilities(context.Background(), domain.FacilityTypeRooms, query); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/calendar/rooms" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotQuery != "endDate=2024-08-31&roomNumber=101&startDate=2024-08-01" {
		t.Fatalf("unexpected query %q", gotQuery)
	}

	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("svc:secret"))
	if gotAuth != wantAuth {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
}

func TestGetFacilitiesOmitsEmptyParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	adapter := newTestAdapter(t, server.URL)

	if _, err := adapter.GetFacilities(context.Background(), domain.FacilityTypeHalls, out.FacilityQuery{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "" {
		t.Fatalf("empty params must be omitted, got %q", gotQuery)
	}
}

func TestGetFacilitiesSetsTypeAndNormalizesSchema(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "roomNo": "101", "bookings": [{"id": 11, "checkIn": "2024-08-01", "checkOut": "garbage"}]},
			{"id": "2", "title": "Crystal Hall"}
		]`))
	}))
	defer server.Close()

	adapter := newTestAdapter(t, server.URL)

	facilities, err := adapter.GetFacilities(context.Background(), domain.FacilityTypeRooms, out.FacilityQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(facilities) != 2 {
		t.Fatalf("expected 2 facilities, got %d", len(facilities))
	}
	for _, f := range facilities {
		if f.Type != domain.FacilityTypeRooms {
			t.Fatalf("facility type must be set from the request, got %q", f.Type)
		}
	}
	if facilities[0].RoomNumber != "101" {
		t.Fatalf("roomNo must map onto RoomNumber, got %q", facilities[0].RoomNumber)
	}
	if facilities[1].Name != "Crystal Hall" {
		t.Fatalf("title must map onto Name, got %q", facilities[1].Name)
	}

	bookings := facilities[0].Bookings
	if len(bookings) != 1 || bookings[0].CheckIn.IsZero() || !bookings[0].CheckOut.IsZero() {
		t.Fatalf("lenient dates expected, got %+v", bookings)
	}
}

func TestGetFacilitiesNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	adapter := newTestAdapter(t, server.URL)

	if _, err := adapter.GetFacilities(context.Background(), domain.FacilityTypeRooms, out.FacilityQuery{}); err == nil {
		t.Fatal("expected an error for non-200 response")
	}
}

func TestGetFacilitiesUnknownType(t *testing.T) {
	adapter := newTestAdapter(t, "http://localhost:0")

	if _, err := adapter.GetFacilities(context.Background(), domain.FacilityType("suites"), out.FacilityQuery{}); err == nil {
		t.Fatal("expected an error for unknown facility type")
	}
}
