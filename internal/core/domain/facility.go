package domain

import (
	"encoding/json"
	"fmt"

	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/json_types"
)

type FacilityType string

const (
	FacilityTypeRooms       FacilityType = "rooms"
	FacilityTypeHalls       FacilityType = "halls"
	FacilityTypeLawns       FacilityType = "lawns"
	FacilityTypePhotoshoots FacilityType = "photoshoots"
)

var facilityTypes = map[string]FacilityType{
	"rooms":       FacilityTypeRooms,
	"halls":       FacilityTypeHalls,
	"lawns":       FacilityTypeLawns,
	"photoshoots": FacilityTypePhotoshoots,
}

func ParseFacilityType(str string) (FacilityType, error) {
	if ft, ok := facilityTypes[str]; ok {
		return ft, nil
	}
	return "", fmt.Errorf("unknown facility type: %s", str)
}

type RoomType struct {
	ID   json_types.FlexID `json:"id"`
	Type string            `json:"type"`
}

// Facility - бронируемая единица: номер, зал, лужайка или фотослот
type Facility struct {
	ID           json_types.FlexID
	Type         FacilityType
	Name         string
	RoomNumber   string
	RoomType     *RoomType
	Capacity     int
	Area         float64
	Duration     int
	Bookings     []Booking
	Reservations []Reservation
	OutOfOrders  []OutOfOrder
}

// UnmarshalJSON схлопывает разъехавшиеся поля PSC API в каноничную схему:
// номер комнаты приходит как roomNumber, roomNo или roomName,
// название - как name или title
func (f *Facility) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID           json_types.FlexID `json:"id"`
		Name         string            `json:"name"`
		Title        string            `json:"title"`
		RoomNumber   string            `json:"roomNumber"`
		RoomNo       string            `json:"roomNo"`
		RoomName     string            `json:"roomName"`
		RoomType     *RoomType         `json:"roomType"`
		Capacity     int               `json:"capacity"`
		Area         float64           `json:"area"`
		Duration     int               `json:"duration"`
		Bookings     []Booking         `json:"bookings"`
		Reservations []Reservation     `json:"reservations"`
		OutOfOrders  []OutOfOrder      `json:"outOfOrders"`
	}

	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	f.ID = wire.ID
	f.Name = wire.Name
	if f.Name == "" {
		f.Name = wire.Title
	}

	f.RoomNumber = wire.RoomNumber
	if f.RoomNumber == "" {
		f.RoomNumber = wire.RoomNo
	}
	if f.RoomNumber == "" {
		f.RoomNumber = wire.RoomName
	}

	f.RoomType = wire.RoomType
	f.Capacity = wire.Capacity
	f.Area = wire.Area
	f.Duration = wire.Duration
	f.Bookings = wire.Bookings
	f.Reservations = wire.Reservations
	f.OutOfOrders = wire.OutOfOrders

	return nil
}

func (f Facility) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID           json_types.FlexID `json:"id"`
		Name         string            `json:"name,omitempty"`
		RoomNumber   string            `json:"roomNumber,omitempty"`
		RoomType     *RoomType         `json:"roomType,omitempty"`
		Capacity     int               `json:"capacity,omitempty"`
		Area         float64           `json:"area,omitempty"`
		Duration     int               `json:"duration,omitempty"`
		Bookings     []Booking         `json:"bookings"`
		Reservations []Reservation     `json:"reservations"`
		OutOfOrders  []OutOfOrder      `json:"outOfOrders"`
	}{f.ID, f.Name, f.RoomNumber, f.RoomType, f.Capacity, f.Area, f.Duration, f.Bookings, f.Reservations, f.OutOfOrders})
}

// DisplayName - человекочитаемое имя для списков событий
func (f Facility) DisplayName() string {
	if f.Type == FacilityTypeRooms {
		if f.RoomNumber != "" {
			return "Room " + f.RoomNumber
		}
		if f.ID != "" {
			return "Room " + f.ID.String()
		}
		return "Room N/A"
	}

	if f.Name != "" {
		return f.Name
	}
	if f.ID != "" {
		return "Facility " + f.ID.String()
	}
	return "Unknown Facility"
}
