package domain

import "strconv"

// DayMark - агрегат по одному дню календаря.
// Count хранится точным, ограничение "9+" - чисто отображательное
type DayMark struct {
	Count int    `json:"count"`
	Color string `json:"color"`
}

func (m DayMark) DisplayCount() string {
	if m.Count > 9 {
		return "9+"
	}
	return strconv.Itoa(m.Count)
}

type CalendarEventType string

const (
	CalendarEventTypeBooking     CalendarEventType = "booking"
	CalendarEventTypeReservation CalendarEventType = "reservation"
	CalendarEventTypeOutOfOrder  CalendarEventType = "outOfOrder"
	CalendarEventTypeStatus      CalendarEventType = "status"
)

// CalendarEvent - элемент списка событий выбранного дня.
// Для фильтра ALL это записи уровня брони/резерва/ремонта,
// для остальных фильтров - записи уровня помещения с его статусом
type CalendarEvent struct {
	Type        CalendarEventType `json:"type"`
	Facility    Facility          `json:"facility"`
	Booking     *Booking          `json:"booking,omitempty"`
	Reservation *Reservation      `json:"reservation,omitempty"`
	OutOfOrder  *OutOfOrder       `json:"outOfOrder,omitempty"`
	Status      FacilityStatus    `json:"status,omitempty"`
	IsCancelled bool              `json:"isCancelled,omitempty"`
	IsConfirmed bool              `json:"isConfirmed,omitempty"`
}

// Statistics - сводка по коллекции помещений на сегодня
type Statistics struct {
	Total            int `json:"total"`
	Booked           int `json:"booked"`
	Available        int `json:"available"`
	Reserved         int `json:"reserved"`
	Maintenance      int `json:"maintenance"`
	OccupancyRate    int `json:"occupancyRate"`
	AvailabilityRate int `json:"availabilityRate"`
}

// OccupancySnapshot - разбиение помещений на свободные и занятые на сегодня
type OccupancySnapshot struct {
	Available []Facility `json:"available"`
	Occupied  []Facility `json:"occupied"`
}
