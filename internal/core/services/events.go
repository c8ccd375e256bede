package services

import (
	"time"

	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/domain"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/utils"
)

// ListEventsOnDate собирает список событий для выбранного дня календаря.
//
// Два режима работают по-разному и намеренно не объединены:
//   - ALL: по одной записи на каждую бронь/резерв/ремонт, накрывающие день;
//   - конкретный статус: по одной записи на каждое помещение,
//     чей статус на этот день совпадает с фильтром
func ListEventsOnDate(facilities []domain.Facility, date time.Time, filter domain.StatusFilter) []domain.CalendarEvent {
	events := make([]domain.CalendarEvent, 0)
	day := utils.LocalDay(date)

	if filter != domain.StatusFilterAll {
		for _, facility := range facilities {
			status := ResolveStatusOnDate(facility, day)
			if status == domain.FacilityStatus(filter) {
				events = append(events, domain.CalendarEvent{
					Type:     domain.CalendarEventTypeStatus,
					Facility: facility,
					Status:   status,
				})
			}
		}
		return events
	}

	for _, facility := range facilities {
		// Отмененные брони попадают в общий список, но с флагом isCancelled
		for i := range facility.Bookings {
			booking := facility.Bookings[i]
			if !bookingCoversDay(booking, day) {
				continue
			}
			events = append(events, domain.CalendarEvent{
				Type:        domain.CalendarEventTypeBooking,
				Facility:    facility,
				Booking:     &facility.Bookings[i],
				IsCancelled: booking.IsCancelled(),
				IsConfirmed: booking.IsConfirmed(),
			})
		}

		for i := range facility.Reservations {
			if !reservationCoversDay(facility.Reservations[i], day) {
				continue
			}
			events = append(events, domain.CalendarEvent{
				Type:        domain.CalendarEventTypeReservation,
				Facility:    facility,
				Reservation: &facility.Reservations[i],
			})
		}

		for i := range facility.OutOfOrders {
			if !outOfOrderCoversDay(facility.OutOfOrders[i], day) {
				continue
			}
			events = append(events, domain.CalendarEvent{
				Type:       domain.CalendarEventTypeOutOfOrder,
				Facility:   facility,
				OutOfOrder: &facility.OutOfOrders[i],
			})
		}
	}

	return events
}
