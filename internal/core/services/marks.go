package services

import (
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/domain"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/utils"
)

func addMark(marks map[string]*domain.DayMark, key string, color string) {
	mark, ok := marks[key]
	if !ok {
		mark = &domain.DayMark{Color: color}
		marks[key] = mark
	}
	mark.Count++
}

// BuildCalendarMarks считает события на каждый день календаря.
// Метка ставится только на первый день интервала: день заезда брони,
// начало резерва, начало ремонта.
//
// Путь ALL не отбрасывает отмененные брони, в отличие от расчета статусов -
// так исторически ведет себя календарь PSC, и это поведение сохранено
func BuildCalendarMarks(facilities []domain.Facility, filter domain.StatusFilter) map[string]*domain.DayMark {
	marks := make(map[string]*domain.DayMark)
	color := filter.Color()

	if filter != domain.StatusFilterAll {
		for _, facility := range facilities {
			switch filter {
			case domain.StatusFilterBooked:
				for _, booking := range facility.Bookings {
					if booking.IsCancelled() || booking.CheckIn.IsZero() {
						continue
					}
					addMark(marks, utils.DateKey(utils.LocalDay(booking.CheckIn.Date)), color)
				}
			case domain.StatusFilterReserved:
				for _, reservation := range facility.Reservations {
					if reservation.ReservedFrom.IsZero() {
						continue
					}
					addMark(marks, utils.DateKey(utils.LocalDay(reservation.ReservedFrom.Date)), color)
				}
			case domain.StatusFilterMaintenance:
				for _, outOfOrder := range facility.OutOfOrders {
					if outOfOrder.StartDate.IsZero() {
						continue
					}
					addMark(marks, utils.DateKey(utils.LocalDay(outOfOrder.StartDate.Date)), color)
				}
			}
			// У AVAILABLE нет дискретного события, метки не ставятся
		}
		return marks
	}

	for _, facility := range facilities {
		for _, booking := range facility.Bookings {
			if booking.CheckIn.IsZero() {
				continue
			}
			addMark(marks, utils.DateKey(utils.LocalDay(booking.CheckIn.Date)), color)
		}

		for _, reservation := range facility.Reservations {
			if reservation.ReservedFrom.IsZero() {
				continue
			}
			addMark(marks, utils.DateKey(utils.LocalDay(reservation.ReservedFrom.Date)), color)
		}

		for _, outOfOrder := range facility.OutOfOrders {
			if outOfOrder.StartDate.IsZero() {
				continue
			}
			addMark(marks, utils.DateKey(utils.LocalDay(outOfOrder.StartDate.Date)), color)
		}
	}

	return marks
}
