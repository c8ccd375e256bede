package services

import (
	"time"

	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/domain"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/utils"
)

// coversDay - попадает ли день в закрытый интервал [start, end] с точностью до дня.
// Оба конца включительно, время отбрасывается
func coversDay(day, start, end time.Time) bool {
	s := utils.LocalDay(start)
	e := utils.LocalDay(end)
	return !day.Before(s) && !day.After(e)
}

func bookingCoversDay(booking domain.Booking, day time.Time) bool {
	if booking.CheckIn.IsZero() {
		return false
	}

	if !booking.CheckOut.IsZero() {
		return coversDay(day, booking.CheckIn.Date, booking.CheckOut.Date)
	}

	// Бронь без даты выезда занимает только день заезда
	return day.Equal(utils.LocalDay(booking.CheckIn.Date))
}

func reservationCoversDay(reservation domain.Reservation, day time.Time) bool {
	if !reservation.HasPeriod() {
		return false
	}
	return coversDay(day, reservation.ReservedFrom.Date, reservation.ReservedTo.Date)
}

func outOfOrderCoversDay(outOfOrder domain.OutOfOrder, day time.Time) bool {
	if !outOfOrder.HasPeriod() {
		return false
	}
	return coversDay(day, outOfOrder.StartDate.Date, outOfOrder.EndDate.Date)
}

// ResolveStatusOnDate определяет единственный статус помещения на календарный день.
// Порядок проверок фиксированный: сначала брони, потом резервы, потом ремонты,
// первый совпавший и выигрывает. День, накрытый одновременно резервом и ремонтом,
// получает статус RESERVED - это осознанная политика, а не случайный tie-break.
// Записи с битыми или неполными датами просто пропускаются
func ResolveStatusOnDate(facility domain.Facility, date time.Time) domain.FacilityStatus {
	day := utils.LocalDay(date)

	for _, booking := range facility.Bookings {
		// Отмененные брони не занимают помещение
		if booking.IsCancelled() {
			continue
		}
		if bookingCoversDay(booking, day) {
			return domain.FacilityStatusBooked
		}
	}

	for _, reservation := range facility.Reservations {
		if reservationCoversDay(reservation, day) {
			return domain.FacilityStatusReserved
		}
	}

	for _, outOfOrder := range facility.OutOfOrders {
		if outOfOrderCoversDay(outOfOrder, day) {
			return domain.FacilityStatusMaintenance
		}
	}

	return domain.FacilityStatusAvailable
}

// IsOccupiedOn - занято ли помещение в указанный день хоть чем-то:
// бронью, резервом или ремонтом. Три проверки независимы и объединяются через OR,
// ранжирования статусов здесь нет
func IsOccupiedOn(facility domain.Facility, date time.Time) bool {
	day := utils.LocalDay(date)

	for _, booking := range facility.Bookings {
		if booking.IsCancelled() {
			continue
		}
		if bookingCoversDay(booking, day) {
			return true
		}
	}

	for _, reservation := range facility.Reservations {
		if reservationCoversDay(reservation, day) {
			return true
		}
	}

	for _, outOfOrder := range facility.OutOfOrders {
		if outOfOrderCoversDay(outOfOrder, day) {
			return true
		}
	}

	return false
}

// PartitionByOccupancy разбивает коллекцию на свободные и занятые помещения
// на указанный день
func PartitionByOccupancy(facilities []domain.Facility, date time.Time) domain.OccupancySnapshot {
	snapshot := domain.OccupancySnapshot{
		Available: make([]domain.Facility, 0),
		Occupied:  make([]domain.Facility, 0),
	}

	for _, facility := range facilities {
		if IsOccupiedOn(facility, date) {
			snapshot.Occupied = append(snapshot.Occupied, facility)
		} else {
			snapshot.Available = append(snapshot.Available, facility)
		}
	}

	return snapshot
}
