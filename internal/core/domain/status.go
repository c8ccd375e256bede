package domain

import "fmt"

// FacilityStatus - взаимоисключающий статус помещения на конкретный день
type FacilityStatus string

const (
	FacilityStatusAvailable   FacilityStatus = "AVAILABLE"
	FacilityStatusBooked      FacilityStatus = "BOOKED"
	FacilityStatusReserved    FacilityStatus = "RESERVED"
	FacilityStatusMaintenance FacilityStatus = "MAINTENANCE"
)

// StatusFilter - фильтр календаря, ALL плюс четыре статуса
type StatusFilter string

const (
	StatusFilterAll         StatusFilter = "ALL"
	StatusFilterAvailable   StatusFilter = StatusFilter(FacilityStatusAvailable)
	StatusFilterBooked      StatusFilter = StatusFilter(FacilityStatusBooked)
	StatusFilterReserved    StatusFilter = StatusFilter(FacilityStatusReserved)
	StatusFilterMaintenance StatusFilter = StatusFilter(FacilityStatusMaintenance)
)

func ParseStatusFilter(str string) (StatusFilter, error) {
	switch StatusFilter(str) {
	case StatusFilterAll, StatusFilterAvailable, StatusFilterBooked,
		StatusFilterReserved, StatusFilterMaintenance:
		return StatusFilter(str), nil
	case "":
		return StatusFilterAll, nil
	}
	return "", fmt.Errorf("unknown status filter: %s", str)
}

// Цвета статусов для календарной разметки
const (
	colorAvailable   = "#10B981"
	colorBooked      = "#002f79ff"
	colorReserved    = "#F59E0B"
	colorMaintenance = "#EF4444"
)

func (s FacilityStatus) Color() string {
	switch s {
	case FacilityStatusAvailable:
		return colorAvailable
	case FacilityStatusBooked:
		return colorBooked
	case FacilityStatusReserved:
		return colorReserved
	case FacilityStatusMaintenance:
		return colorMaintenance
	}
	return colorBooked
}

func (f StatusFilter) Color() string {
	switch f {
	case StatusFilterAvailable, StatusFilterBooked, StatusFilterReserved, StatusFilterMaintenance:
		return FacilityStatus(f).Color()
	}
	// Для ALL используется цвет бронирований
	return colorBooked
}
