package services

import (
	"math"
	"time"

	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/domain"
)

// Summarize считает сводку по коллекции помещений на указанный день.
// Разбиение четырехстороннее и взаимоисключающее, статус каждого помещения
// берется из ResolveStatusOnDate с его порядком приоритетов
func Summarize(facilities []domain.Facility, date time.Time) domain.Statistics {
	stats := domain.Statistics{
		Total: len(facilities),
	}

	for _, facility := range facilities {
		switch ResolveStatusOnDate(facility, date) {
		case domain.FacilityStatusBooked:
			stats.Booked++
		case domain.FacilityStatusAvailable:
			stats.Available++
		case domain.FacilityStatusReserved:
			stats.Reserved++
		case domain.FacilityStatusMaintenance:
			stats.Maintenance++
		}
	}

	if stats.Total > 0 {
		stats.OccupancyRate = int(math.Round(float64(stats.Booked) / float64(stats.Total) * 100))
		stats.AvailabilityRate = int(math.Round(float64(stats.Available) / float64(stats.Total) * 100))
	}

	return stats
}
