package in

import (
	"context"
	"time"

	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/domain"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/ports/out"
)

type CalendarUseCase interface {
	// Метки календаря: количество событий на каждый день
	GetCalendarMarks(ctx context.Context, facilityType domain.FacilityType, filter domain.StatusFilter, query out.FacilityQuery) (map[string]*domain.DayMark, error)

	// Список событий на выбранный день
	GetEventsOnDate(ctx context.Context, facilityType domain.FacilityType, date time.Time, filter domain.StatusFilter, query out.FacilityQuery) ([]domain.CalendarEvent, error)

	// Сводка по коллекции помещений на сегодня
	GetStatistics(ctx context.Context, facilityType domain.FacilityType, query out.FacilityQuery) (domain.Statistics, error)

	// Разбиение на свободные/занятые на сегодня
	GetOccupancySnapshot(ctx context.Context, facilityType domain.FacilityType, query out.FacilityQuery) (domain.OccupancySnapshot, error)

	// Инвалидация кэша по сообщениям об изменениях
	InvalidateFacilitiesCache(ctx context.Context, facilityType domain.FacilityType) error
	InvalidateAllFacilitiesCache(ctx context.Context) error
}
