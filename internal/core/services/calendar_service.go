package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Atif-Muhammad/psc-calendar-svc/internal/config"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/domain"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/ports/out"
)

// CalendarService - оркестрация над чистым резолвером статусов:
// кэш, поход в PSC API, вызов расчетов
type CalendarService struct {
	calendarApiPort out.CalendarApiPort
	cachePort       out.CachePort
	logger          out.LoggerPort
	cfg             *config.Config
}

func NewCalendarService(
	calendarApiPort out.CalendarApiPort,
	cachePort out.CachePort,
	cfg *config.Config,
	logger out.LoggerPort,
) *CalendarService {
	return &CalendarService{
		calendarApiPort: calendarApiPort,
		cachePort:       cachePort,
		cfg:             cfg,
		logger:          logger.WithModule("CalendarService"),
	}
}

func (s *CalendarService) fetchFacilities(ctx context.Context, facilityType domain.FacilityType, query out.FacilityQuery) ([]domain.Facility, error) {
	// Проверяем кэш только если он включен
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		if facilities, exists := s.cachePort.GetFacilities(ctx, facilityType, query); exists {
			s.logger.Debug("calendar.facilities.cache.hit", out.LogFields{
				"facilityType": facilityType,
				"count":        len(facilities),
			})
			return facilities, nil
		}

		s.logger.Debug("calendar.facilities.cache.miss", out.LogFields{
			"facilityType": facilityType,
		})
	}

	facilities, err := s.calendarApiPort.GetFacilities(ctx, facilityType, query)
	if err != nil {
		s.logger.Error("calendar.facilities.fetch_failed", out.LogFields{
			"facilityType": facilityType,
			"error":        err.Error(),
		})
		return nil, fmt.Errorf("calendar.facilities.fetch_failed: %w", err)
	}

	if s.cachePort != nil && s.cfg.Cache.Enabled {
		s.cachePort.StoreFacilities(ctx, facilityType, query, facilities)
	}

	return facilities, nil
}

func (s *CalendarService) GetCalendarMarks(ctx context.Context, facilityType domain.FacilityType, filter domain.StatusFilter, query out.FacilityQuery) (map[string]*domain.DayMark, error) {
	s.logger.Info("calendar.marks.started", out.LogFields{
		"facilityType": facilityType,
		"filter":       filter,
	})

	facilities, err := s.fetchFacilities(ctx, facilityType, query)
	if err != nil {
		return nil, err
	}

	marks := BuildCalendarMarks(facilities, filter)

	s.logger.Debug("calendar.marks.finished", out.LogFields{
		"facilityType": facilityType,
		"markedDays":   len(marks),
	})

	return marks, nil
}

func (s *CalendarService) GetEventsOnDate(ctx context.Context, facilityType domain.FacilityType, date time.Time, filter domain.StatusFilter, query out.FacilityQuery) ([]domain.CalendarEvent, error) {
	s.logger.Info("calendar.events.started", out.LogFields{
		"facilityType": facilityType,
		"date":         date.Format("2006-01-02"),
		"filter":       filter,
	})

	facilities, err := s.fetchFacilities(ctx, facilityType, query)
	if err != nil {
		return nil, err
	}

	return ListEventsOnDate(facilities, date, filter), nil
}

func (s *CalendarService) GetStatistics(ctx context.Context, facilityType domain.FacilityType, query out.FacilityQuery) (domain.Statistics, error) {
	s.logger.Info("calendar.statistics.started", out.LogFields{
		"facilityType": facilityType,
	})

	facilities, err := s.fetchFacilities(ctx, facilityType, query)
	if err != nil {
		return domain.Statistics{}, err
	}

	return Summarize(facilities, time.Now()), nil
}

func (s *CalendarService) GetOccupancySnapshot(ctx context.Context, facilityType domain.FacilityType, query out.FacilityQuery) (domain.OccupancySnapshot, error) {
	s.logger.Info("calendar.occupancy.started", out.LogFields{
		"facilityType": facilityType,
	})

	facilities, err := s.fetchFacilities(ctx, facilityType, query)
	if err != nil {
		return domain.OccupancySnapshot{}, err
	}

	return PartitionByOccupancy(facilities, time.Now()), nil
}

func (s *CalendarService) InvalidateFacilitiesCache(ctx context.Context, facilityType domain.FacilityType) error {
	if s.cachePort == nil || !s.cfg.Cache.Enabled {
		return nil
	}

	s.logger.Info("calendar.cache.invalidate", out.LogFields{
		"facilityType": facilityType,
	})
	s.cachePort.InvalidateFacilities(ctx, facilityType)

	return nil
}

func (s *CalendarService) InvalidateAllFacilitiesCache(ctx context.Context) error {
	if s.cachePort == nil || !s.cfg.Cache.Enabled {
		return nil
	}

	s.logger.Info("calendar.cache.invalidate_all", nil)
	s.cachePort.InvalidateAll(ctx)

	return nil
}
