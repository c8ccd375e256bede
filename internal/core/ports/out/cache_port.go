package out

import (
	"context"

	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/domain"
)

type CachePort interface {
	// Кэширование коллекций помещений по типу и параметрам выборки
	GetFacilities(ctx context.Context, facilityType domain.FacilityType, query FacilityQuery) ([]domain.Facility, bool)
	StoreFacilities(ctx context.Context, facilityType domain.FacilityType, query FacilityQuery, facilities []domain.Facility)

	// Инвалидация: по типу помещения или целиком
	InvalidateFacilities(ctx context.Context, facilityType domain.FacilityType)
	InvalidateAll(ctx context.Context)
}
