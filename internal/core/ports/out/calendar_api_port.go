package out

import (
	"context"

	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/domain"
)

// FacilityQuery - параметры выборки, передаются в PSC API без интерпретации
type FacilityQuery struct {
	StartDate  string
	EndDate    string
	RoomNumber string
}

func (q FacilityQuery) IsEmpty() bool {
	return q.StartDate == "" && q.EndDate == "" && q.RoomNumber == ""
}

type CalendarApiPort interface {
	// Получение коллекции помещений одного типа вместе с бронями,
	// резервами и периодами ремонта
	GetFacilities(ctx context.Context, facilityType domain.FacilityType, query FacilityQuery) ([]domain.Facility, error)
}
