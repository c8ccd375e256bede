package domain

import (
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/json_types"
)

// OutOfOrder - период, когда помещение выведено из эксплуатации
type OutOfOrder struct {
	ID        json_types.FlexID          `json:"id"`
	StartDate json_types.DateTimeOrEmpty `json:"startDate"`
	EndDate   json_types.DateTimeOrEmpty `json:"endDate"`
	Reason    string                     `json:"reason"`
}

func (o OutOfOrder) HasPeriod() bool {
	return !o.StartDate.IsZero() && !o.EndDate.IsZero()
}
