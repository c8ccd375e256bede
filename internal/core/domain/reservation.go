package domain

import (
	"encoding/json"

	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/json_types"
)

// Reservation - административная бронь помещения на период
type Reservation struct {
	ID           json_types.FlexID
	ReservedFrom json_types.DateTimeOrEmpty
	ReservedTo   json_types.DateTimeOrEmpty
	ReservedBy   string
	Reason       string
}

// UnmarshalJSON нормализует схему на границе:
// старые записи PSC API приходят с полями startDate/endDate вместо reservedFrom/reservedTo
func (r *Reservation) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID           json_types.FlexID          `json:"id"`
		ReservedFrom json_types.DateTimeOrEmpty `json:"reservedFrom"`
		ReservedTo   json_types.DateTimeOrEmpty `json:"reservedTo"`
		StartDate    json_types.DateTimeOrEmpty `json:"startDate"`
		EndDate      json_types.DateTimeOrEmpty `json:"endDate"`
		ReservedBy   string                     `json:"reservedBy"`
		Reason       string                     `json:"reason"`
	}

	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	r.ID = wire.ID
	r.ReservedFrom = wire.ReservedFrom
	r.ReservedTo = wire.ReservedTo
	r.ReservedBy = wire.ReservedBy
	r.Reason = wire.Reason

	if r.ReservedFrom.IsZero() {
		r.ReservedFrom = wire.StartDate
	}
	if r.ReservedTo.IsZero() {
		r.ReservedTo = wire.EndDate
	}

	return nil
}

func (r Reservation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID           json_types.FlexID          `json:"id"`
		ReservedFrom json_types.DateTimeOrEmpty `json:"reservedFrom"`
		ReservedTo   json_types.DateTimeOrEmpty `json:"reservedTo"`
		ReservedBy   string                     `json:"reservedBy,omitempty"`
		Reason       string                     `json:"reason,omitempty"`
	}{r.ID, r.ReservedFrom, r.ReservedTo, r.ReservedBy, r.Reason})
}

// HasPeriod - без полной пары дат бронь инертна и не попадает ни на один день
func (r Reservation) HasPeriod() bool {
	return !r.ReservedFrom.IsZero() && !r.ReservedTo.IsZero()
}
