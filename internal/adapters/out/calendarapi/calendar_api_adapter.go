package calendarapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	nurl "net/url"
	"time"

	"github.com/Atif-Muhammad/psc-calendar-svc/internal/config"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/domain"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/ports/out"
)

// Пути PSC API по типам помещений
var facilityTypePaths = map[domain.FacilityType]string{
	domain.FacilityTypeRooms:       "calendar/rooms",
	domain.FacilityTypeHalls:       "calendar/halls",
	domain.FacilityTypeLawns:       "calendar/lawns",
	domain.FacilityTypePhotoshoots: "calendar/photoshoots",
}

type CalendarApiAdapter struct {
	client   *http.Client
	baseURL  string
	username string
	password string
	logger   out.LoggerPort
}

func NewCalendarApiAdapter(cfg *config.Config, logger out.LoggerPort) *CalendarApiAdapter {
	return &CalendarApiAdapter{
		client:   &http.Client{Timeout: 10 * time.Second},
		baseURL:  cfg.CalendarApi.URL,
		username: cfg.CalendarApi.Username,
		password: cfg.CalendarApi.Password,
		logger:   logger,
	}
}

func (a *CalendarApiAdapter) GetFacilities(ctx context.Context, facilityType domain.FacilityType, query out.FacilityQuery) ([]domain.Facility, error) {
	a.logger.Info("calendarapi.facilities.fetch", out.LogFields{
		"facilityType": facilityType,
	})

	path, ok := facilityTypePaths[facilityType]
	if !ok {
		return nil, fmt.Errorf("unknown facility type: %s", facilityType)
	}

	url := fmt.Sprintf("%s/%s", a.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		a.logger.Error("calendarapi.facilities.fetch_failed", out.LogFields{
			"facilityType": facilityType,
			"error":        err.Error(),
		})
		return nil, err
	}

	// Параметры выборки уходят в API как есть, без интерпретации
	params := nurl.Values{}
	if query.StartDate != "" {
		params.Add("startDate", query.StartDate)
	}
	if query.EndDate != "" {
		params.Add("endDate", query.EndDate)
	}
	if query.RoomNumber != "" {
		params.Add("roomNumber", query.RoomNumber)
	}
	req.URL.RawQuery = params.Encode()

	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("calendarapi.facilities.fetch_failed", out.LogFields{
			"facilityType": facilityType,
			"error":        err.Error(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("calendarapi.facilities.fetch_failed", out.LogFields{
			"facilityType": facilityType,
			"status":       resp.StatusCode,
		})
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var facilities []domain.Facility
	if err := json.NewDecoder(resp.Body).Decode(&facilities); err != nil {
		a.logger.Error("calendarapi.facilities.decode_failed", out.LogFields{
			"facilityType": facilityType,
			"error":        err.Error(),
		})
		return nil, err
	}

	// Тип помещения в ответе API отсутствует, проставляем по запросу
	for i := range facilities {
		facilities[i].Type = facilityType
	}

	a.logger.Debug("calendarapi.facilities.fetch_success", out.LogFields{
		"facilityType": facilityType,
		"count":        len(facilities),
	})

	return facilities, nil
}
