package json_types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Atif-Muhammad/psc-calendar-svc/internal/config"
)

func parseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	// Если не удалось пробуем дату со временем, но без таймзоны
	// Для дат без таймзоны берем таймзону сервиса
	if err != nil {
		location := config.TimeZone
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, location)
		if err != nil {
			// Если не удалось, пробуем как дату без времени - это полночь локального дня
			parsedDate, err = time.ParseInLocation("2006-01-02", str, location)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse time: %v", err)
			}
		}
	}

	return parsedDate, nil
}

type DateTime struct {
	Date time.Time
}

func (t *DateTime) UnmarshalJSON(data []byte) error {
	// Убираем кавычки вокруг строки
	str := string(data[1 : len(data)-1])

	parsedDate, err := parseDate(str)
	if err != nil {
		return err
	}

	*t = DateTime{Date: parsedDate}
	return nil
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format(time.RFC3339))
}

type DateTimeOrEmpty struct {
	Date time.Time
}

// UnmarshalJSON не возвращает ошибку на битую дату:
// запись с такой датой просто не участвует в расчетах статусов,
// а весь ответ календарного API остается валидным
func (t *DateTimeOrEmpty) UnmarshalJSON(data []byte) error {
	if string(data) == "null" || string(data) == `""` {
		return nil
	}

	if len(data) < 2 || data[0] != '"' {
		return nil
	}

	parsedDate, err := parseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return nil
	}

	*t = DateTimeOrEmpty{Date: parsedDate}
	return nil
}

func (t DateTimeOrEmpty) MarshalJSON() ([]byte, error) {
	if t.Date.IsZero() {
		return json.Marshal(nil)
	}

	return json.Marshal(t.Date.Format(time.RFC3339))
}

func (t DateTimeOrEmpty) IsZero() bool {
	return t.Date.IsZero()
}
