package utils

import (
	"fmt"
	"time"

	"github.com/Atif-Muhammad/psc-calendar-svc/internal/config"
)

// StartCurrentDay возвращает дату с временем 00:00 в той же таймзоне
func StartCurrentDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartNextDay возвращает новую дату, где день увеличен на 1, время установлено на 00:00, а таймзона остается прежней.
func StartNextDay(t time.Time) time.Time {
	newDate := t.AddDate(0, 0, 1)
	return StartCurrentDay(newDate)
}

// LocalDay приводит дату к полуночи в таймзоне сервиса.
// Все сравнения дней в резолвере статусов идут через эту нормализацию
func LocalDay(t time.Time) time.Time {
	return StartCurrentDay(t.In(config.TimeZone))
}

// SameDay сравнивает две даты по календарному дню, время игнорируется
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DateKey форматирует дату в ключ календаря yyyy-MM-dd
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDate парсит дату из строки в формате RFC3339, если не удается, то пробует парсить дату со временем, но без таймзоны
func ParseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	// Если не удалось пробуем дату со временем, но без таймзоны
	// По дефолту ставим таймзону из конфига
	if err != nil {
		location := config.TimeZone
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, location)
		if err != nil {
			// Если не удалось, пробуем как дату без времени
			parsedDate, err = time.ParseInLocation("2006-01-02", str, location)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse time: %v", err)
			}
		}
	}

	return parsedDate, nil
}
