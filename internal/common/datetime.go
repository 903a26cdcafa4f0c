package common

import (
	"fmt"
	"time"
)

// DateLayout
const (
	DateFormatYYYYMMDD                  = "2006-01-02"
	DateFormatYYYYMM                    = "2006-01"
	DateFormatYYYYMMDDWithoutDash       = "20060102"
	DateFormatYYYYMMDDHHMMSSWithoutDash = "20060102150405"
	DateFormatDDMMYYYYWithoutDash       = "02012006"
	DateFormatDDMMYYWithoutDash         = "020106"
	DateFormatDDMMYYYY                  = "02/01/2006"
	DateFormatDDMMMYYYY                 = "02-Jan-2006"
	DateFormatYYYYMMDDWithTime          = "2006-01-02 15:04:05"
	DateFormatDDMMMYYYYWithSpace        = "02 Jan 2006"
	TimeFormatHHMM                      = "15:04"
	DateFormatHHMMSS                    = "15:04:05"
	DateFormatYYYYMMDDWithTimeAndOffset = "2006-01-02T15:04:05-07:00" // same as RFC3339/ISO8601
)

// HOUR FORMAT
const (
	HourFormat000000 = "00:00:00"
	HourFormat235959 = "23:59:59"
)

// TIMEZONE
const (
	TimezoneSaoPaulo = "America/Sao_Paulo"
)

// MAP TIMEZONE
var (
	MapTimezone = map[string]int{
		TimezoneSaoPaulo: -3,
	}
)

// GetLocation returns the service timezone, falling back to a fixed offset
// when the tzdata entry is unavailable in the runtime image.
func GetLocation() *time.Location {
	loc, err := time.LoadLocation(TimezoneSaoPaulo)
	if err != nil {
		return time.FixedZone(TimezoneSaoPaulo, MapTimezone[TimezoneSaoPaulo]*60*60)
	}

	return loc
}

// Now returns the current time in the service timezone.
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// NowZeroTime returns today at 00:00:00 in the service timezone.
func NowZeroTime() time.Time {
	now := Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, GetLocation())
}

// NowEndOfDay returns today at 23:59:59 in the service timezone.
func NowEndOfDay() time.Time {
	now := Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, GetLocation())
}

// YesterdayTime returns the time 24 hours before now in the service timezone.
func YesterdayTime() time.Time {
	return Now().AddDate(0, 0, -1)
}

// StartOfMonth returns the first day of t's month at 00:00:00 in the service timezone.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, GetLocation())
}

// ParseStringToDatetime parses value using the given layout, anchored to the
// service timezone.
func ParseStringToDatetime(format, value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(format, value, GetLocation())
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %q as %q: %w", value, format, err)
	}

	return parsed, nil
}

// FormatDatetimeToString formats t using the given layout after converting it
// to the service timezone. Zero times format to an empty string.
func FormatDatetimeToString(t time.Time, format string) string {
	if t.IsZero() {
		return ""
	}

	return t.In(GetLocation()).Format(format)
}
