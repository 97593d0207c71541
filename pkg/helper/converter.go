package helper

import (
	"math/big"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/savioruz/futsal/pkg/constant"
)

const (
	x = 10
)

// PgInt64 converts an int64 to pgtype.Numeric
func PgInt64(i int64) pgtype.Numeric {
	bigInt := new(big.Int).SetInt64(i)

	return pgtype.Numeric{
		Int:   bigInt,
		Valid: true,
	}
}

// Int64FromPg converts a pgtype.Numeric to an int64
func Int64FromPg(n pgtype.Numeric) int64 {
	if !n.Valid || n.Int == nil {
		return 0
	}

	if n.Exp != 0 {
		result := new(big.Int).Set(n.Int)

		if n.Exp < 0 {
			divisor := new(big.Int).Exp(big.NewInt(x), big.NewInt(int64(-n.Exp)), nil)
			result = result.Div(result, divisor)
		} else {
			multiplier := new(big.Int).Exp(big.NewInt(x), big.NewInt(int64(n.Exp)), nil)
			result = result.Mul(result, multiplier)
		}

		return result.Int64()
	}

	return n.Int.Int64()
}

// PgDate converts a string date to pgtype.Date
func PgDate(date string) pgtype.Date {
	t, err := time.Parse(constant.DateFormat, date)
	if err != nil {
		return pgtype.Date{Valid: false}
	}

	return pgtype.Date{Time: t, Valid: true}
}

// DateFromPg formats a pgtype.Date as "2006-01-02".
func DateFromPg(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}

	return d.Time.Format(constant.DateFormat)
}

// PgTimeFromString converts a time string (format "15:04") to pgtype.Time
func PgTimeFromString(timeStr string) (pgtype.Time, error) {
	parsedTime, err := time.Parse(constant.HoursFormat, timeStr)
	if err != nil {
		return pgtype.Time{Valid: false}, err
	}

	return PgTimeFromTime(parsedTime), nil
}

// PgTimeFromTime converts a time.Time object to pgtype.Time
func PgTimeFromTime(t time.Time) pgtype.Time {
	return pgtype.Time{
		Microseconds: int64((t.Hour()*constant.SecondsPerHour + t.Minute()*constant.MinutesPerHour) * constant.MicrosecondsPerSec),
		Valid:        true,
	}
}

func PgTimeToString(t pgtype.Time) (string, error) {
	if !t.Valid {
		return "", nil
	}

	totalSeconds := t.Microseconds / constant.MicrosecondsPerSec
	hours := totalSeconds / constant.SecondsPerHour
	minutes := (totalSeconds % constant.SecondsPerHour) / constant.MinutesPerHour

	return time.Date(0, 1, 1, int(hours), int(minutes), 0, 0, time.UTC).Format(constant.HoursFormat), nil
}

// PgTimestamp converts a time.Time object to pgtype.Timestamp
func PgTimestamp(t time.Time) pgtype.Timestamp {
	return pgtype.Timestamp{
		Time:             t,
		InfinityModifier: 0,
		Valid:            true,
	}
}

var (
	// AppTimezone holds the application's timezone
	AppTimezone *time.Location
)

// InitTimezone initializes the application timezone, falling back to UTC.
func InitTimezone(timezone string) {
	if timezone == "" {
		timezone = "UTC"
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		AppTimezone = time.UTC

		return
	}

	AppTimezone = loc
}

// NowInAppTimezone returns the current time in the application's timezone
func NowInAppTimezone() time.Time {
	if AppTimezone == nil {
		return time.Now().UTC()
	}

	return time.Now().In(AppTimezone)
}

// TodayInAppTimezone returns today's date as "2006-01-02" in the application's timezone.
func TodayInAppTimezone() string {
	return NowInAppTimezone().Format(constant.DateFormat)
}
