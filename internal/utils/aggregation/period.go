package aggregation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
)

// Granularity is the size of a reporting bucket.
type Granularity string

const (
	ByDate  Granularity = "date"
	ByWeek  Granularity = "week"
	ByMonth Granularity = "month"
	ByYear  Granularity = "year"
)

// ParseGranularity accepts date, week, month or year.
func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(strings.ToLower(strings.TrimSpace(s))); g {
	case ByDate, ByWeek, ByMonth, ByYear:
		return g, nil
	default:
		return "", fmt.Errorf("%w: unknown granularity %q", apperrors.ErrValidation, s)
	}
}

// ParsePeriod turns a granularity and a value such as "2025-02-10", "2025-02"
// or "2025" into the inclusive range the bucket covers.
func ParsePeriod(g Granularity, value string) (domain.Period, error) {
	value = strings.TrimSpace(value)
	switch g {
	case ByDate:
		d, err := domain.ParseDate(value)
		if err != nil {
			return domain.Period{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		return domain.Period{From: d, To: d}, nil
	case ByWeek:
		d, err := domain.ParseDate(value)
		if err != nil {
			return domain.Period{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		return WeekOf(d), nil
	case ByMonth:
		year, month, err := parseYearMonth(value)
		if err != nil {
			return domain.Period{}, err
		}
		return MonthOf(year, month), nil
	case ByYear:
		year, err := strconv.Atoi(value)
		if err != nil || year < 1 || year > 9999 {
			return domain.Period{}, fmt.Errorf("%w: invalid year %q", apperrors.ErrValidation, value)
		}
		return domain.Period{From: domain.DateOf(year, time.January, 1), To: domain.DateOf(year, time.December, 31)}, nil
	default:
		return domain.Period{}, fmt.Errorf("%w: unknown granularity %q", apperrors.ErrValidation, g)
	}
}

// WeekOf is the Monday-to-Sunday week containing d.
func WeekOf(d domain.Date) domain.Period {
	offset := int(d.Weekday()) - 1
	if offset < 0 {
		offset = 6 // Sunday closes the week that started six days earlier.
	}
	first := d.AddDays(-offset)
	return domain.Period{From: first, To: first.AddDays(6)}
}

// MonthOf is the calendar month, first to last day.
func MonthOf(year int, month time.Month) domain.Period {
	first := domain.DateOf(year, month, 1)
	last := domain.NewDate(first.Time.AddDate(0, 1, -1))
	return domain.Period{From: first, To: last}
}

// MonthKey formats a date as YYYY-MM, the period key the overview endpoints take.
func MonthKey(d domain.Date) string {
	return d.Format("2006-01")
}

func parseYearMonth(value string) (int, time.Month, error) {
	if t, err := time.Parse("2006-01", value); err == nil {
		return t.Year(), t.Month(), nil
	}
	if d, err := domain.ParseDate(value); err == nil {
		return d.Year(), d.Month(), nil
	}
	return 0, 0, fmt.Errorf("%w: invalid month %q, expected YYYY-MM", apperrors.ErrValidation, value)
}

// BucketKey labels the bucket a date falls into at granularity g.
func BucketKey(g Granularity, d domain.Date) string {
	switch g {
	case ByWeek:
		return WeekOf(d).From.String()
	case ByMonth:
		return MonthKey(d)
	case ByYear:
		return strconv.Itoa(d.Year())
	default:
		return d.String()
	}
}

// SeriesGranularity is the finer bucket used to chart a period of size g.
func SeriesGranularity(g Granularity) Granularity {
	if g == ByYear {
		return ByMonth
	}
	return ByDate
}
