package billing

import (
	"regexp"
	"time"

	"github.com/labelworks/backend/internal/domain/shared"
)

const (
	monthLayout = "2006-01"
	dateLayout  = "2006-01-02"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Month is a validated YYYY-MM billing period.
type Month struct {
	value string
	start time.Time
}

// ParseMonth validates a YYYY-MM string and returns the period.
func ParseMonth(s string) (Month, error) {
	if !monthPattern.MatchString(s) {
		return Month{}, shared.NewDomainError("INVALID_MONTH", "Target month format is invalid (YYYY-MM)")
	}
	start, err := time.ParseInLocation(monthLayout, s, time.UTC)
	if err != nil {
		return Month{}, shared.NewDomainError("INVALID_MONTH", "Target month format is invalid (YYYY-MM)")
	}
	return Month{value: s, start: start}, nil
}

// String returns the YYYY-MM form.
func (m Month) String() string {
	return m.value
}

// Range returns the half-open date range [first day, first day of next month).
func (m Month) Range() (start, end time.Time) {
	return m.start, m.start.AddDate(0, 1, 0)
}

// Contains reports whether the given date falls inside the month.
func (m Month) Contains(date time.Time) bool {
	start, end := m.Range()
	return !date.Before(start) && date.Before(end)
}
