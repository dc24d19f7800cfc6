package entities

import (
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is fixed width so that stored timestamps sort
// lexicographically in chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

const (
	MonthYearLayout = "2006-01"
	LogDateLayout   = "2006-01-02"
)

// Timestamp formats t in UTC using TimestampLayout.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// MonthYear returns the billing period key (YYYY-MM) for t in its own location.
func MonthYear(t time.Time) string {
	return t.Format(MonthYearLayout)
}

// LogDate returns the attendance date key (YYYY-MM-DD) for t in its own location.
func LogDate(t time.Time) string {
	return t.Format(LogDateLayout)
}

// NewStudentID returns a time-ordered student identifier.
func NewStudentID() string {
	return "s" + newTimeOrderedID()
}

// NewItineraryID returns a time-ordered itinerary identifier.
func NewItineraryID() string {
	return "it" + newTimeOrderedID()
}

func newTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
