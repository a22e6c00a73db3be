package reservation

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidStayPeriod = errors.New("stay start must be before stay end")

// StayPeriod is a half-open date range [start, end). A stay that ends on the
// day another begins does not conflict with it.
type StayPeriod struct {
	start time.Time
	end   time.Time
}

// NewStayPeriod normalizes both bounds to calendar dates in UTC. Truncating
// against the epoch instead would shift any non-UTC timestamp onto the wrong
// day, so the date is read in the caller's location first.
func NewStayPeriod(start, end time.Time) (StayPeriod, error) {
	start = toDate(start)
	end = toDate(end)
	if !start.Before(end) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{start: start, end: end}, nil
}

func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (p StayPeriod) Start() time.Time {
	return p.start
}

func (p StayPeriod) End() time.Time {
	return p.end
}

func (p StayPeriod) Nights() int {
	return int(p.end.Sub(p.start) / (24 * time.Hour))
}

// Overlaps reports whether two half-open ranges share at least one day.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.start.Before(other.end) && other.start.Before(p.end)
}

func (p StayPeriod) Contains(t time.Time) bool {
	return !t.Before(p.start) && t.Before(p.end)
}

func (p StayPeriod) String() string {
	return fmt.Sprintf("[%s,%s)", p.start.Format("2006-01-02"), p.end.Format("2006-01-02"))
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewNonNegativeMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}
