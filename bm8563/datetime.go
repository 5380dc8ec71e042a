package bm8563

import (
	"fmt"
	"time"

	"github.com/ajanata/drivers/internal/bcd"
)

// DateTime is the calendar value held by the time registers. Year is
// absolute; only 1900 to 2099 can be represented.
type DateTime struct {
	Second  int
	Minute  int
	Hour    int
	Day     int
	Weekday time.Weekday
	Month   time.Month
	Year    int
}

// FromTime converts t without changing its location.
func FromTime(t time.Time) DateTime {
	return DateTime{
		Second:  t.Second(),
		Minute:  t.Minute(),
		Hour:    t.Hour(),
		Day:     t.Day(),
		Weekday: t.Weekday(),
		Month:   t.Month(),
		Year:    t.Year(),
	}
}

// Time returns dt as a time.Time in loc. The weekday stored on the chip is
// not consulted; time.Time derives its own from the date.
func (dt DateTime) Time(loc *time.Location) time.Time {
	return time.Date(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, 0, loc)
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d %s",
		dt.Year, int(dt.Month), dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Weekday)
}

// Validate checks every field against the range the chip can hold. Day is
// not checked against the length of the month, the chip does not either.
func (dt DateTime) Validate() error {
	fields := []struct {
		name     string
		v        int
		min, max int
	}{
		{"second", dt.Second, 0, 59},
		{"minute", dt.Minute, 0, 59},
		{"hour", dt.Hour, 0, 23},
		{"day", dt.Day, 1, 31},
		{"weekday", int(dt.Weekday), 0, 6},
		{"month", int(dt.Month), 1, 12},
		{"year", dt.Year, 1900, 2099},
	}
	for _, f := range fields {
		if f.v < f.min || f.v > f.max {
			return &InvalidValueError{Field: f.name, Value: f.v}
		}
	}
	return nil
}

// encode builds the register image of dt, starting at the seconds register.
// The low-voltage bit is always left clear.
func (dt DateTime) encode() ([timeBlockSize]byte, error) {
	var buf [timeBlockSize]byte
	if err := dt.Validate(); err != nil {
		return buf, err
	}
	fields := [timeBlockSize]struct {
		v    int
		mask uint8
	}{
		{dt.Second, secondsMask},
		{dt.Minute, minutesMask},
		{dt.Hour, hoursMask},
		{dt.Day, daysMask},
		{int(dt.Weekday), weekdaysMask},
		{int(dt.Month), monthsMask},
		{dt.Year % 100, yearsMask},
	}
	for i, f := range fields {
		b, err := bcd.Encode(uint8(f.v))
		if err != nil {
			return buf, err
		}
		buf[i] = b & f.mask
	}
	if dt.Year >= 2000 {
		buf[CenturyMonths-Seconds] |= CenturyBit
	}
	return buf, nil
}

// decode is the inverse of encode. The low-voltage bit is masked off here,
// the caller inspects it separately.
func decode(buf [timeBlockSize]byte) DateTime {
	century := 1900
	// The century bit is not toggled by the chip when the year wraps.
	if buf[CenturyMonths-Seconds]&CenturyBit != 0 {
		century = 2000
	}
	return DateTime{
		Second:  int(bcd.Decode(buf[0] & secondsMask)),
		Minute:  int(bcd.Decode(buf[Minutes-Seconds] & minutesMask)),
		Hour:    int(bcd.Decode(buf[Hours-Seconds] & hoursMask)),
		Day:     int(bcd.Decode(buf[Days-Seconds] & daysMask)),
		Weekday: time.Weekday(bcd.Decode(buf[Weekdays-Seconds] & weekdaysMask)),
		Month:   time.Month(bcd.Decode(buf[CenturyMonths-Seconds] & monthsMask)),
		Year:    century + int(bcd.Decode(buf[Years-Seconds] & yearsMask)),
	}
}
