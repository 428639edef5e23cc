// Package calendar holds the pure month-grid and time-slot math behind the
// scheduling date picker. Months are 0-indexed (0 = January) to match the
// frontend convention.
package calendar

import (
	"fmt"
	"time"
)

// Slot is one bookable time of day. Key is "H:MM" on a 24-hour clock with no
// leading zero on the hour; Display is the 12-hour form shown to users.
type Slot struct {
	Key     string `json:"key"`
	Display string `json:"display"`
}

// DayCell is one cell of a month grid. Day is 0 for the leading blank cells
// that pad day 1 under its weekday column.
type DayCell struct {
	Day        int    `json:"day"`
	Date       string `json:"date,omitempty"`
	IsToday    bool   `json:"is_today"`
	IsSelected bool   `json:"is_selected"`
	IsPast     bool   `json:"is_past"`
}

const (
	slotFirstHour = 8
	slotLastHour  = 18

	// DateLayout is the wire form of a picked calendar date.
	DateLayout = "2006-01-02"
	// DateTimeLayout is the combined date+slot timestamp. It carries no zone;
	// the time of day is read in a fixed reference zone by convention.
	DateTimeLayout = "2006-01-02T15:04:05"
)

var slots = buildSlots()

// DaysInMonth reports the number of days in the given 0-indexed month,
// computed as the day number of day 0 of the following month. Out-of-range
// months roll over by ordinary date normalization (-1 resolves to December
// of the previous year) rather than erroring.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday reports the weekday of the 1st of the given 0-indexed month,
// 0 = Sunday.
func FirstWeekday(year, month int) int {
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// TimeSlots returns the fixed catalog of bookable slots: every half hour
// from 8:00 AM through 6:00 PM, with no 6:30 PM entry. The result is the
// same on every call.
func TimeSlots() []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	return out
}

// SlotByKey looks up a slot by its machine key.
func SlotByKey(key string) (Slot, bool) {
	for _, s := range slots {
		if s.Key == key {
			return s, true
		}
	}
	return Slot{}, false
}

// MonthGrid lays out the given 0-indexed month as a sequence of day cells:
// FirstWeekday leading blanks, then one cell per day annotated against today
// and the selected date. Days strictly before today are marked past and are
// not selectable by the picker.
func MonthGrid(year, month int, today, selected time.Time) []DayCell {
	today = midnight(today)
	selected = midnight(selected)

	pad := FirstWeekday(year, month)
	cells := make([]DayCell, 0, pad+DaysInMonth(year, month))
	for i := 0; i < pad; i++ {
		cells = append(cells, DayCell{})
	}

	for day := 1; day <= DaysInMonth(year, month); day++ {
		date := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC)
		cells = append(cells, DayCell{
			Day:        day,
			Date:       date.Format(DateLayout),
			IsToday:    date.Equal(today),
			IsSelected: date.Equal(selected),
			IsPast:     date.Before(today),
		})
	}
	return cells
}

// CombineDateTime joins a picked date ("2006-01-02") and a slot into the
// stored timestamp form "2006-01-02T15:04:05", zero-padding the slot hour.
func CombineDateTime(date string, slot Slot) (string, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}

	var hour, minute int
	if _, err := fmt.Sscanf(slot.Key, "%d:%d", &hour, &minute); err != nil {
		return "", fmt.Errorf("invalid slot key %q: %w", slot.Key, err)
	}

	return fmt.Sprintf("%sT%02d:%02d:00", day.Format(DateLayout), hour, minute), nil
}

func buildSlots() []Slot {
	var out []Slot
	for h := slotFirstHour; h <= slotLastHour; h++ {
		out = append(out, Slot{Key: fmt.Sprintf("%d:00", h), Display: formatTime(h, 0)})
		if h < slotLastHour {
			out = append(out, Slot{Key: fmt.Sprintf("%d:30", h), Display: formatTime(h, 30)})
		}
	}
	return out
}

func formatTime(hour, minute int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, period)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
