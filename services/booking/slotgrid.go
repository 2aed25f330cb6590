package booking

import "time"

// The bookable grid: every seller offers half-hour slots between 10:00 and
// 21:00, up to seven days ahead. The grid is a view derived from the clock,
// recomputed on every read; only booked slots are persisted.
const (
	DayLayout  = "2006-01-02"
	slotLayout = "03:04 PM"

	openingHour = 10
	closingHour = 21
	slotStep    = 30 * time.Minute
	horizonDays = 7
)

// GridDays returns the bookable calendar days starting at now's day.
func GridDays(now time.Time) []string {
	days := make([]string, 0, horizonDays)
	for i := 0; i < horizonDays; i++ {
		days = append(days, now.AddDate(0, 0, i).Format(DayLayout))
	}
	return days
}

// DaySlots returns the offerable time labels for the given day. For the
// current day the window starts at the first half-hour boundary at or after
// now; for future days it starts at opening time. Past days yield nothing.
func DaySlots(day string, now time.Time) []string {
	d, err := time.ParseInLocation(DayLayout, day, now.Location())
	if err != nil {
		return nil
	}

	start := time.Date(d.Year(), d.Month(), d.Day(), openingHour, 0, 0, 0, now.Location())
	end := time.Date(d.Year(), d.Month(), d.Day(), closingHour, 0, 0, 0, now.Location())

	today := now.Format(DayLayout)
	switch {
	case day < today:
		return nil
	case day == today:
		// Round up to the next step boundary on the local wall clock;
		// truncating absolute time drifts off the grid in zones whose UTC
		// offset is not a step multiple.
		minutes := now.Hour()*60 + now.Minute()
		if now.Second() > 0 || now.Nanosecond() > 0 {
			minutes++
		}
		step := int(slotStep / time.Minute)
		if rem := minutes % step; rem != 0 {
			minutes += step - rem
		}
		cutoff := time.Date(d.Year(), d.Month(), d.Day(), minutes/60, minutes%60, 0, 0, now.Location())
		if cutoff.After(start) {
			start = cutoff
		}
	}

	var slots []string
	for t := start; t.Before(end); t = t.Add(slotStep) {
		slots = append(slots, t.Format(slotLayout))
	}
	return slots
}

// ValidSlot reports whether (day, slot) is bookable as of now: the day lies
// within the horizon and the label is on the freshly generated grid. Client
// supplied day/time is never trusted without this re-derivation.
func ValidSlot(day, slot string, now time.Time) bool {
	if _, err := time.ParseInLocation(DayLayout, day, now.Location()); err != nil {
		return false
	}
	today := now.Format(DayLayout)
	horizon := now.AddDate(0, 0, horizonDays-1).Format(DayLayout)
	if day < today || day > horizon {
		return false
	}
	for _, s := range DaySlots(day, now) {
		if s == slot {
			return true
		}
	}
	return false
}

// SlotStart converts (day, slot) back to a point in time, used for reminder
// scheduling.
func SlotStart(day, slot string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DayLayout+" "+slotLayout, day+" "+slot, loc)
}
