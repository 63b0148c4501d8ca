package chatbet

import (
	"strconv"
	"strings"
	"time"
)

func isDateSeparator(r rune) bool {
	return r == '/' || r == '-'
}

// looksLikeDate reports whether token is shaped like a calendar date: two
// or three all-numeric parts joined by / or - separators. The token must
// open with a digit so spread lines like -3.5 never read as dates.
func looksLikeDate(token string) bool {
	if token == "" || token[0] < '0' || token[0] > '9' {
		return false
	}
	if !strings.ContainsFunc(token, isDateSeparator) {
		return false
	}
	parts := strings.FieldsFunc(token, isDateSeparator)
	if len(parts) < 2 || len(parts) > 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
		for _, r := range p {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

// parseDateToken parses MM/DD, MM/DD/YY, MM/DD/YYYY or YYYY/MM/DD (with /
// or - separators) into a UTC midnight instant. A yearless date takes
// the nearest occurrence not earlier than now, rolling into next year when
// the current-year reading would already be in the past.
func parseDateToken(input, token string, now time.Time) (time.Time, error) {
	parts := strings.FieldsFunc(token, isDateSeparator)

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, newError(KindDate, input, token, "unreadable date component %q", p)
		}
		nums[i] = n
	}

	var year, month, day int
	switch len(nums) {
	case 2:
		month, day = nums[0], nums[1]
		year = now.Year()
	case 3:
		if nums[0] >= 1000 {
			year, month, day = nums[0], nums[1], nums[2]
		} else {
			month, day, year = nums[0], nums[1], nums[2]
			if year < 100 {
				year += 2000
			}
		}
	default:
		return time.Time{}, newError(KindDate, input, token, "date must have 2 or 3 components")
	}

	d, err := calendarDate(input, token, year, month, day)
	if err != nil {
		return time.Time{}, err
	}

	if len(nums) == 2 {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if d.Before(today) {
			d, err = calendarDate(input, token, year+1, month, day)
			if err != nil {
				return time.Time{}, err
			}
		}
	}
	return d, nil
}

// calendarDate builds a UTC midnight date, rejecting impossible values
// (time.Date normalizes overflow, so a round trip check catches them).
func calendarDate(input, token string, year, month, day int) (time.Time, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, newError(KindDate, input, token, "%q is not a real calendar date", token)
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if int(d.Month()) != month || d.Day() != day {
		return time.Time{}, newError(KindDate, input, token, "%q is not a real calendar date", token)
	}
	return d, nil
}
