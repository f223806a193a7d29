// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package reporting

import (
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// ParseDate parses the date formats the backend emits and normalizes the
// result to local midnight. Date-only strings are read as local calendar days.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return StartOfDay(t), true
		}
	}
	return time.Time{}, false
}

func StartOfDay(t time.Time) time.Time {
	t = t.In(time.Local)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: StartOfDay(start), End: StartOfDay(end)}
	if r.End.Before(r.Start) {
		return DateRange{}, fmt.Errorf("end date %s is before start date %s", r.End.Format(time.DateOnly), r.Start.Format(time.DateOnly))
	}
	return r, nil
}

func ParseDateRange(start, end string) (DateRange, error) {
	s, ok := ParseDate(start)
	if !ok {
		return DateRange{}, fmt.Errorf("invalid start date %q", start)
	}
	e, ok := ParseDate(end)
	if !ok {
		return DateRange{}, fmt.Errorf("invalid end date %q", end)
	}
	return NewDateRange(s, e)
}

// LastNDays returns the range of n calendar days ending with now.
func LastNDays(n int, now time.Time) DateRange {
	if n < 1 {
		n = 1
	}
	end := StartOfDay(now)
	return DateRange{Start: end.AddDate(0, 0, -(n - 1)), End: end}
}

func (r DateRange) Contains(t time.Time) bool {
	d := StartOfDay(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Len counts the calendar days of the range without listing them.
func (r DateRange) Len() int {
	return DaysBetween(r.Start, r.End) + 1
}

// Days lists every calendar day of the range, first day first.
func (r DateRange) Days() []time.Time {
	days := make([]time.Time, 0, max(r.Len(), 0))
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (r DateRange) String() string {
	return r.Start.Format(time.DateOnly) + ".." + r.End.Format(time.DateOnly)
}

// FilterByDate keeps the items whose date lies within the range. Items
// without a parseable date are dropped.
func FilterByDate[T any](items []T, r DateRange, dateOf func(T) string) []T {
	res := make([]T, 0, len(items))
	for _, item := range items {
		d, ok := ParseDate(dateOf(item))
		if !ok {
			continue
		}
		if r.Contains(d) {
			res = append(res, item)
		}
	}
	return res
}
