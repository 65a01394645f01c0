// Package hours reads the per-weekday opening-hours descriptors that
// upstream place clients attach to POIs, e.g. "월요일 10:00-22:00" or
// "Monday: Closed".
package hours

import (
	"fmt"
	"strings"
	"time"

	"poiroute/internal/model"
)

var korean = [7]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"}

var closedMarkers = []string{"휴무", "closed", "정보 없음"}

var allDayMarkers = []string{"24시간", "24 hours"}

// ParseDay accepts Korean or English weekday names, full or abbreviated.
func ParseDay(s string) (time.Weekday, error) {
	s = strings.TrimSpace(s)
	for d := time.Sunday; d <= time.Saturday; d++ {
		en := d.String()
		switch {
		case s == korean[d], s == string([]rune(korean[d])[:1]),
			strings.EqualFold(s, en), strings.EqualFold(s, en[:3]):
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday: %q", s)
}

func lineDay(line string) (time.Weekday, bool) {
	line = strings.TrimSpace(line)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.HasPrefix(line, korean[d]) || hasPrefixFold(line, d.String()) {
			return d, true
		}
	}
	return 0, false
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func containsAny(line string, markers []string) bool {
	l := strings.ToLower(line)
	for _, m := range markers {
		if strings.Contains(l, m) {
			return true
		}
	}
	return false
}

// OpenOn reports whether the descriptors list the given weekday without a
// closed marker. A line with no weekday prefix that says the place is open
// around the clock counts for every day.
func OpenOn(lines []string, day time.Weekday) bool {
	found := false
	for _, line := range lines {
		d, ok := lineDay(line)
		if !ok {
			if containsAny(line, allDayMarkers) {
				found = true
			}
			continue
		}
		if d != day {
			continue
		}
		if containsAny(line, closedMarkers) {
			return false
		}
		found = true
	}
	return found
}

// Filter keeps the POIs open on day, preserving order. orig[k] is the input
// position of kept[k].
func Filter(pois []model.POI, day time.Weekday) (kept []model.POI, orig []int) {
	kept = make([]model.POI, 0, len(pois))
	orig = make([]int, 0, len(pois))
	for i, p := range pois {
		if OpenOn(p.Hours, day) {
			kept = append(kept, p)
			orig = append(orig, i)
		}
	}
	return kept, orig
}
