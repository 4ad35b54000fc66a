package recipex

import (
	"regexp"
	"strconv"
)

var isoDurationRe = regexp.MustCompile(`^P(?:([\d.]+)D)?T?(?:([\d.]+)H)?(?:([\d.]+)M)?(?:([\d.]+)S)?$`)

// ParseISODuration parses an ISO-8601 duration as published in recipe
// structured data ("PT1H30M") and returns the total minutes. Durations
// that are absent, malformed, or resolve to zero report ok=false, which
// callers treat as "no duration".
func ParseISODuration(s string) (minutes int, ok bool) {
	m := isoDurationRe.FindStringSubmatch(s)
	if m == nil || s == "P" || s == "PT" {
		return 0, false
	}

	total := 0.0
	for i, perMinute := range []float64{24 * 60, 60, 1, 1.0 / 60} {
		if m[i+1] == "" {
			continue
		}
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return 0, false
		}
		total += v * perMinute
	}

	minutes = int(total + 0.5)
	if minutes <= 0 {
		return 0, false
	}
	return minutes, true
}

// FormatMinutes renders a duration in minutes the way output records
// store times: "90 minutes", "1 minute".
func FormatMinutes(minutes int) string {
	if minutes == 1 {
		return "1 minute"
	}
	return strconv.Itoa(minutes) + " minutes"
}
