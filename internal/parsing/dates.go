package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/profile-analyzer/internal/types"
)

var monthNames = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

var (
	yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	// "Jan 2020", "2020-01", "01/2020"
	monthYearRe   = regexp.MustCompile(`(?i)\b([a-z]{3,9})\s+((?:19|20)\d{2})\b`)
	numericDateRe = regexp.MustCompile(`\b((?:19|20)\d{2})-(\d{1,2})\b`)
	slashDateRe   = regexp.MustCompile(`\b(\d{1,2})/((?:19|20)\d{2})\b`)
	rangeSplitRe  = regexp.MustCompile(`\s*(?:-|–|—|\bto\b)\s*`)
)

// ParseDateRange parses heterogeneous experience date text into a DateRange.
// It prefers explicit start/end strings and falls back to a combined duration
// string like "Jan 2020 - Present" or "2018 - 2021". "Present"/"Current"
// (case-insensitive) sets IsCurrent and leaves the end absent. An explicit
// start with an empty end also sets IsCurrent, since scraped listings omit
// the end date for an ongoing role rather than marking it. Text that yields
// no dates at all is preserved verbatim in Raw.
func ParseDateRange(start, end, duration string) types.DateRange {
	var d types.DateRange

	if start != "" || end != "" {
		d.StartYear, d.StartMonth = parsePoint(start)
		if isCurrentMarker(end) || (end == "" && start != "") {
			d.IsCurrent = true
		} else {
			d.EndYear, d.EndMonth = parsePoint(end)
		}
		if d.StartYear != 0 || d.EndYear != 0 {
			return d
		}
		d = types.DateRange{}
	}

	text := strings.TrimSpace(duration)
	if text == "" {
		if start != "" || end != "" {
			d.Raw = strings.TrimSpace(strings.Join([]string{strings.TrimSpace(start), strings.TrimSpace(end)}, " "))
		}
		return d
	}

	if strings.Contains(strings.ToLower(text), "present") ||
		strings.Contains(strings.ToLower(text), "current") {
		d.IsCurrent = true
	}

	parts := rangeSplitRe.Split(text, 2)
	d.StartYear, d.StartMonth = parsePoint(parts[0])
	if len(parts) == 2 && !d.IsCurrent {
		d.EndYear, d.EndMonth = parsePoint(parts[1])
	}

	if d.StartYear == 0 && d.EndYear == 0 && !d.IsCurrent {
		// Nothing parseable; keep the original text instead of failing.
		d.Raw = text
	}
	return d
}

// parsePoint parses a single date like "Jan 2020", "2020-01", "01/2020", or
// "2019" into (year, month). Month is 0 when only a year is present.
func parsePoint(s string) (year, month int) {
	s = strings.TrimSpace(s)
	if s == "" || isCurrentMarker(s) {
		return 0, 0
	}

	if m := monthYearRe.FindStringSubmatch(s); m != nil {
		if mo, ok := monthNames[strings.ToLower(m[1])]; ok {
			y, _ := strconv.Atoi(m[2])
			return y, mo
		}
	}
	if m := numericDateRe.FindStringSubmatch(s); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		if mo >= 1 && mo <= 12 {
			return y, mo
		}
		return y, 0
	}
	if m := slashDateRe.FindStringSubmatch(s); m != nil {
		mo, _ := strconv.Atoi(m[1])
		y, _ := strconv.Atoi(m[2])
		if mo >= 1 && mo <= 12 {
			return y, mo
		}
		return y, 0
	}
	if y := yearRe.FindString(s); y != "" {
		year, _ = strconv.Atoi(y)
		return year, 0
	}
	return 0, 0
}

func isCurrentMarker(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "present" || s == "current"
}

// parseYearSpan extracts start/end years from education text like "2017 - 2021".
func parseYearSpan(s string) (startYear, endYear int) {
	years := yearRe.FindAllString(s, 2)
	if len(years) > 0 {
		startYear, _ = strconv.Atoi(years[0])
	}
	if len(years) > 1 {
		endYear, _ = strconv.Atoi(years[1])
	}
	return startYear, endYear
}
