package format

import (
	"regexp"
	"strings"
)

// timelinePlaceholder is returned when neither a table nor a day-range
// heading yields usable text for the requested segment.
const timelinePlaceholder = "Detailed guidance for this phase is still being prepared; see the full report text."

// dayRangeRes matches the "Days 0-30" style headings for each launch-plan
// segment, accepting hyphen, en dash or em dash and either 30/60 or 31/61
// boundaries.
var dayRangeRes = [3]*regexp.Regexp{
	regexp.MustCompile(`(?i)days?\s*0\s*[-–—]\s*30`),
	regexp.MustCompile(`(?i)days?\s*3[01]\s*[-–—]\s*60`),
	regexp.MustCompile(`(?i)days?\s*6[01]\s*[-–—]\s*90`),
}

// ExtractTimelineSlice returns the launch-plan text for one 30-day segment
// (0, 1 or 2). A three-column markdown table takes precedence: the last cell
// of the data row at segmentIndex is returned. Without a usable table the
// prose between the segment's day-range heading and the next one is used,
// provided it carries at least a sentence of content. Anything else yields a
// fixed placeholder.
func ExtractTimelineSlice(markdown string, segmentIndex int) string {
	if segmentIndex < 0 || strings.TrimSpace(markdown) == "" {
		return timelinePlaceholder
	}

	if rows := dataRows(pipeRows(markdown)); segmentIndex < len(rows) {
		cells := rows[segmentIndex]
		if last := strings.TrimSpace(cells[len(cells)-1]); last != "" {
			return PersonalizeCopy(last)
		}
	}

	if segmentIndex < len(dayRangeRes) {
		if slice := proseTimelineSlice(markdown, segmentIndex); len(slice) >= 10 {
			return PersonalizeCopy(slice)
		}
	}
	return timelinePlaceholder
}

// proseTimelineSlice returns the text between segmentIndex's day-range
// heading and the next day-range heading (or end of input).
func proseTimelineSlice(markdown string, segmentIndex int) string {
	loc := dayRangeRes[segmentIndex].FindStringIndex(markdown)
	if loc == nil {
		return ""
	}
	rest := markdown[loc[1]:]
	end := len(rest)
	for _, re := range dayRangeRes {
		if next := re.FindStringIndex(rest); next != nil && next[0] < end {
			end = next[0]
		}
	}
	slice := strings.TrimLeft(rest[:end], ":*# \t")
	slice = strings.TrimRight(slice, "#*: \t\n")
	return strings.TrimSpace(slice)
}
