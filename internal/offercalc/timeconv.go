package offercalc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var twelveHourPattern = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(AM|PM)$`)

// To24Hour переводит "2:30 PM" в "14:30".
// Строки без суффикса AM/PM возвращаются без изменений, поэтому повторное применение ничего не меняет.
func To24Hour(s string) string {
	match := twelveHourPattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return s
	}

	hour, _ := strconv.Atoi(match[1])
	minutes := match[2]

	if strings.EqualFold(match[3], "AM") {
		if hour == 12 {
			hour = 0
		}
	} else if hour < 12 {
		hour += 12
	}

	return fmt.Sprintf("%02d:%s", hour, minutes)
}

// To12Hour переводит "14:00" в "2:00 PM" для отображения.
// Строки не в формате HH:MM возвращаются без изменений.
func To12Hour(s string) string {
	head, minutes, found := strings.Cut(s, ":")
	if !found || len(minutes) != 2 {
		return s
	}
	hour, err := strconv.Atoi(head)
	if err != nil || hour < 0 || hour > 23 {
		return s
	}
	if _, err := strconv.Atoi(minutes); err != nil {
		return s
	}

	switch {
	case hour == 0:
		return fmt.Sprintf("12:%s AM", minutes)
	case hour < 12:
		return fmt.Sprintf("%d:%s AM", hour, minutes)
	case hour == 12:
		return fmt.Sprintf("12:%s PM", minutes)
	default:
		return fmt.Sprintf("%d:%s PM", hour-12, minutes)
	}
}
