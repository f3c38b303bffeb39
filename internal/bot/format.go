package bot

import "time"

// FormatDateForDisplay renders DD-MM-YYYY as "15 August 2025". Unparseable
// input is returned unchanged so replies never hide what the user sent.
func FormatDateForDisplay(dateStr string) string {
	d, ok := ParseDate(dateStr)
	if !ok {
		return dateStr
	}
	return d.Format("02 January 2006")
}

// FormatTimeForDisplay renders HH:MM as 12-hour clock, e.g. "02:30 PM".
func FormatTimeForDisplay(timeStr string) string {
	hour, minute, ok := ParseTime(timeStr)
	if !ok {
		return timeStr
	}
	return time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC).Format("03:04 PM")
}
