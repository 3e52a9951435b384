// Package models defines the client-side view of Classroom Manager entries.
package models

import (
	"strings"
	"time"
)

// Entry is one record as returned by the entry API. Date is kept exactly as
// the server sent it and is parsed only for display.
type Entry struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// Draft is the create/update request body.
type Draft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Valid reports whether both fields are non-empty after trimming.
func (d Draft) Valid() bool {
	return strings.TrimSpace(d.Title) != "" && strings.TrimSpace(d.Content) != ""
}

// DisplayDateLayout is the calendar-date form shown on entry cards.
const DisplayDateLayout = "2006-01-02"

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	DisplayDateLayout,
}

// ParseDate parses the server date in any of the accepted layouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DisplayDate returns the entry date as yyyy-MM-dd, or the raw value when it
// cannot be parsed.
func (e Entry) DisplayDate() string {
	t, ok := ParseDate(e.Date)
	if !ok {
		return e.Date
	}
	return t.Format(DisplayDateLayout)
}
