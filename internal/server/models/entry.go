// Package models defines server-side data models persisted by the repositories.
package models

import "time"

// Entry is a classroom entry as stored and served by the API. Date is set
// by the server on create and refreshed on every update.
type Entry struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}
