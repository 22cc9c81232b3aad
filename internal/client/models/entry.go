// Package models defines the Lost & Found catalog records and their
// closed-set attributes.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Entry is one Lost or Found catalog record.
//
// JSON field names match the snapshot layout written by the web client
// ("type", "date", "contact"), so existing snapshots load unchanged.
type Entry struct {
	// ID is a globally unique identifier assigned at creation.
	ID string `json:"id"`

	Kind        Kind     `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Location    Location `json:"location"`

	// OccurredAt is when the item was lost or found. Future dates are accepted.
	OccurredAt time.Time `json:"date"`

	ContactName string `json:"contactName"`
	ContactInfo string `json:"contact"`

	// Image is an opaque embedded payload (usually a data URI) or a URL.
	Image string `json:"image,omitempty"`

	Status Status `json:"status"`
}

// MissingFields returns the names of required fields that are empty after
// trimming or hold a value outside their closed set.
func (e Entry) MissingFields() []string {
	var missing []string
	if !e.Kind.Valid() {
		missing = append(missing, "type")
	}
	if strings.TrimSpace(e.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(e.Description) == "" {
		missing = append(missing, "description")
	}
	if !e.Category.Valid() {
		missing = append(missing, "category")
	}
	if !e.Location.Valid() {
		missing = append(missing, "location")
	}
	if strings.TrimSpace(e.ContactName) == "" {
		missing = append(missing, "contactName")
	}
	if strings.TrimSpace(e.ContactInfo) == "" {
		missing = append(missing, "contact")
	}
	return missing
}

// Complete reports whether e may be held by the store.
func (e Entry) Complete() bool {
	return e.ID != "" && e.Status.Valid() && len(e.MissingFields()) == 0
}

func (e Entry) String() string {
	return fmt.Sprintf("%s  [%s] %-7s %s (%s, %s, %s)",
		e.ID, e.Kind, e.Status, e.Title, e.Category, e.Location, e.OccurredAt.Format(time.DateOnly))
}

// Payload is the raw input of the creation pipeline. All fields are free
// text; the pipeline validates and normalizes them.
type Payload struct {
	Kind        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`

	// Date is a calendar date (YYYY-MM-DD) or an RFC 3339 timestamp. Empty means today.
	Date string `json:"date"`

	ContactName string `json:"contactName"`
	ContactInfo string `json:"contact"`
	Image       string `json:"image,omitempty"`
}
