package models

import (
	"fmt"
	"time"
)

// State is the full persisted application state. It is stored as a single
// JSON document under one storage path.
type State struct {
	Version     int       `json:"version"`
	CleanStart  string    `json:"clean_start"`            // RFC3339 timestamp, day zero for elapsed tracking
	DisplayName string    `json:"display_name,omitempty"` // optional personalization
	CheckIns    []CheckIn `json:"check_ins"`
	Notes       []Note    `json:"notes"`
	Settings    Settings  `json:"settings"`
	History     []Run     `json:"history"`
}

// CheckIn is a single daily mood check-in.
type CheckIn struct {
	ID        string    `json:"id"`
	Day       int       `json:"day"` // local calendar day number, one check-in per day
	Mood      int       `json:"mood"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *CheckIn) Validate() error {
	if c.Mood < 1 || c.Mood > 5 {
		return fmt.Errorf("mood must be between 1 and 5, got %d", c.Mood)
	}
	return nil
}

// Note is a free-form journal entry.
type Note struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func (n *Note) Validate() error {
	if n.Text == "" {
		return fmt.Errorf("note text cannot be empty")
	}
	return nil
}

// Run is a completed tracking run, archived when the user resets their
// clean-start date.
type Run struct {
	CleanStart string    `json:"clean_start"`
	EndedAt    time.Time `json:"ended_at"`
	TotalDays  int       `json:"total_days"`
}
