package storage

import "steady/internal/models"

type Provider interface {
	// Lifecycle
	Init(state models.State) error
	Load() error
	Close() error

	// State
	GetState() (models.State, error)
	SetCleanStart(iso string) error
	SetDisplayName(name string) error
	Reset(newCleanStart string, endedRun models.Run) error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Check-ins
	AddCheckIn(models.CheckIn) error
	GetCheckIns() ([]models.CheckIn, error)
	// GetCheckInForDay returns the check-in recorded for the given local
	// calendar day number, if any.
	GetCheckInForDay(day int) (models.CheckIn, bool, error)

	// Notes
	AddNote(models.Note) error
	GetNotes() ([]models.Note, error)

	// Utils
	GetConfigPath() string
}
