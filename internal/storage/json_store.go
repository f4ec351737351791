package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"steady/internal/models"
)

// JSONStore persists the whole application state as a single JSON document
// at one path. Every mutation rewrites the file.
type JSONStore struct {
	path  string
	state *models.State
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init(state models.State) error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if state.Version == 0 {
		state.Version = 1
	}
	s.state = &state
	s.normalize()

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'steady init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.state = &models.State{}
	if err := json.Unmarshal(data, s.state); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	s.normalize()

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// normalize ensures slices are non-nil after a fresh load. Malformed or
// missing settings values are left in place; the models accessors substitute
// defaults at read time.
func (s *JSONStore) normalize() {
	if s.state.CheckIns == nil {
		s.state.CheckIns = []models.CheckIn{}
	}
	if s.state.Notes == nil {
		s.state.Notes = []models.Note{}
	}
	if s.state.History == nil {
		s.state.History = []models.Run{}
	}
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetState() (models.State, error) {
	if s.state == nil {
		return models.State{}, fmt.Errorf("storage not loaded")
	}
	return *s.state, nil
}

func (s *JSONStore) SetCleanStart(iso string) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.state.CleanStart = iso
	return s.save()
}

func (s *JSONStore) SetDisplayName(name string) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.state.DisplayName = name
	return s.save()
}

// Reset archives the ended run into history, clears per-run data and starts
// a new run at the given clean-start instant. Settings and notes survive a
// reset.
func (s *JSONStore) Reset(newCleanStart string, endedRun models.Run) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.state.History = append(s.state.History, endedRun)
	s.state.CleanStart = newCleanStart
	s.state.CheckIns = []models.CheckIn{}
	return s.save()
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.state == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.state.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.state.Settings = settings
	return s.save()
}

// AddCheckIn records a check-in. A later check-in for the same local
// calendar day replaces the earlier one.
func (s *JSONStore) AddCheckIn(checkIn models.CheckIn) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	if err := checkIn.Validate(); err != nil {
		return err
	}

	replaced := false
	for i, existing := range s.state.CheckIns {
		if existing.Day == checkIn.Day {
			s.state.CheckIns[i] = checkIn
			replaced = true
			break
		}
	}
	if !replaced {
		s.state.CheckIns = append(s.state.CheckIns, checkIn)
	}
	return s.save()
}

func (s *JSONStore) GetCheckIns() ([]models.CheckIn, error) {
	if s.state == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	checkIns := make([]models.CheckIn, len(s.state.CheckIns))
	copy(checkIns, s.state.CheckIns)
	sort.Slice(checkIns, func(i, j int) bool {
		return checkIns[i].Day < checkIns[j].Day
	})
	return checkIns, nil
}

func (s *JSONStore) GetCheckInForDay(day int) (models.CheckIn, bool, error) {
	if s.state == nil {
		return models.CheckIn{}, false, fmt.Errorf("storage not loaded")
	}

	for _, c := range s.state.CheckIns {
		if c.Day == day {
			return c, true, nil
		}
	}
	return models.CheckIn{}, false, nil
}

func (s *JSONStore) AddNote(note models.Note) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	if err := note.Validate(); err != nil {
		return err
	}

	s.state.Notes = append(s.state.Notes, note)
	return s.save()
}

func (s *JSONStore) GetNotes() ([]models.Note, error) {
	if s.state == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	notes := make([]models.Note, len(s.state.Notes))
	copy(notes, s.state.Notes)
	return notes, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
