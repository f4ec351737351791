package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"steady/internal/models"
	"steady/internal/reminder"
	"steady/internal/storage"
	"steady/internal/timeutil"
)

// SessionState represents the current screen of the TUI.
type SessionState int

const (
	StateHome SessionState = iota
	StateCheckinMood
	StateCheckinNote
)

// tickMsg refreshes the elapsed-time display.
type tickMsg time.Time

type Model struct {
	store    storage.Provider
	reminder *reminder.Service

	state     SessionState
	keys      KeyMap
	help      help.Model
	noteInput textinput.Model

	appState  models.State
	breakdown timeutil.Breakdown
	dayCount  int
	checkedIn bool
	moodIdx   int
	statusMsg string
	errMsg    string
	quitting  bool
	width     int
}

func NewModel(store storage.Provider, svc *reminder.Service) Model {
	noteInput := textinput.New()
	noteInput.Placeholder = "anything you want to note (optional)"
	noteInput.CharLimit = 200

	m := Model{
		store:     store,
		reminder:  svc,
		state:     StateHome,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		noteInput: noteInput,
		moodIdx:   2, // start on "okay"
	}
	m.refresh()
	return m
}

// refresh re-derives the displayed state from the store and clock.
func (m *Model) refresh() {
	state, err := m.store.GetState()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.appState = state

	now := time.Now()
	start := timeutil.ParseCleanStart(state.CleanStart)
	m.breakdown = timeutil.Elapsed(start, now)
	m.dayCount = timeutil.DayCount(start, now)

	_, found, err := m.store.GetCheckInForDay(timeutil.LocalDayNumber(now))
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.checkedIn = found
	m.errMsg = ""
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
