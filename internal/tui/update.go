package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"steady/internal/models"
	"steady/internal/timeutil"
)

// moodChoices are ordered top-to-bottom in the check-in selector.
var moodChoices = []struct {
	Rating int
	Label  string
}{
	{5, "Strong"},
	{4, "Good"},
	{3, "Okay"},
	{2, "Shaky"},
	{1, "Struggling"},
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.refresh()
		return m, tickCmd()

	case tea.KeyMsg:
		switch m.state {
		case StateHome:
			return m.updateHome(msg)
		case StateCheckinMood:
			return m.updateCheckinMood(msg)
		case StateCheckinNote:
			return m.updateCheckinNote(msg)
		}
	}

	return m, nil
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.CheckIn):
		m.state = StateCheckinMood
		m.statusMsg = ""
		return m, nil
	}
	return m, nil
}

func (m Model) updateCheckinMood(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.state = StateHome
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.moodIdx > 0 {
			m.moodIdx--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.moodIdx < len(moodChoices)-1 {
			m.moodIdx++
		}
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		m.state = StateCheckinNote
		m.noteInput.SetValue("")
		return m, m.noteInput.Focus()
	}
	return m, nil
}

func (m Model) updateCheckinNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.state = StateCheckinMood
		m.noteInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		m.noteInput.Blur()
		m.saveCheckIn()
		m.state = StateHome
		return m, nil
	}

	var cmd tea.Cmd
	m.noteInput, cmd = m.noteInput.Update(msg)
	return m, cmd
}

func (m *Model) saveCheckIn() {
	now := time.Now()
	checkIn := models.CheckIn{
		ID:        uuid.NewString(),
		Day:       timeutil.LocalDayNumber(now),
		Mood:      moodChoices[m.moodIdx].Rating,
		Note:      m.noteInput.Value(),
		CreatedAt: now,
	}
	if err := m.store.AddCheckIn(checkIn); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.statusMsg = "Checked in. See you tomorrow."
	m.refresh()
}
