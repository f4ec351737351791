package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateHome:
		content = m.viewHome()
	case StateCheckinMood:
		content = m.viewCheckinMood()
	case StateCheckinNote:
		content = m.viewCheckinNote()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		"",
		m.help.View(m.keys),
	)
	return docStyle.Render(ui)
}

func (m Model) viewHome() string {
	headline := fmt.Sprintf("%d days clean", m.breakdown.TotalDays)
	if m.breakdown.TotalDays == 1 {
		headline = "1 day clean"
	}
	if m.appState.DisplayName != "" {
		headline = fmt.Sprintf("%s — %s", m.appState.DisplayName, headline)
	}

	lines := []string{
		headlineStyle.Render(headline),
		"",
		fmt.Sprintf("%s %d weeks, %d days", labelStyle.Render("Weeks: "), m.breakdown.Weeks, m.breakdown.RemainingDays),
		fmt.Sprintf("%s %d", labelStyle.Render("Hours: "), m.breakdown.TotalHours),
		fmt.Sprintf("%s ~%d", labelStyle.Render("Months:"), m.breakdown.Months),
		"",
		affirmationStyle.Render(m.reminder.Affirmation(m.dayCount)),
	}

	if m.appState.Settings.ReminderEnabled() {
		lines = append(lines, "", labelStyle.Render(fmt.Sprintf("Daily reminder at %02d:%02d",
			m.appState.Settings.ReminderHour(), m.appState.Settings.ReminderMinute())))
	}

	if m.checkedIn {
		lines = append(lines, "", statusStyle.Render("✓ Checked in today"))
	} else {
		lines = append(lines, "", labelStyle.Render("Press c to check in"))
	}

	if m.statusMsg != "" {
		lines = append(lines, "", statusStyle.Render(m.statusMsg))
	}
	if m.errMsg != "" {
		lines = append(lines, "", errorStyle.Render(m.errMsg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewCheckinMood() string {
	lines := []string{
		headlineStyle.Render("How are you feeling today?"),
		"",
	}
	for i, choice := range moodChoices {
		if i == m.moodIdx {
			lines = append(lines, selectedStyle.Render("> "+choice.Label))
		} else {
			lines = append(lines, "  "+choice.Label)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewCheckinNote() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		headlineStyle.Render(fmt.Sprintf("Feeling %s", moodChoices[m.moodIdx].Label)),
		"",
		m.noteInput.View(),
		"",
		labelStyle.Render("enter to save · esc to go back"),
	)
}
