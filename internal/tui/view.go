package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/remindapp/remind/internal/constants"
	"github.com/remindapp/remind/internal/recurrence"
	"github.com/remindapp/remind/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateTimeline:
		content = docStyle.Render(m.viewTimeline())
	case constants.StateReminders:
		content = docStyle.Render(m.viewReminders())
	case constants.StateAdding:
		content = m.form.View()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	var banner string
	if m.validationWarning != "" && m.state != constants.StateAdding {
		banner = warningStyle.Render(m.validationWarning)
	}
	if m.formError != "" && m.state == constants.StateReminders {
		banner = dangerStyle.Render("Error: " + m.formError)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		banner,
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Timeline", "Reminders"}
	for i, title := range tabTitles {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewTimeline() string {
	if len(m.timeline) == 0 {
		return dimStyle.Render("No upcoming occurrences. Press tab, then 'a' to add a reminder.")
	}

	var b strings.Builder
	for i, entry := range m.timeline {
		line := fmt.Sprintf("%s  %s", utils.FormatInstant(entry.At), entry.Reminder.Title)
		if i == m.cursor && m.state == constants.StateTimeline {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewReminders() string {
	if len(m.reminders) == 0 {
		return dimStyle.Render("No reminders yet. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, r := range m.reminders {
		status := ""
		if !r.Active {
			status = dimStyle.Render(" (paused)")
		}
		line := fmt.Sprintf("%s  %s %s  %s%s",
			r.Title, r.Date, r.Time, dimStyle.Render(recurrence.Describe(r.Rule)), status)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete reminder %q?", m.toDeleteTitle)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
