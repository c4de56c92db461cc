package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/remindapp/remind/internal/cli"
	"github.com/remindapp/remind/internal/constants"
	"github.com/remindapp/remind/internal/models"
	"github.com/remindapp/remind/internal/recurrence"
	"github.com/remindapp/remind/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case constants.StateAdding:
		return m.updateAdding(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Tab):
			if m.state == constants.StateTimeline {
				m.state = constants.StateReminders
			} else {
				m.state = constants.StateTimeline
			}
			m.cursor = 0
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.listLen()-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Add):
			if m.state == constants.StateReminders {
				return m.startAdding()
			}
		case key.Matches(msg, m.keys.Delete):
			if m.state == constants.StateReminders && m.cursor < len(m.reminders) {
				m.toDeleteID = m.reminders[m.cursor].ID
				m.toDeleteTitle = m.reminders[m.cursor].Title
				m.state = constants.StateConfirmDelete
			}
		}
	}

	return m, nil
}

// listLen returns the number of navigable rows for the current tab.
func (m Model) listLen() int {
	if m.state == constants.StateTimeline {
		return len(m.timeline)
	}
	return len(m.reminders)
}

func (m Model) startAdding() (tea.Model, tea.Cmd) {
	m.reminderForm = &ReminderFormModel{
		Date: time.Now().In(m.loc).Format(constants.DateFormat),
		Time: "09:00",
	}
	m.form = newReminderForm(m.reminderForm)
	m.formError = ""
	m.state = constants.StateAdding
	return m, m.form.Init()
}

func newReminderForm(fm *ReminderFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Value(&fm.Date).
				Validate(func(s string) error {
					if !utils.ValidateDateFormat(s) {
						return fmt.Errorf("expected YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("Time").
				Description("HH:MM").
				Value(&fm.Time).
				Validate(func(s string) error {
					if !utils.ValidateTimeFormat(s) {
						return fmt.Errorf("expected HH:MM")
					}
					return nil
				}),
			huh.NewInput().
				Title("Repeats").
				Description("e.g. 'every weekday', 'monthly on the 15th', blank for none").
				Value(&fm.Repeat).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if _, ok := recurrence.Parse(s); !ok {
						return fmt.Errorf("could not understand repeat phrase")
					}
					return nil
				}),
			huh.NewInput().
				Title("Notes").
				Value(&fm.Notes),
		),
	)
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateReminders
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.saveFormReminder(); err != nil {
			m.formError = err.Error()
		} else {
			m.formError = ""
			m.refresh()
		}
		m.state = constants.StateReminders
	case huh.StateAborted:
		m.state = constants.StateReminders
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) saveFormReminder() error {
	fm := m.reminderForm

	rule := recurrence.None()
	if repeat := strings.TrimSpace(fm.Repeat); repeat != "" {
		parsed, ok := recurrence.Parse(repeat)
		if !ok {
			return fmt.Errorf("could not understand repeat phrase %q", repeat)
		}
		rule = parsed
	}

	anchor, err := utils.CombineDateAndTime(fm.Date, fm.Time, m.loc)
	if err != nil {
		return err
	}
	rule = cli.ResolveRule(rule, anchor)

	reminder := models.Reminder{
		ID:        uuid.New().String(),
		Title:     strings.TrimSpace(fm.Title),
		Date:      fm.Date,
		Time:      fm.Time,
		Rule:      rule,
		Notes:     fm.Notes,
		Active:    true,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := reminder.Validate(); err != nil {
		return err
	}
	return m.store.AddReminder(reminder)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if m.toDeleteID != "" {
				if err := m.store.DeleteReminder(m.toDeleteID); err == nil {
					m.refresh()
				}
				m.toDeleteID = ""
				m.toDeleteTitle = ""
			}
			m.state = constants.StateReminders
		case "n", "N", "esc":
			m.toDeleteID = ""
			m.toDeleteTitle = ""
			m.state = constants.StateReminders
		}
	}
	return m, nil
}
