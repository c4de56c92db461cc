package tui

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/remindapp/remind/internal/constants"
	"github.com/remindapp/remind/internal/models"
	"github.com/remindapp/remind/internal/recurrence"
	"github.com/remindapp/remind/internal/storage"
	"github.com/remindapp/remind/internal/utils"
	"github.com/remindapp/remind/internal/validation"
)

// timelineEntry is one upcoming occurrence shown on the timeline tab.
type timelineEntry struct {
	At       time.Time
	Reminder models.Reminder
}

type ReminderFormModel struct {
	Title  string
	Date   string
	Time   string
	Repeat string
	Notes  string
}

type Model struct {
	store             storage.Provider
	state             constants.SessionState
	keys              KeyMap
	help              help.Model
	reminders         []models.Reminder
	timeline          []timelineEntry
	cursor            int
	loc               *time.Location
	previewCount      int
	form              *huh.Form
	reminderForm      *ReminderFormModel
	toDeleteID        string
	toDeleteTitle     string
	validationWarning string
	formError         string
	quitting          bool
	width             int
	height            int
}

func NewModel(store storage.Provider) Model {
	m := Model{
		store:        store,
		state:        constants.StateTimeline,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		loc:          time.Local,
		previewCount: constants.DefaultPreviewCount,
	}

	if settings, err := store.GetSettings(); err == nil {
		if loc, err := utils.LoadLocation(settings.Timezone); err == nil {
			m.loc = loc
		}
		if settings.PreviewCount > 0 {
			m.previewCount = settings.PreviewCount
		}
	}

	m.refresh()
	return m
}

// refresh reloads reminders from the store and rebuilds the timeline.
func (m *Model) refresh() {
	reminders, err := m.store.GetAllReminders()
	if err != nil {
		reminders = []models.Reminder{}
	}
	m.reminders = reminders
	if m.cursor >= len(m.reminders) {
		m.cursor = len(m.reminders) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	m.timeline = buildTimeline(reminders, m.loc, time.Now().In(m.loc), m.previewCount)
	m.updateValidationStatus()
}

// buildTimeline merges the next occurrences of every active reminder into a
// single chronological list, capped at limit entries.
func buildTimeline(reminders []models.Reminder, loc *time.Location, now time.Time, limit int) []timelineEntry {
	var entries []timelineEntry
	for _, r := range reminders {
		if !r.Active {
			continue
		}
		anchor, err := r.Anchor(loc)
		if err != nil {
			continue
		}

		current := now
		if anchor.After(now) {
			entries = append(entries, timelineEntry{At: anchor, Reminder: r})
			current = anchor
		}
		if r.Rule.IsNone() {
			continue
		}
		// Collect up to limit occurrences per reminder; the merged list is
		// sorted and truncated below.
		for i := 0; i < limit; i++ {
			next, ok := recurrence.NextOccurrence(anchor, r.Rule, current)
			if !ok {
				break
			}
			entries = append(entries, timelineEntry{At: next, Reminder: r})
			current = next
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].At.Before(entries[j].At) })
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func (m *Model) updateValidationStatus() {
	all, err := m.store.GetAllRemindersIncludingDeleted()
	if err != nil {
		m.validationWarning = "⚠ Validation unavailable"
		return
	}

	result := validation.New().ValidateReminders(all)
	if result.HasConflicts() {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s)", len(result.Conflicts))
	} else {
		m.validationWarning = ""
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == constants.StateReminders {
		keys = append(keys, m.keys.Add, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}
	actions := []key.Binding{m.keys.Add, m.keys.Delete}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
