package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/remindapp/remind/internal/models"
	"github.com/remindapp/remind/internal/recurrence"
)

const reminderColumns = "id, title, date, time, rule, notes, active, created_at, deleted_at"

func (s *Store) AddReminder(reminder models.Reminder) error {
	return s.UpdateReminder(reminder)
}

func (s *Store) GetReminder(id string) (models.Reminder, error) {
	row := s.db.QueryRow(
		"SELECT "+reminderColumns+" FROM reminders WHERE id = ? AND deleted_at IS NULL", id)

	reminder, err := scanReminder(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Reminder{}, fmt.Errorf("reminder with id %s not found", id)
		}
		return models.Reminder{}, err
	}
	return reminder, nil
}

func (s *Store) GetAllReminders() ([]models.Reminder, error) {
	return s.queryReminders("SELECT " + reminderColumns + " FROM reminders WHERE deleted_at IS NULL ORDER BY date, time")
}

func (s *Store) GetAllRemindersIncludingDeleted() ([]models.Reminder, error) {
	return s.queryReminders("SELECT " + reminderColumns + " FROM reminders ORDER BY date, time")
}

func (s *Store) queryReminders(query string) ([]models.Reminder, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}
	return reminders, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReminder(row rowScanner) (models.Reminder, error) {
	var r models.Reminder
	var ruleJSON string
	var deletedAt sql.NullString

	err := row.Scan(&r.ID, &r.Title, &r.Date, &r.Time, &ruleJSON, &r.Notes, &r.Active, &r.CreatedAt, &deletedAt)
	if err != nil {
		return models.Reminder{}, err
	}

	if ruleJSON != "" {
		if err := json.Unmarshal([]byte(ruleJSON), &r.Rule); err != nil {
			return models.Reminder{}, fmt.Errorf("failed to decode recurrence rule for reminder %s: %w", r.ID, err)
		}
	} else {
		r.Rule = recurrence.None()
	}

	if deletedAt.Valid {
		r.DeletedAt = &deletedAt.String
	}

	return r, nil
}

func (s *Store) UpdateReminder(reminder models.Reminder) error {
	ruleJSON, err := json.Marshal(reminder.Rule)
	if err != nil {
		return fmt.Errorf("failed to marshal recurrence rule: %w", err)
	}

	var deletedAt sql.NullString
	if reminder.DeletedAt != nil {
		deletedAt = sql.NullString{String: *reminder.DeletedAt, Valid: true}
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO reminders (id, title, date, time, rule, notes, active, created_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		reminder.ID, reminder.Title, reminder.Date, reminder.Time, string(ruleJSON),
		reminder.Notes, reminder.Active, reminder.CreatedAt, deletedAt,
	)
	return err
}

func (s *Store) DeleteReminder(id string) error {
	// Soft delete: set deleted_at instead of removing the record
	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM reminders WHERE id = ?", id).Scan(&deletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("reminder with id %s not found", id)
		}
		return fmt.Errorf("failed to check reminder existence: %w", err)
	}

	if deletedAt.Valid {
		return fmt.Errorf("reminder with id %s is already deleted", id)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec("UPDATE reminders SET deleted_at = ? WHERE id = ?", now, id)
	return err
}

func (s *Store) RestoreReminder(id string) error {
	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM reminders WHERE id = ?", id).Scan(&deletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("reminder with id %s not found", id)
		}
		return fmt.Errorf("failed to check reminder existence: %w", err)
	}

	if !deletedAt.Valid {
		return fmt.Errorf("cannot restore a reminder that is not deleted: %s", id)
	}

	_, err = s.db.Exec("UPDATE reminders SET deleted_at = NULL WHERE id = ?", id)
	return err
}
