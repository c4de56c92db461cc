package postgres

import (
	"fmt"

	"github.com/remindapp/remind/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "timezone":
			settings.Timezone = value
		case "preview_count":
			if _, err := fmt.Sscanf(value, "%d", &settings.PreviewCount); err != nil {
				return models.Settings{}, fmt.Errorf("parsing preview_count: %w", err)
			}
		case "lead_time_min":
			if _, err := fmt.Sscanf(value, "%d", &settings.LeadTimeMin); err != nil {
				return models.Settings{}, fmt.Errorf("parsing lead_time_min: %w", err)
			}
		case "notifications_enabled":
			settings.NotificationsEnabled = value == "true"
		}
		count++
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("timezone", settings.Timezone); err != nil {
		return err
	}
	if _, err := stmt.Exec("preview_count", fmt.Sprintf("%d", settings.PreviewCount)); err != nil {
		return err
	}
	if _, err := stmt.Exec("lead_time_min", fmt.Sprintf("%d", settings.LeadTimeMin)); err != nil {
		return err
	}
	if _, err := stmt.Exec("notifications_enabled", fmt.Sprintf("%v", settings.NotificationsEnabled)); err != nil {
		return err
	}

	return tx.Commit()
}
