package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "remind"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/remind/remind.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "remind-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.remindapp.remind"
)

// Session States
const (
	StateTimeline SessionState = iota
	StateReminders
	StateAdding
	StateConfirmDelete
)
