package constants

// Default settings values used when initializing a fresh store
const (
	DefaultTimezone             = "Local"
	DefaultPreviewCount         = 10
	DefaultLeadTimeMin          = 10
	DefaultNotificationsEnabled = true
)
