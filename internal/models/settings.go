package models

// Settings represents application-wide settings
type Settings struct {
	Timezone             string `json:"timezone"`              // IANA timezone name, or "Local" for the system timezone
	PreviewCount         int    `json:"preview_count"`         // how many upcoming occurrences previews show
	LeadTimeMin          int    `json:"lead_time_min"`         // minutes before an occurrence to hand off a notification
	NotificationsEnabled bool   `json:"notifications_enabled"` // whether notification hand-off is enabled
}
