package config

import "time"

// Database/application settings.
const (
	AppName     = "turni"
	DBFileName  = "turni.db"
	SnapshotKey = "shift_app_data"
)

// Date and clock formats used across the UI, storage and reports.
const (
	DateFormat   = "2006-01-02"
	ClockFormat  = "15:04"
	ReportFormat = "02/01/2006"
)

// Form defaults.
const (
	DefaultStartTime  = "09:00"
	DefaultEndTime    = "17:00"
	DefaultDuration   = 8.0
	MaxDescriptionLen = 200
)

// AI quick-fill settings.
const (
	AIModel   = "gemini-2.5-flash"
	AITimeout = 30 * time.Second
)
