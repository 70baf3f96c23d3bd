package domain

import "time"

// Default configuration values
const (
	DefaultSlotStep        = 15 * time.Minute
	DefaultDurationMinutes = 60
	DefaultMaxRangeDays    = 31
	DefaultShopTimezone    = "UTC"
	DefaultLockTTLSeconds  = 10
	DefaultLockWaitMillis  = 3000
	DefaultLockRetryMillis = 50
)

// Business validation constants
const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 24 * 60
	MaxContactLength   = 1024
	MaxTemplates       = 7 * 48
	MaxCapacity        = 10000
	MinSlotStep        = time.Minute
	MaxSlotStep        = 24 * time.Hour
)

// Time format constants
const (
	TimeFormat     = "15:04"      // HH:MM
	DateFormat     = "2006-01-02" // YYYY-MM-DD
	DateTimeFormat = time.RFC3339
)

// Lock key prefix for per-day booking serialization
const ReservationLockPrefix = "reservations:day:"
