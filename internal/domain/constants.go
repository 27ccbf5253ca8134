package domain

// Business validation constants
const (
	MaxMessageLength    = 1000
	MaxAdminNotesLength = 1000
	MaxReasonLength     = 500
	MaxCapacity         = 1000
)

// Default limits, overridable through [booking] config section
const (
	DefaultMaxBookingDays = 90  // longest stay a customer may request
	DefaultMaxRangeDays   = 366 // widest occupancy query
)

// DateFormat формат дат в API (YYYY-MM-DD)
const DateFormat = "2006-01-02"
