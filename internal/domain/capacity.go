package domain

import (
	"time"

	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// CapacitySetting default capacity for a scope.
// At most one setting exists per scope (including Total).
type CapacitySetting struct {
	ID              int64
	Scope           ServiceScope
	DefaultCapacity int
	UpdatedAt       time.Time
}

// CapacityOverride day-specific capacity that takes precedence over the default setting.
// Overrides are never updated: replace means delete and create.
type CapacityOverride struct {
	ID        int64
	Date      types.Date
	Scope     ServiceScope
	Capacity  int
	Reason    *string
	CreatedAt time.Time
}

// OccupancyRecord occupancy of one (date, scope) slot
type OccupancyRecord struct {
	Date    types.Date
	Scope   ServiceScope
	Current  int
	Max      int
	Resolved bool // емкость задана исключением или настройкой (в том числе явным 0)
}

// IsOverCapacity returns true if approved bookings exceed the resolved capacity
func (r OccupancyRecord) IsOverCapacity() bool {
	return r.Current > r.Max
}

// IsUnresolved returns true if no override or setting gave the slot a capacity
func (r OccupancyRecord) IsUnresolved() bool {
	return !r.Resolved
}

// Available returns free places (never negative)
func (r OccupancyRecord) Available() int {
	if r.Current >= r.Max {
		return 0
	}
	return r.Max - r.Current
}
