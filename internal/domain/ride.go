package domain

import "time"

// RideStatus enumerates ride lifecycle states.
type RideStatus string

const (
	RideStatusRequested RideStatus = "requested"
	RideStatusAccepted  RideStatus = "accepted"
	RideStatusOngoing   RideStatus = "ongoing"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCancelled RideStatus = "cancelled"
)

// Valid reports whether the status is a known lifecycle state.
func (s RideStatus) Valid() bool {
	switch s {
	case RideStatusRequested, RideStatusAccepted, RideStatusOngoing, RideStatusCompleted, RideStatusCancelled:
		return true
	}
	return false
}

// rideTransitions holds the allowed forward edges of the lifecycle.
var rideTransitions = map[RideStatus][]RideStatus{
	RideStatusRequested: {RideStatusAccepted, RideStatusCancelled},
	RideStatusAccepted:  {RideStatusOngoing, RideStatusCancelled},
	RideStatusOngoing:   {RideStatusCompleted},
}

// CanTransition reports whether a ride may move from one status to another.
func (s RideStatus) CanTransition(to RideStatus) bool {
	for _, next := range rideTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Ride is a passenger trip request. DriverID and VehicleID are attached when
// a driver accepts; the timestamps record when each transition happened.
type Ride struct {
	ID          string
	UserID      string
	DriverID    *string
	VehicleID   *string
	Pickup      string
	Destination string
	Status      RideStatus
	Fare        float64
	AcceptedAt  *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
