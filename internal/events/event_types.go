package events

import (
	"time"

	"github.com/spec-kit/ride-sharing-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventRideRequested       EventType = "ride_requested"
	EventRideAccepted        EventType = "ride_accepted"
	EventRideStatusChanged   EventType = "ride_status_changed"
	EventRideCancelled       EventType = "ride_cancelled"
	EventTransactionRecorded EventType = "transaction_recorded"
)

// Actor is the principal that triggered the event.
type Actor struct {
	SubjectID string      `json:"subject_id"`
	Role      domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	RideID    string      `json:"ride_id,omitempty"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// RideRequestedPayload payload.
type RideRequestedPayload struct {
	Pickup      string `json:"pickup"`
	Destination string `json:"destination"`
}

// RideAcceptedPayload payload.
type RideAcceptedPayload struct {
	DriverID  string `json:"driver_id"`
	VehicleID string `json:"vehicle_id"`
}

// RideStatusChangedPayload payload.
type RideStatusChangedPayload struct {
	OldStatus domain.RideStatus `json:"old_status"`
	NewStatus domain.RideStatus `json:"new_status"`
}

// TransactionRecordedPayload payload.
type TransactionRecordedPayload struct {
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
}
