package domain

// PassengerStats aggregates ride activity per passenger.
type PassengerStats struct {
	UserID         string  `json:"user_id"`
	Name           string  `json:"name"`
	TotalRides     int64   `json:"total_rides"`
	CompletedRides int64   `json:"completed_rides"`
	CancelledRides int64   `json:"cancelled_rides"`
	TotalSpent     float64 `json:"total_spent"`
}

// DriverStats aggregates ride activity per driver account.
type DriverStats struct {
	DriverID       string  `json:"driver_id"`
	Name           string  `json:"name"`
	TotalRides     int64   `json:"total_rides"`
	CompletedRides int64   `json:"completed_rides"`
	TotalEarned    float64 `json:"total_earned"`
}
