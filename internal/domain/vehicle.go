package domain

import "time"

// Vehicle is the car a driver registers before accepting rides. DriverID is
// the owning driver's account id.
type Vehicle struct {
	ID           string
	DriverID     string
	Make         string
	Model        string
	Year         int
	LicensePlate string
	Color        string
	Capacity     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
