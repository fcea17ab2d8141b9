package fleet

import "time"

type Vehicle struct {
	PrimaryIdentifier int

	Registration string
	Status       VehicleStatus

	CreationDateTime     time.Time
	ModificationDateTime time.Time
}

type VehicleStatus string

const (
	VehicleStatusActive   VehicleStatus = "active"
	VehicleStatusInactive VehicleStatus = "inactive"
)
