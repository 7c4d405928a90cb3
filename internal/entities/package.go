package entities

import "time"

type Package struct {
	ID                 int64
	TrackingNumber     string
	DestinationAddress string
	RecipientName      string
	Status             PackageStatus
	CreatedAt          time.Time
}

type PackageStatus string

const (
	PackagePending   PackageStatus = "pending"
	PackageDelivered PackageStatus = "delivered"
)

func (s PackageStatus) String() string {
	return string(s)
}

type PackageModify struct {
	TrackingNumber     *string
	DestinationAddress *string
	RecipientName      *string
	Status             *PackageStatus
}

type PackageFilter struct {
	Status *PackageStatus
	// false - по возрастанию id
	NewestFirst bool
}
