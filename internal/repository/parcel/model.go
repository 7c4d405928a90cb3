package parcel

import "time"

type PackageDB struct {
	ID                 int64
	TrackingNumber     string
	DestinationAddress string
	RecipientName      string
	Status             string
	CreatedAt          time.Time
}

type PackageModifyDB struct {
	TrackingNumber     *string
	DestinationAddress *string
	RecipientName      *string
	Status             *string
}
