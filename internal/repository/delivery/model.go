package delivery

import "time"

type DeliveryDB struct {
	ID          int64
	PackageID   int64
	AgentID     int64
	Latitude    float64
	Longitude   float64
	Address     string
	PhotoPath   string
	Notes       string
	DeliveredAt time.Time
}

type DeliveryModifyDB struct {
	PackageID   *int64
	AgentID     *int64
	Latitude    *float64
	Longitude   *float64
	Address     *string
	PhotoPath   *string
	Notes       *string
	DeliveredAt *time.Time
}

type DeliveryRecordDB struct {
	DeliveryDB
	TrackingNumber string
	AgentName      string
}
