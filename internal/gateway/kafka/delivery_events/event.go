package delivery_events

import (
	"time"

	"parcel-service/internal/entities"
)

const EventDeliveryRecorded = "delivery.recorded"

type DeliveryRecordedEvent struct {
	DeliveryID     int64     `json:"delivery_id"`
	PackageID      int64     `json:"package_id"`
	AgentID        int64     `json:"agent_id"`
	TrackingNumber string    `json:"tracking_number"`
	Address        string    `json:"address"`
	PhotoPath      string    `json:"photo_path"`
	DeliveredAt    time.Time `json:"delivered_at"`
}

func toEvent(record entities.DeliveryRecord) DeliveryRecordedEvent {
	return DeliveryRecordedEvent{
		DeliveryID:     record.ID,
		PackageID:      record.PackageID,
		AgentID:        record.AgentID,
		TrackingNumber: record.TrackingNumber,
		Address:        record.Address,
		PhotoPath:      record.PhotoPath,
		DeliveredAt:    record.DeliveredAt.UTC(),
	}
}
