package delivery

import (
	"parcel-service/internal/entities"
)

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	return &entities.Delivery{
		ID:          d.ID,
		PackageID:   d.PackageID,
		AgentID:     d.AgentID,
		Latitude:    d.Latitude,
		Longitude:   d.Longitude,
		Address:     d.Address,
		PhotoPath:   d.PhotoPath,
		Notes:       d.Notes,
		DeliveredAt: d.DeliveredAt,
	}
}

func FromDomainModify(deliveryModify *entities.DeliveryModify) *DeliveryModifyDB {
	if deliveryModify == nil {
		return nil
	}

	return &DeliveryModifyDB{
		PackageID:   deliveryModify.PackageID,
		AgentID:     deliveryModify.AgentID,
		Latitude:    deliveryModify.Latitude,
		Longitude:   deliveryModify.Longitude,
		Address:     deliveryModify.Address,
		PhotoPath:   deliveryModify.PhotoPath,
		Notes:       deliveryModify.Notes,
		DeliveredAt: deliveryModify.DeliveredAt,
	}
}

func ToRecordList(recordsDB []DeliveryRecordDB) []entities.DeliveryRecord {
	if len(recordsDB) == 0 {
		return []entities.DeliveryRecord{}
	}

	result := make([]entities.DeliveryRecord, len(recordsDB))
	for i, recordDB := range recordsDB {
		result[i] = entities.DeliveryRecord{
			Delivery:       *ToDomain(&recordDB.DeliveryDB),
			TrackingNumber: recordDB.TrackingNumber,
			AgentName:      recordDB.AgentName,
		}
	}
	return result
}
