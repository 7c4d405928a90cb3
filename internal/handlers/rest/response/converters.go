package response

import (
	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
)

func Package(pkg entities.Package) dto.Package {
	return dto.Package{
		PackageId:          pkg.ID,
		TrackingNumber:     pkg.TrackingNumber,
		DestinationAddress: pkg.DestinationAddress,
		RecipientName:      pkg.RecipientName,
		Status:             pkg.Status.String(),
		CreatedAt:          pkg.CreatedAt,
	}
}

// Packages пустой список кодируется как [], а не null.
func Packages(packages []entities.Package) []dto.Package {
	result := make([]dto.Package, 0, len(packages))
	for _, pkg := range packages {
		result = append(result, Package(pkg))
	}
	return result
}

func Delivery(record entities.DeliveryRecord) dto.Delivery {
	return dto.Delivery{
		DeliveryId:     record.ID,
		PackageId:      record.PackageID,
		TrackingNumber: record.TrackingNumber,
		AgentName:      record.AgentName,
		Latitude:       record.Latitude,
		Longitude:      record.Longitude,
		Address:        record.Address,
		PhotoPath:      record.PhotoPath,
		Notes:          record.Notes,
		DeliveredAt:    record.DeliveredAt,
	}
}

func Deliveries(records []entities.DeliveryRecord) []dto.Delivery {
	result := make([]dto.Delivery, 0, len(records))
	for _, record := range records {
		result = append(result, Delivery(record))
	}
	return result
}
