package parcel

import (
	"parcel-service/internal/entities"
)

func ToDomain(p *PackageDB) *entities.Package {
	if p == nil {
		return nil
	}

	return &entities.Package{
		ID:                 p.ID,
		TrackingNumber:     p.TrackingNumber,
		DestinationAddress: p.DestinationAddress,
		RecipientName:      p.RecipientName,
		Status:             entities.PackageStatus(p.Status),
		CreatedAt:          p.CreatedAt,
	}
}

func FromDomainModify(packageModify *entities.PackageModify) *PackageModifyDB {
	if packageModify == nil {
		return nil
	}
	packageDB := &PackageModifyDB{
		TrackingNumber:     packageModify.TrackingNumber,
		DestinationAddress: packageModify.DestinationAddress,
		RecipientName:      packageModify.RecipientName,
	}

	if packageModify.Status != nil {
		status := packageModify.Status.String()
		packageDB.Status = &status
	}

	return packageDB
}

func ToDomainList(packagesDB []PackageDB) []entities.Package {
	if len(packagesDB) == 0 {
		return []entities.Package{}
	}

	result := make([]entities.Package, len(packagesDB))
	for i, packageDB := range packagesDB {
		result[i] = *ToDomain(&packageDB)
	}
	return result
}
