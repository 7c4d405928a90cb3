package parcel

import (
	"context"
	"fmt"

	"parcel-service/internal/entities"
)

type Parcel struct {
	repository  Repository
	userService UserService
	txManager   TxManager
}

func New(repository Repository, userService UserService, txManager TxManager) *Parcel {
	return &Parcel{
		repository:  repository,
		userService: userService,
		txManager:   txManager,
	}
}

func (s *Parcel) CreatePackage(ctx context.Context, actorID int64, packageModify entities.PackageModify) (*entities.Package, error) {
	if _, err := s.userService.RequireRole(ctx, actorID, entities.RoleAdmin); err != nil {
		return nil, err
	}

	if err := validatePackageModify(packageModify); err != nil {
		return nil, err
	}

	status := entities.PackagePending
	pkg, err := s.repository.Create(ctx, entities.PackageModify{
		TrackingNumber:     packageModify.TrackingNumber,
		DestinationAddress: packageModify.DestinationAddress,
		RecipientName:      packageModify.RecipientName,
		Status:             &status,
	})
	if err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}

	return pkg, nil
}

func (s *Parcel) ListAllPackages(ctx context.Context, actorID int64) ([]entities.Package, error) {
	if _, err := s.userService.RequireRole(ctx, actorID, entities.RoleAdmin); err != nil {
		return nil, err
	}

	packages, err := s.repository.List(ctx, entities.PackageFilter{NewestFirst: true})
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return packages, nil
}

func (s *Parcel) ListPendingPackages(ctx context.Context) ([]entities.Package, error) {
	status := entities.PackagePending
	packages, err := s.repository.List(ctx, entities.PackageFilter{Status: &status})
	if err != nil {
		return nil, fmt.Errorf("list pending packages: %w", err)
	}
	return packages, nil
}

func (s *Parcel) GetPackage(ctx context.Context, id int64) (*entities.Package, error) {
	if id <= 0 {
		return nil, ErrInvalidPackageID
	}

	pkg, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}
	return pkg, nil
}

func (s *Parcel) DeletePackage(ctx context.Context, actorID, id int64) error {
	if _, err := s.userService.RequireRole(ctx, actorID, entities.RoleAdmin); err != nil {
		return err
	}
	if id <= 0 {
		return ErrInvalidPackageID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		pkg, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get package: %w", err)
		}
		if pkg.Status != entities.PackagePending {
			return ErrPackageNotPending
		}

		if err := s.repository.DeletePending(ctx, id); err != nil {
			return fmt.Errorf("delete package: %w", err)
		}
		return nil
	})
}

// MarkDelivered вызывается только из транзакции записи доставки.
func (s *Parcel) MarkDelivered(ctx context.Context, id int64) error {
	if err := s.repository.MarkDelivered(ctx, id); err != nil {
		return fmt.Errorf("mark delivered: %w", err)
	}
	return nil
}
