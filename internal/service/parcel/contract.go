//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"

	"parcel-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error)
	GetByID(ctx context.Context, id int64) (*entities.Package, error)
	List(ctx context.Context, filter entities.PackageFilter) ([]entities.Package, error)
	DeletePending(ctx context.Context, id int64) error
	MarkDelivered(ctx context.Context, id int64) error
}

type UserService interface {
	RequireRole(ctx context.Context, actorID int64, role entities.UserRole) (*entities.User, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
