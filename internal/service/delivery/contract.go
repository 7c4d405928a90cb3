//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"parcel-service/internal/entities"
	"parcel-service/pkg/logger"
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Repository interface {
	Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
	List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.DeliveryRecord, error)
	// ReferencedPhotoPaths возвращает подмножество paths, на которые ссылаются доставки.
	ReferencedPhotoPaths(ctx context.Context, paths []string) ([]string, error)
}

type PackageService interface {
	GetPackage(ctx context.Context, id int64) (*entities.Package, error)
	MarkDelivered(ctx context.Context, id int64) error
}

type UserService interface {
	GetUser(ctx context.Context, id int64) (*entities.User, error)
	RequireRole(ctx context.Context, actorID int64, role entities.UserRole) (*entities.User, error)
}

type PhotoStore interface {
	Save(ctx context.Context, photo entities.Photo) (entities.StoredPhoto, error)
	Remove(ctx context.Context, path string) error
	// RemoveIfUnchanged не трогает файл, перезаписанный после stored.
	RemoveIfUnchanged(ctx context.Context, stored entities.StoredPhoto) error
	ListOlderThan(ctx context.Context, cutoff time.Time) ([]string, error)
}

type Geocoder interface {
	ReverseGeocode(ctx context.Context, latitude, longitude float64) string
}

type EventPublisher interface {
	PublishDeliveryRecorded(ctx context.Context, record entities.DeliveryRecord) error
}

type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
