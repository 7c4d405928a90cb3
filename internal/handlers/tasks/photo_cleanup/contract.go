//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=photo_cleanup_test
package photo_cleanup

import (
	"context"
	"time"

	"parcel-service/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CleanupOrphanPhotos(ctx context.Context, cutoff time.Time) (int, error)
}
