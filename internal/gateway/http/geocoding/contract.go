package geocoding

import (
	"context"

	"parcel-service/pkg/logger"
)

type cache interface {
	Get(ctx context.Context, latitude, longitude float64) (string, bool, error)
	Set(ctx context.Context, latitude, longitude float64, address string) error
}

type gatewayLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
