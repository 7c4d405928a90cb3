package photo_cleanup

import (
	"context"
	"time"

	"parcel-service/pkg/logger"
)

type PhotoCleanup struct {
	log      taskLogger
	service  Service
	interval time.Duration
	grace    time.Duration
	now      func() time.Time
}

// NewPhotoCleanup grace защищает фото, чья доставка еще не закоммичена.
func NewPhotoCleanup(log taskLogger, service Service, interval, grace time.Duration) *PhotoCleanup {
	return &PhotoCleanup{
		log:      log,
		service:  service,
		interval: interval,
		grace:    grace,
		now:      time.Now,
	}
}

func (p *PhotoCleanup) TTL() time.Duration {
	return p.interval
}

func (p *PhotoCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	cutoff := p.now().Add(-p.grace)
	removed, err := p.service.CleanupOrphanPhotos(ctxWithTimeout, cutoff)

	if removed > 0 {
		p.log.With(
			logger.NewField("removed_photos", removed),
		).Info("photo cleanup")
	}

	return err
}

func (p *PhotoCleanup) Info() string {
	return "photo cleanup"
}
