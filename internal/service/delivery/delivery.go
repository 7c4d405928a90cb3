package delivery

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"parcel-service/internal/entities"
	"parcel-service/internal/service/parcel"
	"parcel-service/pkg/logger"
)

type Delivery struct {
	repository     Repository
	packageService PackageService
	userService    UserService
	photoStore     PhotoStore
	geocoder       Geocoder
	publisher      EventPublisher
	txManager      TxManager
	log            serviceLogger
}

func New(
	repository Repository,
	packageService PackageService,
	userService UserService,
	photoStore PhotoStore,
	geocoder Geocoder,
	publisher EventPublisher,
	txManager TxManager,
	log serviceLogger,
) *Delivery {
	return &Delivery{
		repository:     repository,
		packageService: packageService,
		userService:    userService,
		photoStore:     photoStore,
		geocoder:       geocoder,
		publisher:      publisher,
		txManager:      txManager,
		log:            log,
	}
}

func (d *Delivery) RecordDelivery(ctx context.Context, submission entities.DeliverySubmission) (*entities.DeliveryReceipt, error) {
	if err := validateSubmission(submission); err != nil {
		return nil, err
	}

	pkg, err := d.packageService.GetPackage(ctx, submission.PackageID)
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}
	if pkg.Status == entities.PackageDelivered {
		return nil, ErrAlreadyDelivered
	}

	agent, err := d.userService.GetUser(ctx, submission.AgentID)
	if err != nil {
		return nil, fmt.Errorf("get agent: %w", err)
	}

	stored, err := d.photoStore.Save(ctx, submission.Photo)
	if err != nil {
		return nil, fmt.Errorf("%w: save photo: %w", ErrPersistence, err)
	}

	// геокодер не возвращает ошибок: при сбое адрес заменяется sentinel-строкой
	address := d.geocoder.ReverseGeocode(ctx, submission.Latitude, submission.Longitude)

	var created *entities.Delivery
	err = d.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		err := d.packageService.MarkDelivered(ctx, pkg.ID)
		if err != nil {
			if errors.Is(err, parcel.ErrPackageNotPending) {
				return ErrAlreadyDelivered
			}
			return fmt.Errorf("mark package delivered: %w", err)
		}

		created, err = d.repository.Create(ctx, entities.DeliveryModify{
			PackageID: &pkg.ID,
			AgentID:   &agent.ID,
			Latitude:  &submission.Latitude,
			Longitude: &submission.Longitude,
			Address:   &address,
			PhotoPath: &stored.Path,
			Notes:     &submission.Notes,
		})
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyDelivered) {
			err = fmt.Errorf("%w: %w", ErrPersistence, err)
		}
		return nil, d.compensatePhoto(ctx, stored, err)
	}

	d.publishRecorded(ctx, entities.DeliveryRecord{
		Delivery:       *created,
		TrackingNumber: pkg.TrackingNumber,
		AgentName:      agent.FullName,
	})

	return &entities.DeliveryReceipt{
		DeliveryID: created.ID,
		Address:    created.Address,
		PhotoPath:  created.PhotoPath,
	}, nil
}

func (d *Delivery) DeliveriesForAgent(ctx context.Context, agentID int64) ([]entities.DeliveryRecord, error) {
	if _, err := d.userService.GetUser(ctx, agentID); err != nil {
		return nil, fmt.Errorf("get agent: %w", err)
	}

	records, err := d.repository.List(ctx, entities.DeliveryFilter{AgentID: &agentID})
	if err != nil {
		return nil, fmt.Errorf("list agent deliveries: %w", err)
	}
	return records, nil
}

func (d *Delivery) DeliveriesAll(ctx context.Context, actorID int64) ([]entities.DeliveryRecord, error) {
	if _, err := d.userService.RequireRole(ctx, actorID, entities.RoleAdmin); err != nil {
		return nil, err
	}

	records, err := d.repository.List(ctx, entities.DeliveryFilter{})
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return records, nil
}

// CleanupOrphanPhotos удаляет фото старше cutoff, на которые не ссылается ни одна доставка.
func (d *Delivery) CleanupOrphanPhotos(ctx context.Context, cutoff time.Time) (int, error) {
	paths, err := d.photoStore.ListOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("list photos: %w", err)
	}
	if len(paths) == 0 {
		return 0, nil
	}

	referenced, err := d.repository.ReferencedPhotoPaths(ctx, paths)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("cleanup timed out: %w", err)
		}
		return 0, fmt.Errorf("referenced photos: %w", err)
	}

	var (
		removed int
		errs    []error
	)
	for _, path := range paths {
		if slices.Contains(referenced, path) {
			continue
		}
		if err := d.photoStore.Remove(ctx, path); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", path, err))
			continue
		}
		removed++
	}

	return removed, errors.Join(errs...)
}

// compensatePhoto откатывает сохранение фото после неудачной транзакции.
// Файл с тем же именем мог уже принадлежать другой доставке или быть
// перезаписан параллельным запросом, такой не трогаем.
func (d *Delivery) compensatePhoto(ctx context.Context, stored entities.StoredPhoto, cause error) error {
	ctx = context.WithoutCancel(ctx)

	referenced, err := d.repository.ReferencedPhotoPaths(ctx, []string{stored.Path})
	if err != nil {
		return errors.Join(cause, fmt.Errorf("check photo references: %w", err))
	}
	if len(referenced) > 0 {
		return cause
	}

	if err := d.photoStore.RemoveIfUnchanged(ctx, stored); err != nil {
		return errors.Join(cause, fmt.Errorf("remove photo: %w", err))
	}
	return cause
}

func (d *Delivery) publishRecorded(ctx context.Context, record entities.DeliveryRecord) {
	err := d.publisher.PublishDeliveryRecorded(ctx, record)
	if err != nil {
		d.log.With(
			logger.NewField("delivery_id", record.ID),
			logger.NewField("error", err),
		).Warn("failed to publish delivery recorded event")
	}
}
