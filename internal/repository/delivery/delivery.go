package delivery

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"parcel-service/internal/entities"
	"parcel-service/internal/repository"
	"parcel-service/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyDB := FromDomainModify(&deliveryModify)

	query := `
		INSERT INTO deliveries (package_id, agent_id, latitude, longitude, address, photo_path, notes, delivered_at)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, ''), COALESCE($8, NOW()))
		RETURNING id, package_id, agent_id, latitude, longitude, address, photo_path, notes, delivered_at
	`

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		deliveryModifyDB.PackageID,
		deliveryModifyDB.AgentID,
		deliveryModifyDB.Latitude,
		deliveryModifyDB.Longitude,
		deliveryModifyDB.Address,
		deliveryModifyDB.PhotoPath,
		deliveryModifyDB.Notes,
		deliveryModifyDB.DeliveredAt,
	).Scan(
		&deliveryDB.ID,
		&deliveryDB.PackageID,
		&deliveryDB.AgentID,
		&deliveryDB.Latitude,
		&deliveryDB.Longitude,
		&deliveryDB.Address,
		&deliveryDB.PhotoPath,
		&deliveryDB.Notes,
		&deliveryDB.DeliveredAt,
	)
	if err != nil {
		// уникальный индекс по package_id
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, delivery.ErrAlreadyDelivered
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.DeliveryRecord, error) {
	builder := qb.
		Select(
			"d.id", "d.package_id", "d.agent_id", "d.latitude", "d.longitude",
			"d.address", "d.photo_path", "d.notes", "d.delivered_at",
			"p.tracking_number", "u.full_name",
		).
		From("deliveries d").
		Join("packages p ON p.id = d.package_id").
		Join("users u ON u.id = d.agent_id").
		OrderBy("d.delivered_at DESC", "d.id DESC")

	if filter.AgentID != nil {
		builder = builder.Where(sq.Eq{"d.agent_id": *filter.AgentID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}
	defer rows.Close()

	recordModels := make([]DeliveryRecordDB, 0, 8)
	for rows.Next() {
		var recordModel DeliveryRecordDB
		err := rows.Scan(
			&recordModel.ID,
			&recordModel.PackageID,
			&recordModel.AgentID,
			&recordModel.Latitude,
			&recordModel.Longitude,
			&recordModel.Address,
			&recordModel.PhotoPath,
			&recordModel.Notes,
			&recordModel.DeliveredAt,
			&recordModel.TrackingNumber,
			&recordModel.AgentName,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
		}
		recordModels = append(recordModels, recordModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	return ToRecordList(recordModels), nil
}

func (r *Repository) ReferencedPhotoPaths(ctx context.Context, paths []string) ([]string, error) {
	if len(paths) == 0 {
		return []string{}, nil
	}

	query, args, err := qb.
		Select("DISTINCT photo_path").
		From("deliveries").
		Where(sq.Eq{"photo_path": paths}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository referenced photos error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository referenced photos error: %w", err)
	}
	defer rows.Close()

	referenced := make([]string, 0, len(paths))
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository referenced photos error: %w", err)
		}
		referenced = append(referenced, path)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository referenced photos error: %w", err)
	}

	return referenced, nil
}
