package parcel

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"parcel-service/internal/entities"
	"parcel-service/internal/repository"
	"parcel-service/internal/service/parcel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const packageColumns = `id, tracking_number, destination_address, recipient_name, status, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, packageModifyEntity entities.PackageModify) (*entities.Package, error) {
	packageModifyModel := FromDomainModify(&packageModifyEntity)
	query := `INSERT INTO packages (tracking_number, destination_address, recipient_name, status)
		VALUES ($1, $2, $3, COALESCE($4, 'pending'))
		RETURNING ` + packageColumns

	packageModel, err := scanPackage(r.querier.QueryRow(
		ctx,
		query,
		packageModifyModel.TrackingNumber,
		packageModifyModel.DestinationAddress,
		packageModifyModel.RecipientName,
		packageModifyModel.Status,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, parcel.ErrDuplicateTrackingNumber
		}
		return nil, fmt.Errorf("unexpected package repository create error: %w", err)
	}

	return ToDomain(packageModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Package, error) {
	query := `SELECT ` + packageColumns + `
		FROM packages
		WHERE id = $1`

	packageModel, err := scanPackage(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrPackageNotFound
		}
		return nil, fmt.Errorf("unexpected package repository getbyid error: %w", err)
	}

	return ToDomain(packageModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.PackageFilter) ([]entities.Package, error) {
	builder := qb.
		Select(packageColumns).
		From("packages")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	if filter.NewestFirst {
		builder = builder.OrderBy("created_at DESC", "id DESC")
	} else {
		builder = builder.OrderBy("id")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository list error: %w", err)
	}
	defer rows.Close()

	packageModels := make([]PackageDB, 0, 8)
	for rows.Next() {
		packageModel, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected package repository list error: %w", err)
		}
		packageModels = append(packageModels, *packageModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository list error: %w", err)
	}

	return ToDomainList(packageModels), nil
}

// DeletePending удаляет посылку только в статусе pending.
func (r *Repository) DeletePending(ctx context.Context, id int64) error {
	query := `DELETE FROM packages
		WHERE id = $1 AND status = 'pending'`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return parcel.ErrPackageNotPending
		}
		return fmt.Errorf("unexpected package repository delete error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return parcel.ErrPackageNotPending
	}
	return nil
}

// MarkDelivered условный переход pending -> delivered.
func (r *Repository) MarkDelivered(ctx context.Context, id int64) error {
	query := `UPDATE packages
		SET status = 'delivered'
		WHERE id = $1 AND status = 'pending'`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected package repository mark delivered error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return parcel.ErrPackageNotPending
	}
	return nil
}

func scanPackage(row pgx.Row) (*PackageDB, error) {
	var packageModel PackageDB
	err := row.Scan(
		&packageModel.ID,
		&packageModel.TrackingNumber,
		&packageModel.DestinationAddress,
		&packageModel.RecipientName,
		&packageModel.Status,
		&packageModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &packageModel, nil
}
