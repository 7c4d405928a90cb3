package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"parcel-service/internal/entities"
	"parcel-service/internal/repository"
	"parcel-service/internal/service/user"
)

const userColumns = `id, username, password_hash, full_name, role, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)
	query := `INSERT INTO users (username, password_hash, full_name, role)
		VALUES ($1, $2, COALESCE($3, ''), COALESCE($4, 'agent'))
		RETURNING ` + userColumns

	userModel, err := scanUser(r.querier.QueryRow(
		ctx,
		query,
		userModifyModel.Username,
		userModifyModel.PasswordHash,
		userModifyModel.FullName,
		userModifyModel.Role,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, user.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return ToDomain(userModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1`

	userModel, err := scanUser(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyid error: %w", err)
	}

	return ToDomain(userModel), nil
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE username = $1`

	userModel, err := scanUser(r.querier.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyusername error: %w", err)
	}

	return ToDomain(userModel), nil
}

func scanUser(row pgx.Row) (*UserDB, error) {
	var userModel UserDB
	err := row.Scan(
		&userModel.ID,
		&userModel.Username,
		&userModel.PasswordHash,
		&userModel.FullName,
		&userModel.Role,
		&userModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &userModel, nil
}
