package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"gasline/internal/entities"
	servicedriver "gasline/internal/service/driver"
)

type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `SELECT id, phone_number, role, is_active, is_blocked, created_at
		FROM users
		WHERE id = $1`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&userModel.ID,
		&userModel.PhoneNumber,
		&userModel.Role,
		&userModel.IsActive,
		&userModel.IsBlocked,
		&userModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, servicedriver.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyid error: %w", err)
	}

	return ToDomain(&userModel), nil
}
