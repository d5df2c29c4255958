package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"gasline/internal/entities"
	"gasline/internal/repository"
	servicedriver "gasline/internal/service/driver"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const driverColumns = `id, user_id, is_available, current_lat, current_long,
	total_trips, rating, last_seen_at, created_at, updated_at`

// workloadStatuses feed the candidate active order count. Delivered orders
// stay in the count: the matching weights were tuned against this exact
// behavior in production.
var workloadStatuses = []string{
	entities.OrderAccepted.String(),
	entities.OrderInTransit.String(),
	entities.OrderDelivered.String(),
}

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
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

func (r *Repository) Create(ctx context.Context, create entities.DriverCreate) (int64, error) {
	query := `INSERT INTO drivers (user_id, is_available, current_lat, current_long, last_seen_at)
		VALUES ($1, TRUE, $2, $3, NOW())
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(ctx, query, create.UserID, create.CurrentLat, create.CurrentLong).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, servicedriver.ErrDriverExists
		}
		return 0, fmt.Errorf("unexpected driver repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		WHERE id = $1`

	driverModel, err := scanDriver(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, servicedriver.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository getbyid error: %w", err)
	}

	return ToDomain(driverModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}
	defer rows.Close()

	driverModels := make([]DriverDB, 0, 8)
	for rows.Next() {
		driverModel, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
		}
		driverModels = append(driverModels, *driverModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}

	return ToDomainList(driverModels), nil
}

// Update applies the patch and refreshes last_seen_at: any write from the
// driver app counts as a heartbeat.
func (r *Repository) Update(ctx context.Context, modify entities.DriverModify) (*entities.Driver, error) {
	driverModifyModel := FromDomainModify(&modify)

	builder := qb.Update("drivers")

	if driverModifyModel.IsAvailable != nil {
		builder = builder.Set("is_available", driverModifyModel.IsAvailable)
	}
	if driverModifyModel.CurrentLat != nil {
		builder = builder.Set("current_lat", driverModifyModel.CurrentLat)
	}
	if driverModifyModel.CurrentLong != nil {
		builder = builder.Set("current_long", driverModifyModel.CurrentLong)
	}
	if driverModifyModel.TotalTrips != nil {
		builder = builder.Set("total_trips", driverModifyModel.TotalTrips)
	}
	if driverModifyModel.Rating != nil {
		builder = builder.Set("rating", driverModifyModel.Rating)
	}

	builder = builder.
		Set("last_seen_at", sq.Expr("NOW()")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": driverModifyModel.ID}).
		Suffix("RETURNING " + driverColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	driverModel, err := scanDriver(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, servicedriver.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	return ToDomain(driverModel), nil
}

func (r *Repository) IncrementTrips(ctx context.Context, id int64) error {
	query := `UPDATE drivers
		SET total_trips = total_trips + 1, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected driver repository incrementtrips error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return servicedriver.ErrDriverNotFound
	}

	return nil
}

func (r *Repository) MarkUnavailableBefore(ctx context.Context, deadline time.Time) (int64, error) {
	query := `UPDATE drivers
		SET is_available = FALSE, updated_at = NOW()
		WHERE is_available AND last_seen_at < $1`

	tag, err := r.querier.Exec(ctx, query, deadline)
	if err != nil {
		return 0, fmt.Errorf("unexpected driver repository markunavailable error: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ListCandidates returns every driver eligible for assignment together with
// its aggregated workload, one round trip.
func (r *Repository) ListCandidates(ctx context.Context) ([]entities.DriverCandidate, error) {
	query := `SELECT d.id, d.user_id, d.is_available, d.current_lat, d.current_long,
			d.total_trips, d.rating, d.last_seen_at, d.created_at, d.updated_at,
			COUNT(o.id) AS active_orders
		FROM drivers d
		JOIN users u ON u.id = d.user_id
		LEFT JOIN orders o ON o.driver_id = d.id AND o.status = ANY($1)
		WHERE d.is_available AND u.is_active AND NOT u.is_blocked
		GROUP BY d.id
		ORDER BY d.id`

	rows, err := r.querier.Query(ctx, query, workloadStatuses)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository listcandidates error: %w", err)
	}
	defer rows.Close()

	candidateModels := make([]CandidateDB, 0, 8)
	for rows.Next() {
		var c CandidateDB
		err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.IsAvailable,
			&c.CurrentLat,
			&c.CurrentLong,
			&c.TotalTrips,
			&c.Rating,
			&c.LastSeenAt,
			&c.CreatedAt,
			&c.UpdatedAt,
			&c.ActiveOrderCount,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository listcandidates error: %w", err)
		}
		candidateModels = append(candidateModels, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected driver repository listcandidates error: %w", err)
	}

	return ToDomainCandidates(candidateModels), nil
}

func scanDriver(row pgx.Row) (*DriverDB, error) {
	var d DriverDB
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.IsAvailable,
		&d.CurrentLat,
		&d.CurrentLong,
		&d.TotalTrips,
		&d.Rating,
		&d.LastSeenAt,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
