package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"gasline/internal/entities"
	"gasline/internal/repository"
	"gasline/internal/service/dispatch"
	serviceorder "gasline/internal/service/order"
	"gasline/internal/service/payment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, order_id, tracking_id, customer_id, tank_size, quantity,
	delivery_address, delivery_latitude, delivery_longitude,
	payment_method, payment_status, status, driver_id,
	assigned_at, accepted_at, delivered_at, delivery_confirmed,
	cancel_reason, cancelled_by, amount, total_amount, created_at, updated_at`

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

func (r *Repository) Create(ctx context.Context, order entities.Order) (*entities.Order, error) {
	query := `INSERT INTO orders (
			order_id, tracking_id, customer_id, tank_size, quantity,
			delivery_address, delivery_latitude, delivery_longitude,
			payment_method, payment_status, status, amount, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		order.OrderID,
		order.TrackingID,
		order.CustomerID,
		order.TankSize,
		order.Quantity,
		order.DeliveryAddress,
		order.DeliveryLatitude,
		order.DeliveryLongitude,
		order.PaymentMethod.String(),
		order.PaymentStatus.String(),
		order.Status.String(),
		order.Amount,
		order.TotalAmount,
		order.CreatedAt,
	)
	orderModel, err := scanOrder(row)
	if err != nil {
		// The partial unique index over active statuses guarantees one active
		// order per customer even across racing transactions.
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, serviceorder.ErrActiveOrderExists
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, serviceorder.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetActiveByCustomer(ctx context.Context, customerID int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE customer_id = $1 AND status = ANY($2)
		LIMIT 1`

	row := r.querier.QueryRow(ctx, query, customerID, statusStrings(entities.ActiveOrderStatuses))
	orderModel, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, serviceorder.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getactive error: %w", err)
	}

	return ToDomain(orderModel), nil
}

// UpdateStatus applies the patch only while the order's status is one of
// expected, and, when expectedDriverID is set, the order belongs to that
// driver. A row that fails the check comes back as ErrConcurrentModification
// for the service layer to classify.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	id int64,
	expected []entities.OrderStatusType,
	expectedDriverID *int64,
	modify entities.OrderModify,
) (*entities.Order, error) {
	builder := applyModify(qb.Update("orders"), FromDomainModify(&modify)).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"status": statusStrings(expected)})

	if expectedDriverID != nil {
		builder = builder.Where(sq.Eq{"driver_id": *expectedDriverID})
	}

	return r.returningUpdate(ctx, builder, serviceorder.ErrConcurrentModification)
}

// Bind attaches a driver to a still-unassigned pending order.
func (r *Repository) Bind(ctx context.Context, orderID, driverID int64, modify entities.OrderModify) (*entities.Order, error) {
	builder := applyModify(qb.Update("orders"), FromDomainModify(&modify)).
		Where(sq.Eq{"id": orderID}).
		Where(sq.Eq{"status": entities.OrderPending.String()}).
		Where("driver_id IS NULL")

	return r.returningUpdate(ctx, builder, dispatch.ErrConcurrentModification)
}

func (r *Repository) ListPending(ctx context.Context, limit uint64) ([]entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"status": entities.OrderPending.String()}).
		Where("driver_id IS NULL").
		OrderBy("created_at ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listpending error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listpending error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, limit)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository listpending error: %w", err)
		}
		orderModels = append(orderModels, *orderModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository listpending error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) CountOrders(ctx context.Context, filter entities.OrderCountFilter) (int64, error) {
	builder := qb.
		Select("COUNT(*)").
		From("orders")

	if filter.CustomerID != nil {
		builder = builder.Where(sq.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.PaymentMethod != nil {
		builder = builder.Where(sq.Eq{"payment_method": filter.PaymentMethod.String()})
	}
	if filter.PaymentStatus != nil {
		builder = builder.Where(sq.Eq{"payment_status": filter.PaymentStatus.String()})
	}
	if filter.CreatedAfter != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *filter.CreatedAfter})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	var count int64
	if err := r.querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	return count, nil
}

func (r *Repository) SetPaymentStatusByRef(ctx context.Context, orderRef string, status entities.PaymentStatusType) (*entities.Order, error) {
	query := `UPDATE orders
		SET payment_status = $2, updated_at = NOW()
		WHERE order_id = $1
		RETURNING ` + orderColumns

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, orderRef, status.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository setpaymentstatus error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) returningUpdate(ctx context.Context, builder sq.UpdateBuilder, conflictErr error) (*entities.Order, error) {
	query, args, err := builder.
		Suffix("RETURNING " + orderColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, conflictErr
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, conflictErr
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func applyModify(builder sq.UpdateBuilder, modify *OrderModifyDB) sq.UpdateBuilder {
	if modify.Status != nil {
		builder = builder.Set("status", modify.Status)
	}
	if modify.PaymentStatus != nil {
		builder = builder.Set("payment_status", modify.PaymentStatus)
	}
	if modify.DriverID != nil {
		builder = builder.Set("driver_id", modify.DriverID)
	}
	if modify.AssignedAt != nil {
		builder = builder.Set("assigned_at", modify.AssignedAt)
	}
	if modify.AcceptedAt != nil {
		builder = builder.Set("accepted_at", modify.AcceptedAt)
	}
	if modify.DeliveredAt != nil {
		builder = builder.Set("delivered_at", modify.DeliveredAt)
	}
	if modify.DeliveryConfirmed != nil {
		builder = builder.Set("delivery_confirmed", modify.DeliveryConfirmed)
	}
	if modify.CancelReason != nil {
		builder = builder.Set("cancel_reason", modify.CancelReason)
	}
	if modify.CancelledBy != nil {
		builder = builder.Set("cancelled_by", modify.CancelledBy)
	}

	return builder.Set("updated_at", sq.Expr("NOW()"))
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var o OrderDB
	err := row.Scan(
		&o.ID,
		&o.OrderID,
		&o.TrackingID,
		&o.CustomerID,
		&o.TankSize,
		&o.Quantity,
		&o.DeliveryAddress,
		&o.DeliveryLatitude,
		&o.DeliveryLongitude,
		&o.PaymentMethod,
		&o.PaymentStatus,
		&o.Status,
		&o.DriverID,
		&o.AssignedAt,
		&o.AcceptedAt,
		&o.DeliveredAt,
		&o.DeliveryConfirmed,
		&o.CancelReason,
		&o.CancelledBy,
		&o.Amount,
		&o.TotalAmount,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
