package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PetSitting-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

const tableName = "booking_requests"

// columns порядок колонок совпадает с scanBooking
var columns = []string{
	"id",
	"customer_id",
	"pet_id",
	"pet_name",
	"service_type",
	"start_date",
	"end_date",
	"status",
	"message",
	"admin_notes",
	"decided_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с заявками на бронирование
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую заявку.
// Если в контексте есть транзакция, запрос выполняется в ней.
func (r *Repository) Create(ctx context.Context, booking *domain.BookingRequest) (*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"customer_id",
			"pet_id",
			"pet_name",
			"service_type",
			"start_date",
			"end_date",
			"status",
			"message",
		).
		Values(
			booking.CustomerID,
			booking.PetID,
			booking.PetName,
			booking.ServiceType,
			booking.StartDate,
			booking.EndDate,
			booking.Status,
			booking.Message,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает заявку по ID.
// Внутри транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает заявки по фильтру, упорядоченные по дате начала и ID.
// Фильтр по периоду выбирает заявки, пересекающиеся с [From, To].
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("start_date ASC", "id ASC")

	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.ServiceType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"service_type": *filter.ServiceType})
	}
	// Пересечение закрытых интервалов: start <= to AND end >= from
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_date": *filter.To})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"end_date": *filter.From})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListInRange заявки любого статуса, пересекающиеся с периодом
func (r *Repository) ListInRange(ctx context.Context, from, to types.Date) ([]*domain.BookingRequest, error) {
	return r.List(ctx, domain.BookingsFilter{From: &from, To: &to})
}

// ListApprovedInRange подтвержденные заявки, пересекающиеся с периодом
func (r *Repository) ListApprovedInRange(ctx context.Context, from, to types.Date) ([]*domain.BookingRequest, error) {
	status := domain.StatusApproved
	return r.List(ctx, domain.BookingsFilter{Status: &status, From: &from, To: &to})
}

// UpdateDecision переводит заявку из pending в status.
// Обновляются только заявки в статусе pending, поэтому решение принимается ровно один раз.
func (r *Repository) UpdateDecision(
	ctx context.Context,
	id int64,
	status domain.BookingStatus,
	adminNotes *string,
) (*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", status).
		Set("admin_notes", adminNotes).
		Set("decided_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateDecision - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		// Либо заявки нет, либо решение уже принято
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, ErrAlreadyDecided
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateDecision - execute update: %v", ErrExecQuery, err)
	}

	return booking, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.BookingRequest, error) {
	var booking domain.BookingRequest
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.PetID,
		&booking.PetName,
		&booking.ServiceType,
		&booking.StartDate,
		&booking.EndDate,
		&booking.Status,
		&booking.Message,
		&booking.AdminNotes,
		&booking.DecidedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс заявок
func scanBookings(rows *sql.Rows) ([]*domain.BookingRequest, error) {
	bookings := make([]*domain.BookingRequest, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
