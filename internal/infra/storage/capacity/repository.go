package capacity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PetSitting-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

const (
	settingsTable  = "capacity_settings"
	overridesTable = "capacity_overrides"
)

// OverridesFilter фильтр исключений. Все поля опциональны.
type OverridesFilter struct {
	From  *types.Date
	To    *types.Date
	Scope *domain.ServiceScope
}

// Repository репозиторий настроек и исключений емкости
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория емкости
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListSettings получает все настройки емкости по умолчанию
func (r *Repository) ListSettings(ctx context.Context) ([]*domain.CapacitySetting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "service_type", "default_capacity", "updated_at").
		From(settingsTable).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListSettings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSettings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	settings := make([]*domain.CapacitySetting, 0)
	for rows.Next() {
		var setting domain.CapacitySetting
		var serviceType sql.NullString
		var updatedAt sql.NullTime

		if err := rows.Scan(&setting.ID, &serviceType, &setting.DefaultCapacity, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListSettings - scan row: %v", ErrScanRow, err)
		}

		setting.Scope, err = scopeOf(serviceType)
		if err != nil {
			return nil, fmt.Errorf("ListSettings - setting %d: %w", setting.ID, err)
		}
		setting.UpdatedAt = updatedAt.Time

		settings = append(settings, &setting)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSettings - rows error: %v", ErrScanRow, err)
	}

	return settings, nil
}

// ReplaceSettings перезаписывает все настройки: удаляет старые и вставляет новые.
// Вызывать внутри транзакции, иначе читатели могут увидеть пустую таблицу.
func (r *Repository) ReplaceSettings(ctx context.Context, settings []*domain.CapacitySetting) ([]*domain.CapacitySetting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(settingsTable).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceSettings - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceSettings - execute delete: %v", ErrExecQuery, err)
	}

	for _, setting := range settings {
		query, args, err := psqlbuilder.Insert(settingsTable).
			Columns("service_type", "default_capacity").
			Values(setting.Scope.Nullable(), setting.DefaultCapacity).
			Suffix("RETURNING id, updated_at").
			ToSql()

		if err != nil {
			return nil, fmt.Errorf("%w: ReplaceSettings - build insert query: %v", ErrBuildQuery, err)
		}

		var updatedAt sql.NullTime
		if err := executor.QueryRowContext(ctx, query, args...).Scan(&setting.ID, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ReplaceSettings - execute insert (scope=%s): %v", ErrExecQuery, setting.Scope, err)
		}
		setting.UpdatedAt = updatedAt.Time
	}

	return settings, nil
}

// ListOverrides получает исключения по фильтру, упорядоченные по дате и ID
func (r *Repository) ListOverrides(ctx context.Context, filter OverridesFilter) ([]*domain.CapacityOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "date", "service_type", "capacity", "reason", "created_at").
		From(overridesTable).
		OrderBy("date ASC", "id ASC")

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": *filter.To})
	}
	// Nullable() == nil дает "service_type IS NULL" для Total
	if filter.Scope != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"service_type": filter.Scope.Nullable()})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverrides - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverrides - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]*domain.CapacityOverride, 0)
	for rows.Next() {
		override, err := scanOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("ListOverrides - %w", err)
		}
		overrides = append(overrides, override)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOverrides - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// CreateOverride создает исключение емкости на дату
func (r *Repository) CreateOverride(ctx context.Context, override *domain.CapacityOverride) (*domain.CapacityOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(overridesTable).
		Columns("date", "service_type", "capacity", "reason").
		Values(override.Date, override.Scope.Nullable(), override.Capacity, override.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateOverride - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&override.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateOverride - execute insert: %v", ErrExecQuery, err)
	}
	override.CreatedAt = createdAt.Time

	return override, nil
}

// GetOverride получает исключение по ID
func (r *Repository) GetOverride(ctx context.Context, id int64) (*domain.CapacityOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "date", "service_type", "capacity", "reason", "created_at").
		From(overridesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverride - build select query: %v", ErrBuildQuery, err)
	}

	override, err := scanOverride(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetOverride - %w", err)
	}

	return override, nil
}

// DeleteOverride удаляет исключение. Изменение исключения = удаление + создание.
func (r *Repository) DeleteOverride(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(overridesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanOverride возвращает sql.ErrNoRows как есть, остальные ошибки оборачивает
func scanOverride(row rowScanner) (*domain.CapacityOverride, error) {
	var override domain.CapacityOverride
	var serviceType sql.NullString
	var createdAt sql.NullTime

	err := row.Scan(
		&override.ID,
		&override.Date,
		&serviceType,
		&override.Capacity,
		&override.Reason,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan override: %v", ErrScanRow, err)
	}

	override.Scope, err = scopeOf(serviceType)
	if err != nil {
		return nil, fmt.Errorf("override %d: %w", override.ID, err)
	}
	override.CreatedAt = createdAt.Time

	return &override, nil
}

// scopeOf NULL в колонке service_type = Total
func scopeOf(serviceType sql.NullString) (domain.ServiceScope, error) {
	if !serviceType.Valid {
		return domain.TotalScope(), nil
	}
	scope, err := domain.ScopeFromNullable(&serviceType.String)
	if err != nil {
		return domain.ServiceScope{}, fmt.Errorf("%w: %v", ErrInvalidScope, err)
	}
	return scope, nil
}
