package capacity

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PetSitting-BookingService/pkg/ptr"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

func newRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(dbmetrics.Wrap(db, nil, "test")), mock
}

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

var overrideColumns = []string{"id", "date", "service_type", "capacity", "reason", "created_at"}

func TestRepository_ListSettings(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, service_type, default_capacity, updated_at FROM capacity_settings ORDER BY id ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "service_type", "default_capacity", "updated_at"}).
			AddRow(int64(1), "hundepension", 6, now).
			AddRow(int64(2), nil, 10, now))

	settings, err := repo.ListSettings(context.Background())

	require.NoError(t, err)
	require.Len(t, settings, 2)
	assert.Equal(t, domain.ScopeOf(domain.ServiceDogBoarding), settings[0].Scope)
	assert.Equal(t, 6, settings[0].DefaultCapacity)
	assert.True(t, settings[1].Scope.IsTotal())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListSettings_UnknownServiceType(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery("FROM capacity_settings").
		WillReturnRows(sqlmock.NewRows([]string{"id", "service_type", "default_capacity", "updated_at"}).
			AddRow(int64(1), "pferdepension", 2, now))

	_, err := repo.ListSettings(context.Background())

	assert.ErrorIs(t, err, ErrInvalidScope)
}

func TestRepository_ReplaceSettings(t *testing.T) {
	repo, mock := newRepository(t)

	settings := []*domain.CapacitySetting{
		{Scope: domain.ScopeOf(domain.ServiceCatSitting), DefaultCapacity: 4},
		{Scope: domain.TotalScope(), DefaultCapacity: 12},
	}

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM capacity_settings")).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO capacity_settings (service_type,default_capacity) VALUES ($1,$2) RETURNING id, updated_at")).
		WithArgs("katzenbetreuung", 4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "updated_at"}).AddRow(int64(7), now))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO capacity_settings")).
		WithArgs(nil, 12).
		WillReturnRows(sqlmock.NewRows([]string{"id", "updated_at"}).AddRow(int64(8), now))

	saved, err := repo.ReplaceSettings(context.Background(), settings)

	require.NoError(t, err)
	assert.Equal(t, int64(7), saved[0].ID)
	assert.Equal(t, int64(8), saved[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListOverrides_Filter(t *testing.T) {
	repo, mock := newRepository(t)

	from := types.MustParseDate("2025-12-20")
	to := types.MustParseDate("2026-01-10")
	total := domain.TotalScope()

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM capacity_overrides WHERE date >= $1 AND date <= $2 AND service_type IS NULL ORDER BY date ASC, id ASC",
	)).
		WithArgs("2025-12-20", "2026-01-10").
		WillReturnRows(sqlmock.NewRows(overrideColumns).
			AddRow(int64(3), "2025-12-24", nil, 2, "Heiligabend", now).
			AddRow(int64(4), "2025-12-31", nil, 1, nil, now))

	overrides, err := repo.ListOverrides(context.Background(), OverridesFilter{From: &from, To: &to, Scope: &total})

	require.NoError(t, err)
	require.Len(t, overrides, 2)
	assert.Equal(t, types.MustParseDate("2025-12-24"), overrides[0].Date)
	assert.Equal(t, "Heiligabend", *overrides[0].Reason)
	assert.Nil(t, overrides[1].Reason)
	assert.True(t, overrides[1].Scope.IsTotal())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListOverrides_SpecificScope(t *testing.T) {
	repo, mock := newRepository(t)

	dogs := domain.ScopeOf(domain.ServiceDogBoarding)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE service_type = $1")).
		WithArgs("hundepension").
		WillReturnRows(sqlmock.NewRows(overrideColumns))

	overrides, err := repo.ListOverrides(context.Background(), OverridesFilter{Scope: &dogs})

	require.NoError(t, err)
	assert.Empty(t, overrides)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateOverride(t *testing.T) {
	repo, mock := newRepository(t)

	override := &domain.CapacityOverride{
		Date:     types.MustParseDate("2025-12-24"),
		Scope:    domain.ScopeOf(domain.ServiceDayCare),
		Capacity: 0,
		Reason:   ptr.Ptr("closed"),
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO capacity_overrides (date,service_type,capacity,reason)")).
		WithArgs("2025-12-24", "tagesbetreuung", 0, "closed").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), now))

	created, err := repo.CreateOverride(context.Background(), override)

	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetOverride_NotFound(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery("FROM capacity_overrides").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(overrideColumns))

	_, err := repo.GetOverride(context.Background(), 5)

	assert.ErrorIs(t, err, ErrOverrideNotFound)
}

func TestRepository_DeleteOverride(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM capacity_overrides WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM capacity_overrides WHERE id = $1")).
		WithArgs(int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteOverride(context.Background(), 5))
	assert.ErrorIs(t, repo.DeleteOverride(context.Background(), 6), ErrOverrideNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
