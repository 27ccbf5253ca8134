package capacity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	capacityRepo "github.com/m04kA/PetSitting-BookingService/internal/infra/storage/capacity"
	"github.com/m04kA/PetSitting-BookingService/internal/service/capacity/models"
	"github.com/m04kA/PetSitting-BookingService/pkg/ptr"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) ListSettings(ctx context.Context) ([]*domain.CapacitySetting, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.([]*domain.CapacitySetting), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) ReplaceSettings(ctx context.Context, settings []*domain.CapacitySetting) ([]*domain.CapacitySetting, error) {
	args := m.Called(ctx, settings)
	if s := args.Get(0); s != nil {
		return s.([]*domain.CapacitySetting), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) ListOverrides(ctx context.Context, filter capacityRepo.OverridesFilter) ([]*domain.CapacityOverride, error) {
	args := m.Called(ctx, filter)
	if o := args.Get(0); o != nil {
		return o.([]*domain.CapacityOverride), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) CreateOverride(ctx context.Context, override *domain.CapacityOverride) (*domain.CapacityOverride, error) {
	args := m.Called(ctx, override)
	if o := args.Get(0); o != nil {
		return o.(*domain.CapacityOverride), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) DeleteOverride(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// inlineTx выполняет функцию без реальной транзакции
type inlineTx struct{ calls int }

func (tx *inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	admin    = domain.Caller{UserID: 1, Role: domain.RoleAdmin}
	customer = domain.Caller{UserID: 5, Role: domain.RoleCustomer}
)

func newService() (*Service, *mockRepo, *mockCache, *inlineTx) {
	repo := &mockRepo{}
	cache := &mockCache{}
	tx := &inlineTx{}
	return NewService(repo, cache, tx, nopLogger{}), repo, cache, tx
}

func TestService_AdminOnly(t *testing.T) {
	svc, repo, cache, _ := newService()
	ctx := context.Background()

	_, err := svc.ListSettings(ctx, customer)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.SaveSettings(ctx, customer, &models.SaveSettingsRequest{})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.ListOverrides(ctx, customer, &models.ListOverridesRequest{})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.CreateOverride(ctx, customer, &models.CreateOverrideRequest{Date: "2025-12-24"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.DeleteOverride(ctx, customer, 1)
	assert.ErrorIs(t, err, ErrAccessDenied)

	repo.AssertNotCalled(t, "ListSettings", mock.Anything)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestService_ListSettings(t *testing.T) {
	svc, repo, _, _ := newService()
	repo.On("ListSettings", mock.Anything).Return([]*domain.CapacitySetting{
		{ID: 1, Scope: domain.ScopeOf(domain.ServiceDogBoarding), DefaultCapacity: 10},
		{ID: 2, Scope: domain.TotalScope(), DefaultCapacity: 25},
	}, nil)

	resp, err := svc.ListSettings(context.Background(), admin)

	require.NoError(t, err)
	require.Len(t, resp.Settings, 2)
	assert.Equal(t, "hundepension", *resp.Settings[0].ServiceType)
	assert.Nil(t, resp.Settings[1].ServiceType)
	assert.Equal(t, 25, resp.Settings[1].DefaultCapacity)
}

func TestService_SaveSettings(t *testing.T) {
	svc, repo, cache, tx := newService()
	repo.On("ReplaceSettings", mock.Anything, mock.MatchedBy(func(s []*domain.CapacitySetting) bool {
		return len(s) == 2 && s[0].Scope == domain.ScopeOf(domain.ServiceCatSitting) && s[1].Scope.IsTotal()
	})).Return([]*domain.CapacitySetting{
		{ID: 7, Scope: domain.ScopeOf(domain.ServiceCatSitting), DefaultCapacity: 4},
		{ID: 8, Scope: domain.TotalScope(), DefaultCapacity: 12},
	}, nil)
	cache.On("Invalidate", mock.Anything).Return(nil)

	resp, err := svc.SaveSettings(context.Background(), admin, &models.SaveSettingsRequest{
		Settings: []models.SettingInput{
			{ServiceType: ptr.Ptr("katzenbetreuung"), DefaultCapacity: 4},
			{DefaultCapacity: 12},
		},
	})

	require.NoError(t, err)
	assert.Len(t, resp.Settings, 2)
	assert.Equal(t, 1, tx.calls)
	cache.AssertExpectations(t)
}

func TestService_SaveSettings_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.SaveSettingsRequest
		wantErr error
	}{
		{
			name: "duplicate scope",
			req: &models.SaveSettingsRequest{Settings: []models.SettingInput{
				{DefaultCapacity: 5},
				{DefaultCapacity: 6},
			}},
			wantErr: ErrDuplicateScope,
		},
		{
			name: "unknown service type",
			req: &models.SaveSettingsRequest{Settings: []models.SettingInput{
				{ServiceType: ptr.Ptr("grooming"), DefaultCapacity: 5},
			}},
			wantErr: ErrInvalidInput,
		},
		{
			name: "negative capacity",
			req: &models.SaveSettingsRequest{Settings: []models.SettingInput{
				{ServiceType: ptr.Ptr("tagesbetreuung"), DefaultCapacity: -1},
			}},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache, tx := newService()

			_, err := svc.SaveSettings(context.Background(), admin, tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, tx.calls)
			repo.AssertNotCalled(t, "ReplaceSettings", mock.Anything, mock.Anything)
			cache.AssertNotCalled(t, "Invalidate", mock.Anything)
		})
	}
}

func TestService_SaveSettings_RepositoryError(t *testing.T) {
	svc, repo, cache, _ := newService()
	repo.On("ReplaceSettings", mock.Anything, mock.Anything).Return(nil, capacityRepo.ErrExecQuery)

	_, err := svc.SaveSettings(context.Background(), admin, &models.SaveSettingsRequest{
		Settings: []models.SettingInput{{DefaultCapacity: 3}},
	})

	assert.ErrorIs(t, err, ErrInternal)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestService_ListOverrides_Filter(t *testing.T) {
	svc, repo, _, _ := newService()
	from := types.MustParseDate("2025-12-01")
	to := types.MustParseDate("2025-12-31")
	total := domain.TotalScope()

	repo.On("ListOverrides", mock.Anything, capacityRepo.OverridesFilter{From: &from, To: &to, Scope: &total}).
		Return([]*domain.CapacityOverride{
			{ID: 4, Date: types.MustParseDate("2025-12-24"), Scope: total, Capacity: 2},
		}, nil)

	resp, err := svc.ListOverrides(context.Background(), admin, &models.ListOverridesRequest{
		From:        ptr.Ptr("2025-12-01"),
		To:          ptr.Ptr("2025-12-31"),
		ServiceType: ptr.Ptr("total"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Overrides, 1)
	assert.Equal(t, "2025-12-24", resp.Overrides[0].Date)
	assert.Nil(t, resp.Overrides[0].ServiceType)
}

func TestService_ListOverrides_InvalidParams(t *testing.T) {
	svc, _, _, _ := newService()

	_, err := svc.ListOverrides(context.Background(), admin, &models.ListOverridesRequest{From: ptr.Ptr("24.12.2025")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ListOverrides(context.Background(), admin, &models.ListOverridesRequest{ServiceType: ptr.Ptr("grooming")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_CreateOverride(t *testing.T) {
	svc, repo, cache, _ := newService()
	repo.On("CreateOverride", mock.Anything, mock.MatchedBy(func(o *domain.CapacityOverride) bool {
		return o.Date.String() == "2025-12-24" && o.Scope == domain.ScopeOf(domain.ServiceDogBoarding) && o.Capacity == 3
	})).Return(&domain.CapacityOverride{
		ID:       11,
		Date:     types.MustParseDate("2025-12-24"),
		Scope:    domain.ScopeOf(domain.ServiceDogBoarding),
		Capacity: 3,
		Reason:   ptr.Ptr("Heiligabend"),
	}, nil)
	cache.On("Invalidate", mock.Anything).Return(errors.New("redis down"))

	resp, err := svc.CreateOverride(context.Background(), admin, &models.CreateOverrideRequest{
		Date:        "2025-12-24",
		ServiceType: ptr.Ptr("hundepension"),
		Capacity:    3,
		Reason:      ptr.Ptr("Heiligabend"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "hundepension", *resp.ServiceType)
	cache.AssertExpectations(t)
}

func TestService_CreateOverride_Invalid(t *testing.T) {
	svc, repo, _, _ := newService()

	_, err := svc.CreateOverride(context.Background(), admin, &models.CreateOverrideRequest{Date: "2025-13-01", Capacity: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateOverride(context.Background(), admin, &models.CreateOverrideRequest{Date: "2025-12-24", Capacity: domain.MaxCapacity + 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.AssertNotCalled(t, "CreateOverride", mock.Anything, mock.Anything)
}

func TestService_DeleteOverride(t *testing.T) {
	svc, repo, cache, _ := newService()
	repo.On("DeleteOverride", mock.Anything, int64(4)).Return(nil)
	repo.On("DeleteOverride", mock.Anything, int64(5)).Return(capacityRepo.ErrOverrideNotFound)
	cache.On("Invalidate", mock.Anything).Return(nil).Once()

	require.NoError(t, svc.DeleteOverride(context.Background(), admin, 4))

	err := svc.DeleteOverride(context.Background(), admin, 5)
	assert.ErrorIs(t, err, ErrOverrideNotFound)

	cache.AssertNumberOfCalls(t, "Invalidate", 1)
}
