package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/internal/infra/events"
	"github.com/m04kA/PetSitting-BookingService/internal/integrations/petdirectory"
	"github.com/m04kA/PetSitting-BookingService/pkg/ptr"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) Create(ctx context.Context, booking *domain.BookingRequest) (*domain.BookingRequest, error) {
	args := m.Called(ctx, booking)
	if b := args.Get(0); b != nil {
		return b.(*domain.BookingRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPets struct{ mock.Mock }

func (m *mockPets) GetPetWithGracefulDegradation(ctx context.Context, customerID, petID int64) (*petdirectory.Pet, error) {
	args := m.Called(ctx, customerID, petID)
	if p := args.Get(0); p != nil {
		return p.(*petdirectory.Pet), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishBooking(ctx context.Context, event events.BookingEvent) error {
	return m.Called(ctx, event).Error(0)
}

type countingMetrics struct{ created map[string]int }

func (m *countingMetrics) BookingCreated(serviceType string) { m.created[serviceType]++ }

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fixture struct {
	uc        *UseCase
	repo      *mockRepo
	pets      *mockPets
	publisher *mockPublisher
	metrics   *countingMetrics
}

func newFixture() *fixture {
	f := &fixture{
		repo:      &mockRepo{},
		pets:      &mockPets{},
		publisher: &mockPublisher{},
		metrics:   &countingMetrics{created: map[string]int{}},
	}
	f.uc = NewUseCase(f.repo, f.pets, f.publisher, f.metrics, inlineTx{}, 14, nopLogger{})
	f.uc.timeProvider = fixedTime{t: time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)}
	return f
}

func validRequest() *Request {
	return &Request{
		CustomerID:  5,
		PetID:       7,
		ServiceType: domain.ServiceDogBoarding,
		StartDate:   types.MustParseDate("2025-06-10"),
		EndDate:     types.MustParseDate("2025-06-12"),
		Message:     ptr.Ptr("Bello frisst nur Trockenfutter"),
	}
}

func TestUseCase_Execute_CreatesPendingBooking(t *testing.T) {
	f := newFixture()
	f.pets.On("GetPetWithGracefulDegradation", mock.Anything, int64(5), int64(7)).
		Return(&petdirectory.Pet{ID: 7, CustomerID: 5, Name: "Bello"}, nil)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.BookingRequest) bool {
		return b.Status == domain.StatusPending && b.PetName == "Bello" && b.CustomerID == 5
	})).Return(&domain.BookingRequest{
		ID:          42,
		CustomerID:  5,
		PetID:       7,
		PetName:     "Bello",
		ServiceType: domain.ServiceDogBoarding,
		StartDate:   types.MustParseDate("2025-06-10"),
		EndDate:     types.MustParseDate("2025-06-12"),
		Status:      domain.StatusPending,
	}, nil)
	f.publisher.On("PublishBooking", mock.Anything, mock.MatchedBy(func(e events.BookingEvent) bool {
		return e.Type == events.TypeBookingCreated && e.BookingID == 42 && e.Status == "pending"
	})).Return(nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Equal(t, 3, resp.Days)
	assert.Equal(t, 1, f.metrics.created["hundepension"])
	f.repo.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestUseCase_Execute_PublishFailureIsNotFatal(t *testing.T) {
	f := newFixture()
	f.pets.On("GetPetWithGracefulDegradation", mock.Anything, mock.Anything, mock.Anything).
		Return(&petdirectory.Pet{ID: 7, CustomerID: 5, Name: "Bello"}, nil)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(&domain.BookingRequest{ID: 1, Status: domain.StatusPending}, nil)
	f.publisher.On("PublishBooking", mock.Anything, mock.Anything).Return(errors.New("kafka down"))

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "missing customer", mutate: func(r *Request) { r.CustomerID = 0 }, wantErr: ErrInvalidInput},
		{name: "missing pet", mutate: func(r *Request) { r.PetID = 0 }, wantErr: ErrInvalidInput},
		{name: "unknown service", mutate: func(r *Request) { r.ServiceType = "grooming" }, wantErr: ErrInvalidInput},
		{name: "missing dates", mutate: func(r *Request) { r.EndDate = types.Date{} }, wantErr: ErrInvalidInput},
		{name: "long message", mutate: func(r *Request) { r.Message = ptr.Ptr(strings.Repeat("ä", domain.MaxMessageLength+1)) }, wantErr: ErrInvalidInput},
		{name: "end before start", mutate: func(r *Request) { r.EndDate = types.MustParseDate("2025-06-09") }, wantErr: ErrInvalidDateRange},
		{name: "start in past", mutate: func(r *Request) { r.StartDate = types.MustParseDate("2025-05-31") }, wantErr: ErrStartInPast},
		{name: "too long", mutate: func(r *Request) { r.EndDate = types.MustParseDate("2025-06-24") }, wantErr: ErrStayTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			f.pets.AssertNotCalled(t, "GetPetWithGracefulDegradation", mock.Anything, mock.Anything, mock.Anything)
			f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUseCase_Execute_BoundaryDates(t *testing.T) {
	f := newFixture()
	f.pets.On("GetPetWithGracefulDegradation", mock.Anything, mock.Anything, mock.Anything).
		Return(&petdirectory.Pet{ID: 7, CustomerID: 5, Name: "Bello"}, nil)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(&domain.BookingRequest{ID: 1}, nil)
	f.publisher.On("PublishBooking", mock.Anything, mock.Anything).Return(nil)

	// сегодня и ровно 14 дней допустимы
	req := validRequest()
	req.StartDate = types.MustParseDate("2025-06-01")
	req.EndDate = types.MustParseDate("2025-06-14")

	_, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
}

func TestUseCase_Execute_PetDirectoryErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "not found", err: petdirectory.ErrPetNotFound, wantErr: ErrPetNotFound},
		{name: "degraded", err: fmt.Errorf("%w: timeout", petdirectory.ErrServiceDegraded), wantErr: ErrPetDirectoryUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.pets.On("GetPetWithGracefulDegradation", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			_, err := f.uc.Execute(context.Background(), validRequest())

			assert.ErrorIs(t, err, tt.wantErr)
			f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	f := newFixture()
	f.pets.On("GetPetWithGracefulDegradation", mock.Anything, mock.Anything, mock.Anything).
		Return(&petdirectory.Pet{ID: 7, CustomerID: 5, Name: "Bello"}, nil)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	f.publisher.AssertNotCalled(t, "PublishBooking", mock.Anything, mock.Anything)
	assert.Empty(t, f.metrics.created)
}
