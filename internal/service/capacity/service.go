package capacity

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	capacityRepo "github.com/m04kA/PetSitting-BookingService/internal/infra/storage/capacity"
	"github.com/m04kA/PetSitting-BookingService/internal/service/capacity/models"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// Service сервис настроек и исключений емкости. Все операции только для администраторов.
type Service struct {
	repo      CapacityRepository
	cache     OccupancyCache
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса емкости
func NewService(
	repo CapacityRepository,
	cache OccupancyCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		txManager: txManager,
		logger:    logger,
	}
}

// ListSettings получает настройки емкости по умолчанию
func (s *Service) ListSettings(ctx context.Context, caller domain.Caller) (*models.SettingsResponse, error) {
	if !caller.IsAdmin() {
		s.logger.Warn("ListSettings: access denied for user=%d", caller.UserID)
		return nil, ErrAccessDenied
	}

	settings, err := s.repo.ListSettings(ctx)
	if err != nil {
		s.logger.Error("ListSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSettings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// SaveSettings перезаписывает набор настроек целиком в одной транзакции
func (s *Service) SaveSettings(
	ctx context.Context,
	caller domain.Caller,
	req *models.SaveSettingsRequest,
) (*models.SettingsResponse, error) {
	s.logger.Info("SaveSettings: saving %d settings by user=%d", len(req.Settings), caller.UserID)

	if !caller.IsAdmin() {
		s.logger.Warn("SaveSettings: access denied for user=%d", caller.UserID)
		return nil, ErrAccessDenied
	}

	settings, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("SaveSettings: validation failed: %v", err)
		if errors.Is(err, models.ErrDuplicateScope) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateScope, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var saved []*domain.CapacitySetting
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		saved, err = s.repo.ReplaceSettings(txCtx, settings)
		return err
	})
	if err != nil {
		s.logger.Error("SaveSettings: failed to replace settings: %v", err)
		return nil, fmt.Errorf("%w: SaveSettings - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, "SaveSettings")

	s.logger.Info("SaveSettings: saved %d settings", len(saved))
	return models.FromDomainSettings(saved), nil
}

// ListOverrides получает исключения с фильтром по периоду и области
func (s *Service) ListOverrides(
	ctx context.Context,
	caller domain.Caller,
	req *models.ListOverridesRequest,
) (*models.OverridesResponse, error) {
	if !caller.IsAdmin() {
		s.logger.Warn("ListOverrides: access denied for user=%d", caller.UserID)
		return nil, ErrAccessDenied
	}

	var filter capacityRepo.OverridesFilter
	if req.From != nil {
		from, err := types.ParseDate(*req.From)
		if err != nil {
			return nil, fmt.Errorf("%w: from: %v", ErrInvalidInput, err)
		}
		filter.From = &from
	}
	if req.To != nil {
		to, err := types.ParseDate(*req.To)
		if err != nil {
			return nil, fmt.Errorf("%w: to: %v", ErrInvalidInput, err)
		}
		filter.To = &to
	}
	if req.ServiceType != nil {
		scope, err := models.ParseScopeParam(*req.ServiceType)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Scope = &scope
	}

	overrides, err := s.repo.ListOverrides(ctx, filter)
	if err != nil {
		s.logger.Error("ListOverrides: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOverrides - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOverrides(overrides), nil
}

// CreateOverride создает исключение емкости на дату.
// Дубликаты (дата, область) допускаются, при расчете побеждает первое по порядку.
func (s *Service) CreateOverride(
	ctx context.Context,
	caller domain.Caller,
	req *models.CreateOverrideRequest,
) (*models.OverrideResponse, error) {
	s.logger.Info("CreateOverride: date=%s, serviceType=%v, capacity=%d by user=%d",
		req.Date, req.ServiceType, req.Capacity, caller.UserID)

	if !caller.IsAdmin() {
		s.logger.Warn("CreateOverride: access denied for user=%d", caller.UserID)
		return nil, ErrAccessDenied
	}

	override, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("CreateOverride: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.CreateOverride(ctx, override)
	if err != nil {
		s.logger.Error("CreateOverride: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateOverride - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, "CreateOverride")

	s.logger.Info("CreateOverride: created override id=%d", created.ID)
	return models.FromDomainOverride(created), nil
}

// DeleteOverride удаляет исключение
func (s *Service) DeleteOverride(ctx context.Context, caller domain.Caller, id int64) error {
	s.logger.Info("DeleteOverride: id=%d by user=%d", id, caller.UserID)

	if !caller.IsAdmin() {
		s.logger.Warn("DeleteOverride: access denied for user=%d", caller.UserID)
		return ErrAccessDenied
	}

	if err := s.repo.DeleteOverride(ctx, id); err != nil {
		if errors.Is(err, capacityRepo.ErrOverrideNotFound) {
			s.logger.Warn("DeleteOverride: override id=%d not found", id)
			return ErrOverrideNotFound
		}
		s.logger.Error("DeleteOverride: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteOverride - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, "DeleteOverride")
	return nil
}

func (s *Service) invalidate(ctx context.Context, op string) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("%s: failed to invalidate occupancy cache: %v", op, err)
	}
}
