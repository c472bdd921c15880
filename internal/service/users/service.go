package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/damn-devil/bath.book/internal/domain"
	userRepo "github.com/damn-devil/bath.book/internal/infra/storage/user"
)

// Service сервис для работы с пользователями
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// RegisterOrUpdateRequest запрос на регистрацию или обновление пользователя
type RegisterOrUpdateRequest struct {
	UserID      int64
	DisplayName string
	Gender      *string // nil = пол не меняется (первый контакт до онбординга)
}

// RegisterOrUpdate идемпотентный upsert пользователя.
// Пол, однажды указанный, может быть перезаписан повторным онбордингом:
// исходное поведение сохранено намеренно.
func (s *Service) RegisterOrUpdate(ctx context.Context, req *RegisterOrUpdateRequest) error {
	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("RegisterOrUpdate: validation failed for user=%d: %v", req.UserID, err)
		return err
	}

	u := &domain.User{
		ID:          req.UserID,
		DisplayName: strings.TrimSpace(req.DisplayName),
	}

	if req.Gender != nil {
		gender, err := domain.ParseGender(*req.Gender)
		if err != nil {
			s.logger.Warn("RegisterOrUpdate: invalid gender %q for user=%d", *req.Gender, req.UserID)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		u.Gender = &gender
	}

	if err := s.userRepo.Upsert(ctx, u); err != nil {
		s.logger.Error("RegisterOrUpdate: upsert failed for user=%d: %v", req.UserID, err)
		return fmt.Errorf("%w: RegisterOrUpdate - upsert: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("RegisterOrUpdate: user=%d registered (gender set: %t)", req.UserID, u.Gender != nil)
	return nil
}

// GetByID возвращает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrStorageUnavailable, err)
	}
	return u, nil
}

func validateRegisterRequest(req *RegisterOrUpdateRequest) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	name := strings.TrimSpace(req.DisplayName)
	if name == "" {
		return fmt.Errorf("%w: displayName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxDisplayNameLength {
		return fmt.Errorf("%w: displayName is too long", ErrInvalidInput)
	}
	return nil
}
