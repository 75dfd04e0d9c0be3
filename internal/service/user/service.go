package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slot_game/internal/config"
	"slot_game/internal/model"
	"slot_game/internal/repository"
	"slot_game/internal/service"
	"slot_game/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrEmptyUserID     = errors.New("user id is required")
	ErrInvalidSlotType = errors.New("invalid slot type")
	ErrUserNotFound    = errors.New("user not found")
)

type serv struct {
	slotCfg config.SlotConfig
	repo    repository.UserRepository
	now     func() time.Time
}

func NewUserService(slotCfg config.SlotConfig, repo repository.UserRepository) service.UserService {
	return &serv{
		slotCfg: slotCfg,
		repo:    repo,
		now:     time.Now,
	}
}

// Create - пустой slotType заменяется типом по умолчанию.
// Для существующего пользователя возвращает его же и created=false.
func (s *serv) Create(ctx context.Context, userID string, slotType model.SlotType) (*model.SlotUser, bool, error) {
	if userID == "" {
		return nil, false, ErrEmptyUserID
	}
	if slotType == "" {
		slotType = s.slotCfg.DefaultSlotType()
	}
	if !slotType.Valid() {
		return nil, false, ErrInvalidSlotType
	}

	existing, err := s.repo.GetUser(ctx, userID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, fmt.Errorf("get user: %w", err)
	}

	user := &model.SlotUser{
		UserID:    userID,
		SlotType:  slotType,
		CreatedAt: s.now().UTC(),
	}
	id, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, false, fmt.Errorf("create user: %w", err)
	}
	user.ID = id

	logger.Info("user created", zap.String("user_id", userID), zap.String("slot_type", string(slotType)))
	return user, true, nil
}

func (s *serv) Get(ctx context.Context, userID string) (*model.SlotUser, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *serv) List(ctx context.Context) ([]model.SlotUser, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Update меняет только переданные поля. played_at можно сбросить явным null.
func (s *serv) Update(ctx context.Context, userID string, upd model.UserUpdate) (*model.SlotUser, error) {
	if upd.SlotType != nil && !upd.SlotType.Valid() {
		return nil, ErrInvalidSlotType
	}

	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.SlotType != nil {
		user.SlotType = *upd.SlotType
	}
	if upd.PlayedAtSet {
		user.PlayedAt = upd.PlayedAt
	}

	if err = s.repo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	logger.Info("user updated", zap.String("user_id", userID))
	return user, nil
}

func (s *serv) Delete(ctx context.Context, userID string) error {
	err := s.repo.DeleteUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	logger.Info("user deleted", zap.String("user_id", userID))
	return nil
}
