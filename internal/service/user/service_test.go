package user

import (
	"context"
	"testing"
	"time"

	"slot_game/internal/model"
	"slot_game/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	users map[string]model.SlotUser
	seq   int
}

func newMemRepo() *memRepo {
	return &memRepo{users: make(map[string]model.SlotUser)}
}

func (r *memRepo) CreateUser(_ context.Context, u *model.SlotUser) (int, error) {
	r.seq++
	cp := *u
	cp.ID = r.seq
	r.users[u.UserID] = cp
	return cp.ID, nil
}

func (r *memRepo) GetUser(_ context.Context, userID string) (*model.SlotUser, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *memRepo) ListUsers(_ context.Context) ([]model.SlotUser, error) {
	out := make([]model.SlotUser, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memRepo) UpdateUser(_ context.Context, u *model.SlotUser) error {
	if _, ok := r.users[u.UserID]; !ok {
		return repository.ErrNotFound
	}
	r.users[u.UserID] = *u
	return nil
}

func (r *memRepo) DeleteUser(_ context.Context, userID string) error {
	if _, ok := r.users[userID]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, userID)
	return nil
}

func (r *memRepo) MarkPlayed(_ context.Context, userID string, at time.Time) (bool, error) {
	u, ok := r.users[userID]
	if !ok || u.PlayedAt != nil {
		return false, nil
	}
	u.PlayedAt = &at
	r.users[userID] = u
	return true, nil
}

type slotCfg struct{ def model.SlotType }

func (slotCfg) DefaultProbabilities() model.ProbabilityConfig { return model.DefaultProbabilities() }
func (slotCfg) Preset(model.SlotType) model.ProbabilityConfig { return model.DefaultProbabilities() }
func (c slotCfg) DefaultSlotType() model.SlotType             { return c.def }

func newService() (*serv, *memRepo) {
	repo := newMemRepo()
	return NewUserService(slotCfg{def: model.SlotTypeA}, repo).(*serv), repo
}

func TestCreate(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()

	user, created, err := s.Create(ctx, "u1", "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, model.SlotTypeA, user.SlotType)
	assert.Equal(t, 1, user.ID)
	assert.False(t, user.HasPlayed())

	again, created, err := s.Create(ctx, "u1", model.SlotTypeB)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, model.SlotTypeA, again.SlotType)
}

func TestCreate_Validation(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()

	_, _, err := s.Create(ctx, "", model.SlotTypeA)
	assert.ErrorIs(t, err, ErrEmptyUserID)

	_, _, err = s.Create(ctx, "u1", "C")
	assert.ErrorIs(t, err, ErrInvalidSlotType)
}

func TestUpdate(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()
	_, _, err := s.Create(ctx, "u1", model.SlotTypeA)
	require.NoError(t, err)

	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	slotB := model.SlotTypeB
	user, err := s.Update(ctx, "u1", model.UserUpdate{SlotType: &slotB, PlayedAtSet: true, PlayedAt: &at})
	require.NoError(t, err)
	assert.Equal(t, model.SlotTypeB, user.SlotType)
	require.NotNil(t, user.PlayedAt)
	assert.True(t, at.Equal(*user.PlayedAt))

	// Отсутствующее поле не трогает played_at
	user, err = s.Update(ctx, "u1", model.UserUpdate{})
	require.NoError(t, err)
	assert.True(t, user.HasPlayed())

	// Явный null сбрасывает
	user, err = s.Update(ctx, "u1", model.UserUpdate{PlayedAtSet: true})
	require.NoError(t, err)
	assert.False(t, user.HasPlayed())

	bad := model.SlotType("Z")
	_, err = s.Update(ctx, "u1", model.UserUpdate{SlotType: &bad})
	assert.ErrorIs(t, err, ErrInvalidSlotType)

	_, err = s.Update(ctx, "ghost", model.UserUpdate{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetListDelete(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()

	_, err := s.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, _, err = s.Create(ctx, "u1", model.SlotTypeB)
	require.NoError(t, err)

	users, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	require.NoError(t, s.Delete(ctx, "u1"))
	assert.ErrorIs(t, s.Delete(ctx, "u1"), ErrUserNotFound)
}
