package slot

import (
	"context"
	"sort"
	"sync"
	"time"

	"slot_game/internal/model"
	"slot_game/internal/repository"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// txManager без базы: просто вызывает функцию
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func (m *fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

type fakeUserRepo struct {
	mtx   sync.Mutex
	users map[string]*model.SlotUser
	// markErr имитирует сбой базы при отметке игры
	markErr error
	// lostRace: между GetUser и MarkPlayed успел сыграть другой запрос
	lostRace bool
}

func newFakeUserRepo(users ...model.SlotUser) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*model.SlotUser)}
	for i := range users {
		u := users[i]
		r.users[u.UserID] = &u
	}
	return r
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *model.SlotUser) (int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	u := *user
	u.ID = len(r.users) + 1
	r.users[u.UserID] = &u
	return u.ID, nil
}

func (r *fakeUserRepo) GetUser(_ context.Context, userID string) (*model.SlotUser, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) ListUsers(_ context.Context) ([]model.SlotUser, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	out := make([]model.SlotUser, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, user *model.SlotUser) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if _, ok := r.users[user.UserID]; !ok {
		return repository.ErrNotFound
	}
	u := *user
	r.users[user.UserID] = &u
	return nil
}

func (r *fakeUserRepo) DeleteUser(_ context.Context, userID string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if _, ok := r.users[userID]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) MarkPlayed(_ context.Context, userID string, at time.Time) (bool, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if r.markErr != nil {
		return false, r.markErr
	}
	u, ok := r.users[userID]
	if ok && r.lostRace && u.PlayedAt == nil {
		u.PlayedAt = &at
		return false, nil
	}
	if !ok || u.PlayedAt != nil {
		return false, nil
	}
	u.PlayedAt = &at
	return true, nil
}

type fakeWinRepo struct {
	mtx     sync.Mutex
	records []model.WinRecord
}

func (r *fakeWinRepo) CreateRecord(_ context.Context, rec *model.WinRecord) (int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	cp := *rec
	cp.ID = len(r.records) + 1
	r.records = append(r.records, cp)
	return cp.ID, nil
}

func (r *fakeWinRepo) GetByCode(_ context.Context, code string) (*model.WinRecord, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	for _, rec := range r.records {
		if rec.Code != "" && rec.Code == code {
			cp := rec
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeWinRepo) CountByType(_ context.Context) (model.Stats, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	var stats model.Stats
	for _, rec := range r.records {
		stats.TotalPlays++
		stats.Record(rec.WinType)
	}
	return stats, nil
}

func (r *fakeWinRepo) History(_ context.Context) ([]model.WinRecord, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	out := make([]model.WinRecord, len(r.records))
	copy(out, r.records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

type staticSlotConfig struct{}

func (staticSlotConfig) DefaultProbabilities() model.ProbabilityConfig {
	return model.DefaultProbabilities()
}

func (staticSlotConfig) Preset(slotType model.SlotType) model.ProbabilityConfig {
	if slotType == model.SlotTypeB {
		return model.ProbabilityConfig{Jackpot: 1, BigWin: 5, SmallWin: 15, Lose: 79}
	}
	return model.ProbabilityConfig{Jackpot: 10, BigWin: 20, SmallWin: 30, Lose: 40}
}

func (staticSlotConfig) DefaultSlotType() model.SlotType {
	return model.SlotTypeA
}
