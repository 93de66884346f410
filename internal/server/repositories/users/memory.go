package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophaccount/internal/common"
	"github.com/dmitrijs2005/gophaccount/internal/server/models"
)

// MemoryRepository keeps users in process memory. Ids start at 1.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]models.User
	byName map[string]int64
	now    func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID: 1,
		byID:   make(map[int64]models.User),
		byName: make(map[string]int64),
		now:    time.Now,
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}

	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = r.now()
	user.UpdatedAt = user.CreatedAt

	r.byID[user.ID] = *user
	r.byName[user.UserName] = user.ID
	return user, nil
}

func (r *MemoryRepository) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := r.byID[id]
	return &u, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (r *MemoryRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byID[user.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if owner, taken := r.byName[user.UserName]; taken && owner != user.ID {
		return nil, common.ErrorAlreadyExists
	}

	delete(r.byName, old.UserName)
	user.CreatedAt = old.CreatedAt
	user.UpdatedAt = r.now()
	r.byID[user.ID] = *user
	r.byName[user.UserName] = user.ID
	return user, nil
}
