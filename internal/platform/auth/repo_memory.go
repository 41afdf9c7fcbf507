package auth

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// memoryUserRepo keeps users in memory. It backs development mode and tests.
type memoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]*User // keyed by lowercase email
}

// NewMemoryUserRepo returns an empty in-memory UserRepository.
func NewMemoryUserRepo() UserRepository {
	return &memoryUserRepo{users: make(map[string]*User)}
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memoryUserRepo) Create(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	key := strings.ToLower(u.Email)
	if _, ok := r.users[key]; ok {
		return ErrEmailTaken
	}
	cp := *u
	r.users[key] = &cp
	return nil
}
