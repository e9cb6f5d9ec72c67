package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/personal/inventory-api/internal/core/domain"
)

// stubUserRepo is an in-memory UserRepository for service tests.
type stubUserRepo struct {
	users            map[string]*domain.User
	nextID           int
	emailCheckCalled bool
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Roles = append([]domain.Role(nil), u.Roles...)
	return &clone
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.emailCheckCalled = true
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[created.Username] = cloneUser(created)
	return created, nil
}

// stubRoleRepo serves the seeded enumeration, minus any roles listed in
// missing (to simulate a bootstrap defect).
type stubRoleRepo struct {
	missing map[string]bool
}

func newStubRoleRepo(missing ...string) *stubRoleRepo {
	m := make(map[string]bool, len(missing))
	for _, name := range missing {
		m[name] = true
	}
	return &stubRoleRepo{missing: m}
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (domain.Role, error) {
	if r.missing[name] {
		return "", domain.ErrRoleNotSeeded
	}
	for _, role := range domain.SeedRoles {
		if string(role) == name {
			return role, nil
		}
	}
	return "", domain.ErrRoleNotSeeded
}

// stubLimiter is a LoginLimiter with a fixed allowance.
type stubLimiter struct {
	maxAttempts int
	failures    map[string]int
	resets      int
}

func newStubLimiter(maxAttempts int) *stubLimiter {
	return &stubLimiter{maxAttempts: maxAttempts, failures: make(map[string]int)}
}

func (l *stubLimiter) Allow(_ context.Context, username string) (bool, error) {
	return l.failures[username] < l.maxAttempts, nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, username string) error {
	l.failures[username]++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, username string) error {
	delete(l.failures, username)
	l.resets++
	return nil
}

// stubAuditSink collects enqueued audit events.
type stubAuditSink struct {
	mu     sync.Mutex
	events []domain.AuthEvent
}

func (s *stubAuditSink) Enqueue(event domain.AuthEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *stubAuditSink) recorded() []domain.AuthEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.AuthEvent(nil), s.events...)
}
