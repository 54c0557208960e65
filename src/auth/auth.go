// Package auth is the mock session collaborator. It exposes
// current-user presence only; it is not a security boundary and the
// core never reads credentials.
package auth

import (
	"errors"
	"strings"
	"sync"
)

var ErrInvalidInput = errors.New("name and email are required")

const (
	demoAvatar = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face&auto=format"
	demoWallet = "0x1234...5678"
)

// User is the signed-in identity.
type User struct {
	ID     string
	Name   string
	Email  string
	Avatar string
	Wallet string
}

// Manager holds at most one signed-in user for the process lifetime.
type Manager struct {
	mu   sync.RWMutex
	user *User
}

func NewManager() *Manager {
	return &Manager{}
}

// Login signs in the demo user for the given email. Credentials are not
// verified or retained.
func (m *Manager) Login(email, _ string) (User, error) {
	if strings.TrimSpace(email) == "" {
		return User{}, ErrInvalidInput
	}
	return m.setUser("Demo User", email), nil
}

// Signup registers and signs in a new user.
func (m *Manager) Signup(name, email, _ string) (User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return User{}, ErrInvalidInput
	}
	return m.setUser(name, email), nil
}

func (m *Manager) setUser(name, email string) User {
	u := User{
		ID:     "1",
		Name:   name,
		Email:  email,
		Avatar: demoAvatar,
		Wallet: demoWallet,
	}
	m.mu.Lock()
	m.user = &u
	m.mu.Unlock()
	return u
}

// Logout clears the current user.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()
}

// Current returns the signed-in user, if any.
func (m *Manager) Current() (User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return User{}, false
	}
	return *m.user, true
}
