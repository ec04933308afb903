package user

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Repository defines methods for accessing user data from storage.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, u *User) error
	UpdateLastLogin(ctx context.Context, id string, t time.Time) error
}

// fileRepository stores accounts in a flat JSON file, read and rewritten per
// call. There is no cross-request coordination: concurrent writes are
// last-write-wins, which matches the login/registration-only access pattern.
type fileRepository struct {
	path string
}

// NewFileRepository creates a Repository backed by the JSON file at path. The
// file is created on first write.
func NewFileRepository(path string) Repository {
	return &fileRepository{path: path}
}

func (r *fileRepository) load() ([]User, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read users file: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to parse users file: %w", err)
	}
	return users, nil
}

func (r *fileRepository) save(users []User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write users file: %w", err)
	}
	return nil
}

func (r *fileRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *fileRepository) GetByID(_ context.Context, id string) (*User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *fileRepository) Create(_ context.Context, u *User) error {
	users, err := r.load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Email == u.Email {
			return ErrEmailAlreadyUsed
		}
	}
	users = append(users, *u)
	return r.save(users)
}

func (r *fileRepository) UpdateLastLogin(_ context.Context, id string, t time.Time) error {
	users, err := r.load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users[i].LastLoginAt = &t
			return r.save(users)
		}
	}
	return ErrNotFound
}
