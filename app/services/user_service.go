package services

import (
	"context"
	"errors"

	"user-registry/app/db"
	"user-registry/app/models"
	"user-registry/app/repo"

	"gorm.io/gorm"
)

var (
	ErrDuplicateUsername = errors.New("username already registered")
	ErrUserNotFound      = errors.New("user not found")
)

type UserService struct{ sessions *db.SessionManager }

func NewUserService(sessions *db.SessionManager) *UserService {
	return &UserService{sessions: sessions}
}

// CreateUser inserts a new user after checking the username is free. A
// concurrent insert racing past the check trips the unique index instead
// and is reported as the same duplicate error.
func (s *UserService) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	u := &models.User{Username: username, Password: password}
	err := s.sessions.Run(ctx, func(tx *gorm.DB) error {
		users := repo.NewUserRepository(tx)
		if _, err := users.FindByUsername(username); err == nil {
			return ErrDuplicateUsername
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := users.Create(u); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateUsername
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.sessions.Run(ctx, func(tx *gorm.DB) error {
		var err error
		users, err = repo.NewUserRepository(tx).All()
		return err
	})
	return users, err
}

// DeleteUser removes the user with the given id and returns the removed row.
func (s *UserService) DeleteUser(ctx context.Context, id uint) (*models.User, error) {
	var deleted *models.User
	err := s.sessions.Run(ctx, func(tx *gorm.DB) error {
		users := repo.NewUserRepository(tx)
		u, err := users.FindByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		} else if err != nil {
			return err
		}
		if err := users.DeleteByID(u.ID); err != nil {
			return err
		}
		deleted = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
