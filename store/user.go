package store

import (
	"context"

	"github.com/studycircle/studycircle/models"
)

// CreateUser bootstraps a User row for a freshly authenticated uid. A
// second bootstrap for the same uid is an ErrConflict.
func (s *Store) CreateUser(ctx context.Context, id string) (models.User, error) {
	user := models.User{ID: id}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return models.User{}, classify(err)
	}
	return user, nil
}

// GetUser fetches one user by id.
func (s *Store) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return models.User{}, classify(err)
	}
	return user, nil
}

// ListUsers returns every user.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, classify(err)
	}
	return users, nil
}
