package store

import (
	"context"

	"github.com/studycircle/studycircle/models"
)

// Timeline lists every study session, newest first.
func (s *Store) Timeline(ctx context.Context) ([]models.StudySession, error) {
	var sessions []models.StudySession
	if err := s.db.WithContext(ctx).Order("held_at DESC").Find(&sessions).Error; err != nil {
		return nil, classify(err)
	}
	return sessions, nil
}
