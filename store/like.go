package store

import (
	"context"
	"errors"

	"github.com/studycircle/studycircle/models"

	"go.uber.org/zap"
)

// Like records that the user wants to attend the study session. The
// (user_id, study_session_id) unique index absorbs races between two likes
// for the same pair: the loser's duplicate-key error is reported as
// already=true, so the operation is idempotent under any interleaving.
func (s *Store) Like(ctx context.Context, userID string, sessionID uint) (already bool, err error) {
	like := models.Like{UserID: userID, StudySessionID: sessionID}
	err = s.db.WithContext(ctx).Create(&like).Error
	if err != nil {
		if errors.Is(classify(err), ErrConflict) {
			return true, nil
		}
		s.log.Warn("like failed",
			zap.String("user_id", userID), zap.Uint("session_id", sessionID), zap.Error(err))
		return false, classify(err)
	}
	return false, nil
}

// Unlike removes the user's like for the study session. found=false means
// no such like existed; that is information for the caller, not an error.
func (s *Store) Unlike(ctx context.Context, userID string, sessionID uint) (found bool, err error) {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND study_session_id = ?", userID, sessionID).
		Delete(&models.Like{})
	if res.Error != nil {
		s.log.Warn("unlike failed",
			zap.String("user_id", userID), zap.Uint("session_id", sessionID), zap.Error(res.Error))
		return false, classify(res.Error)
	}
	return res.RowsAffected > 0, nil
}
