package store

import (
	"context"
	"time"

	"github.com/studycircle/studycircle/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProfileUpdate is the full replacement set for a user's profile: four
// scalar fields plus the three technology association sets. The stored
// associations end up exactly equal to these sets; nothing is merged.
type ProfileUpdate struct {
	SNSLink     string
	Comment     string
	JoinDate    time.Time
	Department  string
	Interests   []uint
	Expertises  []models.TechYears
	Experiences []models.TechYears
}

// UpdateProfile overwrites the scalar profile fields and replaces the
// interest, expertise and experience links for userID in one transaction.
// A missing user yields ErrNotFound; a duplicate technology id inside one
// of the supplied sets trips the unique index and yields ErrConflict. On
// any failure the whole replacement rolls back, so readers never observe a
// half-applied profile.
func (s *Store) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		fields := map[string]interface{}{
			"sns_link":   upd.SNSLink,
			"comment":    upd.Comment,
			"join_date":  upd.JoinDate,
			"department": upd.Department,
		}
		if err := tx.Model(&user).Updates(fields).Error; err != nil {
			return err
		}

		// Replace semantics: drop the previous sets entirely, then insert
		// the supplied ones.
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserInterest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserExpertise{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserExperience{}).Error; err != nil {
			return err
		}

		if interests := buildInterests(userID, upd.Interests); len(interests) > 0 {
			if err := tx.Create(&interests).Error; err != nil {
				return err
			}
		}
		if expertises := buildExpertises(userID, upd.Expertises); len(expertises) > 0 {
			if err := tx.Create(&expertises).Error; err != nil {
				return err
			}
		}
		if experiences := buildExperiences(userID, upd.Experiences); len(experiences) > 0 {
			if err := tx.Create(&experiences).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		s.log.Warn("profile update failed", zap.String("user_id", userID), zap.Error(err))
	}
	return classify(err)
}

// buildInterests collapses duplicate technology ids; interest links carry
// the default weight, so repeats in the request are harmless noise.
func buildInterests(userID string, techIDs []uint) []models.UserInterest {
	seen := make(map[uint]bool, len(techIDs))
	rows := make([]models.UserInterest, 0, len(techIDs))
	for _, techID := range techIDs {
		if seen[techID] {
			continue
		}
		seen[techID] = true
		rows = append(rows, models.UserInterest{
			UserID:        userID,
			TechnologyID:  techID,
			InterestYears: 1,
		})
	}
	return rows
}

func buildExpertises(userID string, pairs []models.TechYears) []models.UserExpertise {
	rows := make([]models.UserExpertise, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, models.UserExpertise{
			UserID:         userID,
			TechnologyID:   p.TechnologyID,
			ExpertiseYears: p.Years,
		})
	}
	return rows
}

func buildExperiences(userID string, pairs []models.TechYears) []models.UserExperience {
	rows := make([]models.UserExperience, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, models.UserExperience{
			UserID:          userID,
			TechnologyID:    p.TechnologyID,
			ExperienceYears: p.Years,
		})
	}
	return rows
}
