package store

import (
	"context"

	"github.com/studycircle/studycircle/models"
)

// TrendSize is how many technologies the trend ranking returns.
const TrendSize = 3

// Trend ranks technologies by interest-link count, descending, and returns
// the top TrendSize as (id, name) pairs. Ties break on ascending technology
// id so the ranking is deterministic.
func (s *Store) Trend(ctx context.Context) ([]models.Technology, error) {
	var ranked []struct {
		TechnologyID uint
		Cnt          int64
	}
	err := s.db.WithContext(ctx).
		Model(&models.UserInterest{}).
		Select("technology_id, COUNT(*) AS cnt").
		Group("technology_id").
		Order("cnt DESC, technology_id ASC").
		Limit(TrendSize).
		Scan(&ranked).Error
	if err != nil {
		return nil, classify(err)
	}

	if len(ranked) == 0 {
		return []models.Technology{}, nil
	}

	ids := make([]uint, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.TechnologyID)
	}

	var techs []models.Technology
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&techs).Error; err != nil {
		return nil, classify(err)
	}

	// Find returns rows in table order; restore the ranking order.
	byID := make(map[uint]models.Technology, len(techs))
	for _, t := range techs {
		byID[t.ID] = t
	}
	ordered := make([]models.Technology, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			ordered = append(ordered, t)
		}
	}
	return ordered, nil
}

// TechRoster assembles the users linked to one technology, split by link
// kind and denormalized with the user's display fields. An unknown or
// unlinked technology yields three empty lists, not an error. Users are not
// deduplicated across kinds.
func (s *Store) TechRoster(ctx context.Context, techID uint) (models.TechRoster, error) {
	roster := models.TechRoster{
		Interests:   []models.RosterMember{},
		Expertises:  []models.RosterMember{},
		Experiences: []models.RosterMember{},
	}

	var interests []models.UserInterest
	if err := s.db.WithContext(ctx).Preload("User").
		Where("technology_id = ?", techID).Find(&interests).Error; err != nil {
		return roster, classify(err)
	}
	for _, link := range interests {
		roster.Interests = append(roster.Interests, models.RosterMember{
			UserID:    link.UserID,
			Name:      link.User.Name,
			IconImage: link.User.IconImage,
			Years:     link.InterestYears,
		})
	}

	var expertises []models.UserExpertise
	if err := s.db.WithContext(ctx).Preload("User").
		Where("technology_id = ?", techID).Find(&expertises).Error; err != nil {
		return roster, classify(err)
	}
	for _, link := range expertises {
		roster.Expertises = append(roster.Expertises, models.RosterMember{
			UserID:    link.UserID,
			Name:      link.User.Name,
			IconImage: link.User.IconImage,
			Years:     link.ExpertiseYears,
		})
	}

	var experiences []models.UserExperience
	if err := s.db.WithContext(ctx).Preload("User").
		Where("technology_id = ?", techID).Find(&experiences).Error; err != nil {
		return roster, classify(err)
	}
	for _, link := range experiences {
		roster.Experiences = append(roster.Experiences, models.RosterMember{
			UserID:    link.UserID,
			Name:      link.User.Name,
			IconImage: link.User.IconImage,
			Years:     link.ExperienceYears,
		})
	}

	return roster, nil
}

// SuggestTechs returns technologies whose name contains the substring,
// ordered by name. An empty substring lists every technology.
func (s *Store) SuggestTechs(ctx context.Context, substring string) ([]models.Technology, error) {
	var techs []models.Technology
	err := s.db.WithContext(ctx).
		Where("name LIKE ?", "%"+substring+"%").
		Order("name ASC").
		Find(&techs).Error
	if err != nil {
		return nil, classify(err)
	}
	return techs, nil
}
