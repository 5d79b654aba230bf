package models

// The three link tables tie a user to a technology with a measure. The
// composite unique index keeps at most one link per kind per (user,
// technology) pair; the profile update relies on it to reject duplicate
// technology ids inside one replacement set.

// UserInterest marks a technology the user wants to learn.
type UserInterest struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	UserID        string `gorm:"size:128;not null;index;uniqueIndex:idx_user_interest" json:"user_id"`
	TechnologyID  uint   `gorm:"not null;index;uniqueIndex:idx_user_interest" json:"technology_id"`
	InterestYears int    `gorm:"default:1" json:"interest_years"`
	User          User   `gorm:"foreignKey:UserID" json:"-"`
}

// UserExpertise marks a technology the user can teach, with years of depth.
type UserExpertise struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	UserID         string `gorm:"size:128;not null;index;uniqueIndex:idx_user_expertise" json:"user_id"`
	TechnologyID   uint   `gorm:"not null;index;uniqueIndex:idx_user_expertise" json:"technology_id"`
	ExpertiseYears int    `json:"expertise_years"`
	User           User   `gorm:"foreignKey:UserID" json:"-"`
}

// UserExperience marks a technology the user has worked with, with years of use.
type UserExperience struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	UserID          string `gorm:"size:128;not null;index;uniqueIndex:idx_user_experience" json:"user_id"`
	TechnologyID    uint   `gorm:"not null;index;uniqueIndex:idx_user_experience" json:"technology_id"`
	ExperienceYears int    `json:"experience_years"`
	User            User   `gorm:"foreignKey:UserID" json:"-"`
}

// TechYears is a (technology id, years) pair supplied by a profile update.
type TechYears struct {
	TechnologyID uint `json:"technology_id"`
	Years        int  `json:"years"`
}

// RosterMember is one user inside a per-technology roster list, denormalized
// with the display fields the frontend renders.
type RosterMember struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	IconImage string `json:"icon_image"`
	Years     int    `json:"years"`
}

// TechRoster groups the users linked to one technology, split by link kind.
// A user linked in several kinds appears once per kind, never merged.
type TechRoster struct {
	Interests   []RosterMember `json:"interests"`
	Expertises  []RosterMember `json:"expertises"`
	Experiences []RosterMember `json:"experiences"`
}
