package models

import (
	"time"
)

// User is an employee account. The ID is the uid issued by the external
// identity provider, not a locally generated key.
type User struct {
	ID         string    `gorm:"size:128;primaryKey" json:"id"`
	Name       string    `gorm:"size:100" json:"name"`
	SNSLink    string    `gorm:"column:sns_link;size:255" json:"sns_link"`
	Comment    string    `gorm:"type:text" json:"comment"`
	JoinDate   time.Time `json:"join_date"`
	Department string    `gorm:"size:100" json:"department"`
	IconImage  string    `gorm:"size:255" json:"icon_image"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ProfileResponse is the display shape of a user's profile page.
type ProfileResponse struct {
	Name       string `json:"name"`
	SNSLink    string `json:"sns_link"`
	Comment    string `json:"comment"`
	JoinDate   string `json:"join_date"`
	Department string `json:"department"`
}

// ToProfileResponse converts to the profile display format.
func (u *User) ToProfileResponse() ProfileResponse {
	return ProfileResponse{
		Name:       u.Name,
		SNSLink:    u.SNSLink,
		Comment:    u.Comment,
		JoinDate:   u.JoinDate.Format("2006-01-02"),
		Department: u.Department,
	}
}
