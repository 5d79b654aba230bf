package models

// Technology is reference data; rows are seeded, never written by the API.
type Technology struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;unique" json:"name"`
}
