package models

import "time"

type Professional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:100" json:"specialty"`

	Rate     float64 `json:"rate"`
	Currency string  `gorm:"size:3;default:'COP'" json:"currency"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
