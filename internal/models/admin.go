package models

import (
	"time"
)

// Admin accounts are provisioned out of band (see cmd/adminctl); there is
// no registration endpoint.
type Admin struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"unique;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}

type AdminSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (a *Admin) Summary() AdminSummary {
	return AdminSummary{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
	}
}
