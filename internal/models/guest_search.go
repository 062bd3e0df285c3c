package models

import (
	"time"
)

// GuestSearch is an append-only audit row, one per guest search attempt.
type GuestSearch struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	EventID            uint      `json:"event_id" gorm:"not null;index"`
	GuestPhotoFilename string    `json:"guest_photo_filename"`
	MatchesFound       int       `json:"matches_found"`
	IPAddress          string    `json:"ip_address"`
	CreatedAt          time.Time `json:"created_at"`
}
