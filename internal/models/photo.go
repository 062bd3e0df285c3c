package models

import (
	"time"
)

// Processing status lifecycle is owned by a face-detection pipeline that
// runs outside this service. Rows are created as "uploaded" and never
// mutated here.
const (
	StatusUploaded   = "uploaded"
	StatusProcessing = "processing"
	StatusReady      = "ready"
	StatusError      = "error"
)

type Photo struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	EventID          uint      `json:"event_id" gorm:"not null;index"`
	Filename         string    `json:"filename" gorm:"not null"`
	OriginalFilename string    `json:"original_filename" gorm:"not null"`
	FilePath         string    `json:"file_path" gorm:"not null"`
	FileSize         int64     `json:"file_size" gorm:"not null"`
	MimeType         string    `json:"mime_type" gorm:"not null"`
	UploadBatch      string    `json:"upload_batch" gorm:"index"`
	ProcessingStatus string    `json:"processing_status" gorm:"not null;default:'uploaded'"`
	UploadedAt       time.Time `json:"uploaded_at"`
}

// FaceEncoding rows are written by the external recognition pipeline; this
// service only reads them for the face_count aggregate. Migrated here so
// the join is valid on a fresh database.
type FaceEncoding struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PhotoID   uint      `json:"photo_id" gorm:"not null;index"`
	Encoding  []byte    `json:"-" gorm:"type:bytea"`
	CreatedAt time.Time `json:"created_at"`
}

type PhotoWithFaceCount struct {
	ID               uint      `json:"id"`
	EventID          uint      `json:"event_id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	FilePath         string    `json:"file_path"`
	FileSize         int64     `json:"file_size"`
	MimeType         string    `json:"mime_type"`
	UploadBatch      string    `json:"upload_batch"`
	ProcessingStatus string    `json:"processing_status"`
	UploadedAt       time.Time `json:"uploaded_at"`
	FaceCount        int64     `json:"face_count"`
}
