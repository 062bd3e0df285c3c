package models

import (
	"github.com/wedsnap/wedsnap-backend/internal/matcher"
)

type Response struct {
	Error string `json:"error"`
}

func ErrorResponse(err string) Response {
	return Response{Error: err}
}

// Per-file outcome of an upload batch. Callers get an explicit
// reconciliation instead of having to diff the photos array against what
// they submitted.
const (
	UploadAccepted = "accepted"
	UploadRejected = "rejected"
)

type UploadResult struct {
	Filename string `json:"filename"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
}

type UploadResponse struct {
	Success     bool           `json:"success"`
	Message     string         `json:"message"`
	UploadBatch string         `json:"uploadBatch"`
	Photos      []Photo        `json:"photos"`
	Results     []UploadResult `json:"results"`
}

type Pagination struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

type PhotoListResponse struct {
	Photos     []PhotoWithFaceCount `json:"photos"`
	Pagination Pagination           `json:"pagination"`
}

type SearchResponse struct {
	Success  bool            `json:"success"`
	SearchID uint            `json:"searchId"`
	Message  string          `json:"message"`
	Matches  []matcher.Match `json:"matches"`
}
