package models

import "encoding/json"

// AnalyzeRequest is the multipart form accompanying the resume upload.
// Either TargetRole or CustomJD must be set; the handler enforces that
// pairing on top of the field-level rules.
type AnalyzeRequest struct {
	TargetRole string `form:"target_role" validate:"omitempty,max=100"`
	CustomJD   string `form:"custom_jd" validate:"omitempty,max=20000"`
	JDMode     string `form:"jd_mode" validate:"omitempty,oneof=predefined custom"`
	Location   string `form:"location" validate:"required,max=100"`
	Domain     string `form:"domain" validate:"omitempty,max=100"`
}

type AnalyzeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ResultResponse reports job progress; Report is attached verbatim once the
// job completes.
type ResultResponse struct {
	ID           string          `json:"id"`
	Status       string          `json:"status"`
	Filename     string          `json:"filename"`
	TargetRole   string          `json:"target_role"`
	Report       json.RawMessage `json:"report,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
}

// HistoryItem is one row of the session-scoped history listing.
type HistoryItem struct {
	ID           string  `json:"id"`
	TargetRole   string  `json:"target_role"`
	Filename     string  `json:"filename"`
	Status       string  `json:"status"`
	OverallScore *int    `json:"overall_score,omitempty"`
	ATSVerdict   *string `json:"ats_verdict,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type RolesResponse struct {
	Roles []string `json:"roles"`
}
