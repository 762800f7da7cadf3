package response

import "fieldserve/internal/domain/status"

// CaptureRequiredResponse is the 422 body telling the caller which capture
// form to render before the transition can commit. MissingFields is only set
// when a payload arrived but was incomplete.
type CaptureRequiredResponse struct {
	Code           string   `json:"code"`
	Message        string   `json:"message"`
	CaptureKind    string   `json:"capture_kind"`
	RequiredFields []string `json:"required_fields"`
	MissingFields  []string `json:"missing_fields,omitempty"`
}

func NewCaptureRequired(kind status.CaptureKind, missing []string) CaptureRequiredResponse {
	return CaptureRequiredResponse{
		Code:           "CAPTURE_REQUIRED",
		Message:        "This status change requires additional information",
		CaptureKind:    string(kind),
		RequiredFields: status.RequiredFields(kind),
		MissingFields:  missing,
	}
}
