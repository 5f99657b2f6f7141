package models

import "time"

// VerifierLabel is the static attribution string attached to every
// verification summary in the history listing.
const VerifierLabel = "AI Authenticity Model"

// Session is the placeholder session wrapper returned by signup.
// No token is issued and no server-side session state exists; the wrapper
// carries only the new user's id for frontend compatibility.
type Session struct {
	User SessionUser `json:"user"`
}

// SessionUser identifies the user a Session belongs to.
type SessionUser struct {
	ID string `json:"id"`
}

// SignupResponse is the body returned by POST /auth/signup.
type SignupResponse struct {
	Profile
	Session Session `json:"session"`
}

// VerifyResponse is the body returned by POST /verify: the computed verdict
// without the persisted record's identity fields.
type VerifyResponse struct {
	Status         Status    `json:"status"`
	Confidence     int       `json:"confidence"`
	BlockchainHash string    `json:"blockchainHash"`
	Analysis       Analysis  `json:"analysis"`
	Timestamp      time.Time `json:"timestamp"`
}

// VerifyResponseOf projects a verification onto its response form.
func VerifyResponseOf(v Verification) VerifyResponse {
	return VerifyResponse{
		Status:         v.Status,
		Confidence:     v.Confidence,
		BlockchainHash: v.BlockchainHash,
		Analysis:       v.Analysis,
		Timestamp:      v.Timestamp,
	}
}

// MessageResponse is a generic confirmation body, e.g. for POST /auth/logout.
type MessageResponse struct {
	Message string `json:"message"`
}

// VerificationSummary is the display-oriented reshaping of a persisted
// Verification returned by GET /verifications.
type VerificationSummary struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Source         string    `json:"source"`
	Status         Status    `json:"status"`
	Confidence     int       `json:"confidence"`
	BlockchainHash string    `json:"blockchainHash"`
	Timestamp      time.Time `json:"timestamp"`
	Verifier       string    `json:"verifier"`
	InputType      InputType `json:"inputType"`
	URL            *string   `json:"url"`
	Snippet        *string   `json:"snippet"`
}

// SummaryOf reshapes a persisted Verification into its listing form.
func SummaryOf(v Verification) VerificationSummary {
	return VerificationSummary{
		ID:             v.ID,
		Title:          v.Title,
		Source:         v.Source,
		Status:         v.Status,
		Confidence:     v.Confidence,
		BlockchainHash: v.BlockchainHash,
		Timestamp:      v.Timestamp,
		Verifier:       VerifierLabel,
		InputType:      v.InputType,
		URL:            v.InputURL,
		Snippet:        v.InputSnippet,
	}
}
