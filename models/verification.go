package models

import "time"

// Status is the verification outcome label produced by the classifier.
type Status string

const (
	// StatusReal marks content the classifier considers authentic.
	StatusReal Status = "real"

	// StatusFake marks content the classifier considers inauthentic.
	StatusFake Status = "fake"

	// StatusUncertain is reserved as a schema value for external overrides.
	// The classifier adapter never emits it on its own.
	StatusUncertain Status = "uncertain"
)

// InputType describes which field of a verification request carried the
// content that was classified.
type InputType string

const (
	InputTypeText InputType = "text"
	InputTypeURL  InputType = "url"
)

// Prediction is the classifier adapter's output for a single piece of text.
type Prediction struct {
	// Status is the resolved three-valued outcome.
	Status Status `json:"status"`

	// Confidence is the arg-max class probability scaled to 0..100 and
	// truncated to an integer.
	Confidence int `json:"confidence"`
}

// Analysis groups the cosmetic secondary metrics attached to every
// verification. Apart from CredibilityScore these are static placeholder
// strings, not values computed from the submitted content.
type Analysis struct {
	// CredibilityScore is the confidence discounted by a fixed offset and
	// clamped to [0,100].
	CredibilityScore int `json:"credibilityScore"`

	LanguagePattern   string `json:"languagePattern"`
	FactCheck         string `json:"factCheck"`
	SourceReliability string `json:"sourceReliability"`
}

// Verification is a single classification result persisted to the
// "verifications" table. Records are insert-only: they are never mutated
// or deleted, and persistence is best-effort.
type Verification struct {
	// ID is the opaque unique identifier generated per request.
	ID string `json:"id"`

	// UserID is an optional weak reference to the submitting User.
	// Nil for anonymous submissions; cleared (not cascaded) when the
	// referenced user is deleted.
	UserID *string `json:"userId,omitempty"`

	// Title is a derived display string: the URL, or a truncated prefix of
	// the submitted text.
	Title string `json:"title"`

	// Source is a derived display string naming where the content came from.
	Source string `json:"source"`

	Status     Status `json:"status"`
	Confidence int    `json:"confidence"`

	// BlockchainHash is a cosmetic fixed-format digest of content+timestamp.
	// It carries no chain or verification semantics and is not authoritative.
	BlockchainHash string `json:"blockchainHash"`

	Analysis Analysis `json:"analysis"`

	InputType InputType `json:"inputType"`

	// InputURL holds the submitted URL when InputType is "url".
	InputURL *string `json:"inputUrl,omitempty"`

	// InputSnippet holds the first 500 characters of the submitted text
	// when InputType is "text".
	InputSnippet *string `json:"inputSnippet,omitempty"`

	// Timestamp is the creation instant, serialised as ISO-8601.
	Timestamp time.Time `json:"timestamp"`
}

// TableName returns the name of the database table
// associated with the Verification model.
func (v Verification) TableName() string {
	return "verifications"
}
