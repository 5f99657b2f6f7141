package models

// VerifyRequest is the body of POST /verify.
// Exactly one of Text/URL is the semantic source, selected by InputType;
// when both are present Text wins.
type VerifyRequest struct {
	InputType InputType `json:"inputType"`
	Text      string    `json:"text,omitempty"`
	URL       string    `json:"url,omitempty"`

	// UserID is set when the caller is logged in; verifications submitted
	// without it are anonymous.
	UserID string `json:"userId,omitempty"`
}

// Content returns the string the classifier should score: the free text if
// present, otherwise the URL. An empty result means the request is invalid.
func (r VerifyRequest) Content() string {
	if r.Text != "" {
		return r.Text
	}
	return r.URL
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HistoryRequest carries the query parameters of GET /verifications.
type HistoryRequest struct {
	// UserID limits the listing to one user's verifications when non-empty.
	UserID string

	// Limit caps the number of returned rows; defaults to 100 upstream.
	Limit uint64
}
