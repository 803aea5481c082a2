package domain

// ParsedMessage is the structured, read-only view of a commit message.
// Optional parts are nil when absent; an empty scope "feat(): x" is a
// non-nil pointer to "".
type ParsedMessage struct {
	Type       *string   `json:"type,omitempty"`
	Scope      *string   `json:"scope,omitempty"`
	Subject    string    `json:"subject"`
	Body       *string   `json:"body,omitempty"`
	Footer     *string   `json:"footer,omitempty"`
	Trailers   []Trailer `json:"trailers,omitempty"`
	IsBreaking bool      `json:"is_breaking"`

	RawHeader string `json:"raw_header"`
	RawBody   string `json:"raw_body,omitempty"`
	RawFooter string `json:"raw_footer,omitempty"`

	// BodyLeadingBlank is set when a blank line separates header and body.
	BodyLeadingBlank bool `json:"body_leading_blank"`
	// FooterLeadingBlank is set when a blank line precedes the footer.
	FooterLeadingBlank bool `json:"footer_leading_blank"`
}

// Trailer is one "token: value" or "token #value" footer entry.
type Trailer struct {
	Token     string `json:"token"`
	Separator string `json:"separator"`
	Value     string `json:"value"`
}

// TypeValue returns the type, or "" when absent.
func (m *ParsedMessage) TypeValue() string {
	return deref(m.Type)
}

// ScopeValue returns the scope, or "" when absent.
func (m *ParsedMessage) ScopeValue() string {
	return deref(m.Scope)
}

// BodyValue returns the body, or "" when absent.
func (m *ParsedMessage) BodyValue() string {
	return deref(m.Body)
}

// FooterValue returns the footer, or "" when absent.
func (m *ParsedMessage) FooterValue() string {
	return deref(m.Footer)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// MalformedMessageError is returned when a message has no header to parse.
type MalformedMessageError struct {
	Reason string
}

func (e *MalformedMessageError) Error() string {
	return "malformed commit message: " + e.Reason
}
