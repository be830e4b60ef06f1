package models

// Session is the authenticated person using the directory. It is resolved
// once per request by the session middleware and passed down explicitly.
type Session struct {
	Subject  string `json:"subject"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Token    string `json:"-"`
}

func (s *Session) Authenticated() bool {
	return s != nil && s.Subject != ""
}
