package models

// SessionContext is the per-request pair forwarded to the backend. It is read
// from cookies once per inbound request and never mutated afterwards.
type SessionContext struct {
	AccessToken string
	Locale      string
	// UserID is the unverified `sub` claim of AccessToken. It attributes logs
	// and names the signed-in user's own view for invalidation, never access.
	UserID string
}

func (s SessionContext) HasAccessToken() bool {
	return s.AccessToken != ""
}

func (s SessionContext) HasLocale() bool {
	return s.Locale != ""
}
