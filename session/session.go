// Package session defines the per-portal authenticated session: a bearer
// token paired with the cached profile of the principal that owns it.
package session

// Profile is the denormalized snapshot of the authenticated principal, kept
// exactly as the backend returned it. The gateway displays individual fields
// but never interprets them.
type Profile map[string]any

// Merge returns a copy of p with the fields of partial laid over it.
// Neither input is modified.
func (p Profile) Merge(partial Profile) Profile {
	merged := make(Profile, len(p)+len(partial))
	for k, v := range p {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}
	return merged
}

// Field returns the value for key as a string, or "" when the key is absent
// or holds a non-string value. Display code uses it to pull name-like fields
// out of an otherwise opaque profile.
func (p Profile) Field(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

// Session pairs the bearer token issued at login with the cached profile for
// one portal. The zero value means logged out.
type Session struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile,omitempty"`
}

// Active reports whether the session carries a token. A session without a
// token is treated as logged out everywhere in the gateway.
func (s Session) Active() bool {
	return s.Token != ""
}
