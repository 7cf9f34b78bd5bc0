package domain

// Viewer describes who is watching the reel. UserID is empty for
// anonymous viewers; the HTTP layer fills it from a verified bearer token.
type Viewer struct {
	UserID string
}

// Authenticated reports whether the viewer carries a user id.
func (v Viewer) Authenticated() bool {
	return v.UserID != ""
}
