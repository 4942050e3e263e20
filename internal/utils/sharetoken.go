package utils

// NewShareToken returns a URL-safe random token used to expose a plan for
// public read-only viewing.  16 bytes of entropy (32 hex characters) keeps
// the link short enough to share while staying unguessable.
func NewShareToken() (string, error) {
	return randomHex(16)
}
