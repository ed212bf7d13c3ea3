// Package session persists the durable session artifacts: the access token
// and the cached user record. The two are a single logical pair — they are
// always written and cleared together, so a token without a user (or the
// reverse) is never observable at rest.
package session

import "context"

// Artifacts is the persisted session pair.
type Artifacts struct {
	AccessToken string
	User        []byte
}

// Repository stores the session pair. Load returns (nil, nil) when no
// session is stored; a half-present pair is treated as absent and removed.
type Repository interface {
	Load(ctx context.Context) (*Artifacts, error)
	Save(ctx context.Context, accessToken string, user []byte) error
	Clear(ctx context.Context) error
}
