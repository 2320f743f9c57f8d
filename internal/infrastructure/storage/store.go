// internal/infrastructure/storage/store.go
package storage

import (
	"context"
	"fmt"
	"time"
)

// Store is the persistence adapter for session-scoped storefront state:
// cart lines, language preference, customer details and set-editing
// sessions, all JSON-serialized under string keys.
//
// The contract is deliberately lossy: an unavailable backend must never
// surface as an error to the caller. Read reports false for anything it
// cannot produce, Write and Delete are fire-and-forget.
type Store interface {
	Read(ctx context.Context, key string, dest interface{}) bool
	Write(ctx context.Context, key string, value interface{}, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}

const keyPrefix = "storefront"

// CartKey returns the storage key for a session's cart lines
func CartKey(sessionID string) string {
	return fmt.Sprintf("%s:cart:%s", keyPrefix, sessionID)
}

// LangKey returns the storage key for a session's language preference
func LangKey(sessionID string) string {
	return fmt.Sprintf("%s:lang:%s", keyPrefix, sessionID)
}

// CustomerKey returns the storage key for a session's customer details
func CustomerKey(sessionID string) string {
	return fmt.Sprintf("%s:customer:%s", keyPrefix, sessionID)
}

// EditSessionKey returns the storage key for one set-editing session
func EditSessionKey(sessionID, editID string) string {
	return fmt.Sprintf("%s:setedit:%s:%s", keyPrefix, sessionID, editID)
}
