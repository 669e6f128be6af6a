// Package blob abstracts binary asset storage for item photos.
package blob

import "context"

// Store is an opaque "upload bytes, get a URL back" capability.
//
// Delete is best-effort from the caller's point of view: record mutations log
// a failed asset delete and proceed, they never fail because of it.
type Store interface {
	// Upload stores data and returns a stable, publicly resolvable URL.
	Upload(ctx context.Context, data []byte, contentType, filename string) (string, error)
	// Delete removes the object a previous Upload returned url for.
	Delete(ctx context.Context, url string) error
}
