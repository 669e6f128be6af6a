package store

import (
	"context"

	"github.com/trouvaille/lostfound/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (postgres, sqlite).
type Store interface {
	FoundItems() FoundItems
	LostItems() LostItems
	Users() Users
	Matches() Matches

	// Ping verifies the backing database is reachable.
	Ping(ctx context.Context) error
	Close() error
}

// FoundItems persists found-item records. Get and List return items with
// PossibleMatches populated from the relation table, newest item first.
type FoundItems interface {
	Create(ctx context.Context, it *model.FoundItem) (*model.FoundItem, error)
	Get(ctx context.Context, id string) (*model.FoundItem, error)
	List(ctx context.Context) ([]*model.FoundItem, error)
	// Update replaces every mutable field from it; ID and CreatedAt in the
	// stored row are never touched. Returns model.ErrNotFound for unknown ids.
	Update(ctx context.Context, it *model.FoundItem) (*model.FoundItem, error)
	Delete(ctx context.Context, id string) error
}

// LostItems persists lost-item records, symmetric to FoundItems.
type LostItems interface {
	Create(ctx context.Context, it *model.LostItem) (*model.LostItem, error)
	Get(ctx context.Context, id string) (*model.LostItem, error)
	List(ctx context.Context) ([]*model.LostItem, error)
	Update(ctx context.Context, it *model.LostItem) (*model.LostItem, error)
	Delete(ctx context.Context, id string) error
}

// Users persists accounts.
type Users interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// Matches persists the derived candidate-match relation. Replace swaps the
// whole relation in a single transaction, so the two sides of the symmetric
// relation can never be observed out of step.
type Matches interface {
	Replace(ctx context.Context, pairs []model.MatchPair) error
}
