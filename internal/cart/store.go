package cart

import "context"

// Store is the durable slot a cart snapshots itself into. Load must
// treat a missing or unparseable snapshot as an empty cart, never as an
// error the caller has to handle.
type Store interface {
	Load(ctx context.Context, ownerID string) []Line
	Save(ctx context.Context, ownerID string, lines []Line) error
	Clear(ctx context.Context, ownerID string) error
}
