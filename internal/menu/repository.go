package menu

import "context"

// Repository defines all storage operations for the menu collection.
// Service and handlers depend ONLY on this interface; the backing medium
// is either a JSON file or a Postgres table.
type Repository interface {

	// ListAll returns the full collection ordered by ascending id.
	// A missing or corrupt backing medium yields an empty collection,
	// never an error.
	ListAll(ctx context.Context) ([]Item, error)

	// Create assigns the next id, sets imageUrl to null and persists.
	// Returns *PersistenceError if the write fails; the store is left
	// unchanged in that case.
	Create(ctx context.Context, fields ItemFields) (Item, error)

	// Update replaces name, description, price and tags of the item
	// matching id. imageUrl is preserved unless fields carries one.
	// Returns ErrNotFound if no item has that id.
	Update(ctx context.Context, id int, fields ItemFields) (Item, error)

	// UpdateImage patches only the imageUrl of the item matching id.
	// Returns ErrNotFound if no item has that id.
	UpdateImage(ctx context.Context, id int, imageURL string) error

	// Delete removes the item matching id permanently. The id is not
	// handed out again. Returns ErrNotFound if no item has that id.
	Delete(ctx context.Context, id int) error
}
