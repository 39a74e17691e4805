package menu

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// FileRepository stores the collection as a single JSON array on disk.
// Every mutation runs load -> mutate copy -> write under one mutex, so
// two concurrent mutations cannot overwrite each other's result. The
// file stays the sole source of truth between operations; nothing is
// cached across calls.
type FileRepository struct {
	mu    sync.Mutex
	path  string
	maxID int // highest id handed out by this instance, never reused
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// load reads the current collection. A missing or corrupt file degrades
// to an empty collection rather than failing the request.
func (r *FileRepository) load() []Item {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return []Item{}
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return []Item{}
	}

	return items
}

// persist writes the whole collection to a temp file in the same
// directory and renames it over the target, so readers never observe a
// partially written file.
func (r *FileRepository) persist(items []Item) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".menu-*.json")
	if err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &PersistenceError{Op: "write", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &PersistenceError{Op: "write", Err: err}
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return &PersistenceError{Op: "write", Err: err}
	}

	return nil
}

func (r *FileRepository) ListAll(ctx context.Context) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.load()
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *FileRepository) Create(ctx context.Context, fields ItemFields) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.load()

	next := r.maxID
	for _, it := range items {
		if it.ID > next {
			next = it.ID
		}
	}
	next++

	item := Item{
		ID:          next,
		Name:        fields.Name,
		Description: fields.Description,
		Price:       fields.Price,
		Tags:        fields.Tags,
		ImageURL:    nil,
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}

	if err := r.persist(append(items, item)); err != nil {
		return Item{}, err
	}

	r.maxID = next
	return item, nil
}

func (r *FileRepository) Update(ctx context.Context, id int, fields ItemFields) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.load()

	idx := indexOf(items, id)
	if idx < 0 {
		return Item{}, ErrNotFound
	}

	updated := items[idx]
	updated.Name = fields.Name
	updated.Description = fields.Description
	updated.Price = fields.Price
	updated.Tags = fields.Tags
	if updated.Tags == nil {
		updated.Tags = []string{}
	}
	if fields.ImageURL != nil {
		updated.ImageURL = fields.ImageURL
	}

	items[idx] = updated

	if err := r.persist(items); err != nil {
		return Item{}, err
	}

	return updated, nil
}

func (r *FileRepository) UpdateImage(ctx context.Context, id int, imageURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.load()

	idx := indexOf(items, id)
	if idx < 0 {
		return ErrNotFound
	}

	items[idx].ImageURL = &imageURL

	return r.persist(items)
}

func (r *FileRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.load()

	idx := indexOf(items, id)
	if idx < 0 {
		return ErrNotFound
	}

	// Remember the id so it is never handed out again, even when the
	// deleted item held the current maximum.
	if items[idx].ID > r.maxID {
		r.maxID = items[idx].ID
	}

	return r.persist(append(items[:idx], items[idx+1:]...))
}

func indexOf(items []Item, id int) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

var _ Repository = (*FileRepository)(nil)
