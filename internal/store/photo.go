package store

import (
	"database/sql"
	"errors"
	"time"
)

// Photo represents one photo library entry. The URL is an opaque handle
// supplied externally; the engine only cares about slot order.
type Photo struct {
	ID        string
	URL       string
	Label     string
	SortOrder int
	CreatedAt time.Time
}

// PhotoRepository provides CRUD operations for photos.
type PhotoRepository struct {
	db *sql.DB
}

// Photos returns the photo repository for this store.
func (s *Store) Photos() *PhotoRepository {
	return &PhotoRepository{db: s.db}
}

// Create inserts a new photo into the library.
func (r *PhotoRepository) Create(p *Photo) error {
	p.CreatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO photos (id, url, label, sort_order, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.URL, p.Label, p.SortOrder, p.CreatedAt,
	)
	return err
}

// GetByID retrieves a photo by its ID.
func (r *PhotoRepository) GetByID(id string) (*Photo, error) {
	p := &Photo{}

	err := r.db.QueryRow(
		`SELECT id, url, label, sort_order, created_at
		 FROM photos WHERE id = ?`,
		id,
	).Scan(&p.ID, &p.URL, &p.Label, &p.SortOrder, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

// List retrieves all photos ordered by slot order, then insertion time.
func (r *PhotoRepository) List() ([]*Photo, error) {
	rows, err := r.db.Query(
		`SELECT id, url, label, sort_order, created_at
		 FROM photos ORDER BY sort_order ASC, created_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []*Photo
	for rows.Next() {
		p := &Photo{}
		if err := rows.Scan(&p.ID, &p.URL, &p.Label, &p.SortOrder, &p.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return photos, nil
}

// URLs returns the ordered photo URLs, the shape the scene engine loads.
func (r *PhotoRepository) URLs() ([]string, error) {
	photos, err := r.List()
	if err != nil {
		return nil, err
	}

	urls := make([]string, len(photos))
	for i, p := range photos {
		urls[i] = p.URL
	}
	return urls, nil
}

// Update updates an existing photo.
func (r *PhotoRepository) Update(p *Photo) error {
	result, err := r.db.Exec(
		`UPDATE photos SET url = ?, label = ?, sort_order = ? WHERE id = ?`,
		p.URL, p.Label, p.SortOrder, p.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a photo from the library by its ID.
func (r *PhotoRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM photos WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
