package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Photos table - the photo library rendered into the formation.
		// URLs are opaque handles; the renderer resolves them.
		`CREATE TABLE IF NOT EXISTS photos (
			id TEXT PRIMARY KEY,
			url TEXT NOT NULL,
			label TEXT NOT NULL DEFAULT '',
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings table - application settings as key-value pairs
		// (sensitivity, camera device, manual defaults).
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_photos_sort_order ON photos(sort_order)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
