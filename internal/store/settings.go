package store

import (
	"database/sql"
	"errors"
	"strconv"
)

// Well-known setting keys.
const (
	SettingSensitivity = "sensitivity"
	SettingCameraID    = "camera_id"
	SettingManual      = "manual_explode"
)

// SettingsRepository provides typed access to the key-value settings
// table.
type SettingsRepository struct {
	db *sql.DB
}

// Settings returns the settings repository for this store.
func (s *Store) Settings() *SettingsRepository {
	return &SettingsRepository{db: s.db}
}

// Get retrieves a setting value by key.
func (r *SettingsRepository) Get(key string) (string, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

// Set stores a setting value, replacing any existing one.
func (r *SettingsRepository) Set(key, value string) error {
	_, err := r.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// GetFloat retrieves a setting as float64, returning def when the key
// is absent or malformed.
func (r *SettingsRepository) GetFloat(key string, def float64) float64 {
	value, err := r.Get(key)
	if err != nil {
		return def
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def
	}
	return f
}

// SetFloat stores a float64 setting.
func (r *SettingsRepository) SetFloat(key string, v float64) error {
	return r.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
}

// GetInt retrieves a setting as int, returning def when the key is
// absent or malformed.
func (r *SettingsRepository) GetInt(key string, def int) int {
	value, err := r.Get(key)
	if err != nil {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}

// SetInt stores an int setting.
func (r *SettingsRepository) SetInt(key string, v int) error {
	return r.Set(key, strconv.Itoa(v))
}
