package store

import (
	"errors"
	"testing"
)

func TestPhotoRepository_CreateAndGet(t *testing.T) {
	s := newTestStore(t)

	photo := &Photo{
		ID:        "photo-1",
		URL:       "https://example.com/a.jpg",
		Label:     "first",
		SortOrder: 3,
	}
	if err := s.Photos().Create(photo); err != nil {
		t.Fatalf("failed to create photo: %v", err)
	}

	got, err := s.Photos().GetByID("photo-1")
	if err != nil {
		t.Fatalf("failed to get photo: %v", err)
	}

	if got.URL != photo.URL || got.Label != photo.Label || got.SortOrder != photo.SortOrder {
		t.Errorf("unexpected photo: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestPhotoRepository_GetNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Photos().GetByID("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPhotoRepository_ListOrdersBySortOrder(t *testing.T) {
	s := newTestStore(t)

	for i, p := range []*Photo{
		{ID: "c", URL: "u-c", SortOrder: 2},
		{ID: "a", URL: "u-a", SortOrder: 0},
		{ID: "b", URL: "u-b", SortOrder: 1},
	} {
		if err := s.Photos().Create(p); err != nil {
			t.Fatalf("photo %d: failed to create: %v", i, err)
		}
	}

	photos, err := s.Photos().List()
	if err != nil {
		t.Fatalf("failed to list photos: %v", err)
	}

	if len(photos) != 3 {
		t.Fatalf("expected 3 photos, got %d", len(photos))
	}
	for i, wantID := range []string{"a", "b", "c"} {
		if photos[i].ID != wantID {
			t.Errorf("position %d: expected %q, got %q", i, wantID, photos[i].ID)
		}
	}
}

func TestPhotoRepository_URLs(t *testing.T) {
	s := newTestStore(t)

	for _, p := range []*Photo{
		{ID: "a", URL: "u-a", SortOrder: 0},
		{ID: "b", URL: "u-b", SortOrder: 1},
	} {
		if err := s.Photos().Create(p); err != nil {
			t.Fatalf("failed to create photo: %v", err)
		}
	}

	urls, err := s.Photos().URLs()
	if err != nil {
		t.Fatalf("failed to list URLs: %v", err)
	}

	if len(urls) != 2 || urls[0] != "u-a" || urls[1] != "u-b" {
		t.Errorf("unexpected URLs: %v", urls)
	}
}

func TestPhotoRepository_Update(t *testing.T) {
	s := newTestStore(t)

	photo := &Photo{ID: "p", URL: "old", SortOrder: 0}
	if err := s.Photos().Create(photo); err != nil {
		t.Fatalf("failed to create photo: %v", err)
	}

	photo.URL = "new"
	photo.SortOrder = 7
	if err := s.Photos().Update(photo); err != nil {
		t.Fatalf("failed to update photo: %v", err)
	}

	got, err := s.Photos().GetByID("p")
	if err != nil {
		t.Fatalf("failed to get photo: %v", err)
	}
	if got.URL != "new" || got.SortOrder != 7 {
		t.Errorf("unexpected photo after update: %+v", got)
	}
}

func TestPhotoRepository_UpdateNotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.Photos().Update(&Photo{ID: "missing", URL: "u"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPhotoRepository_Delete(t *testing.T) {
	s := newTestStore(t)

	if err := s.Photos().Create(&Photo{ID: "p", URL: "u"}); err != nil {
		t.Fatalf("failed to create photo: %v", err)
	}

	if err := s.Photos().Delete("p"); err != nil {
		t.Fatalf("failed to delete photo: %v", err)
	}

	if _, err := s.Photos().GetByID("p"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := s.Photos().Delete("p"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting twice, got %v", err)
	}
}
