package store

import (
	"errors"
	"testing"
)

func TestSettingsRepository_SetAndGet(t *testing.T) {
	s := newTestStore(t)

	if err := s.Settings().Set("greeting", "hello"); err != nil {
		t.Fatalf("failed to set setting: %v", err)
	}

	value, err := s.Settings().Get("greeting")
	if err != nil {
		t.Fatalf("failed to get setting: %v", err)
	}
	if value != "hello" {
		t.Errorf("expected %q, got %q", "hello", value)
	}
}

func TestSettingsRepository_GetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Settings().Get("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSettingsRepository_SetReplaces(t *testing.T) {
	s := newTestStore(t)

	if err := s.Settings().Set("key", "one"); err != nil {
		t.Fatalf("failed to set setting: %v", err)
	}
	if err := s.Settings().Set("key", "two"); err != nil {
		t.Fatalf("failed to replace setting: %v", err)
	}

	value, err := s.Settings().Get("key")
	if err != nil {
		t.Fatalf("failed to get setting: %v", err)
	}
	if value != "two" {
		t.Errorf("expected replaced value %q, got %q", "two", value)
	}
}

func TestSettingsRepository_FloatRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if err := s.Settings().SetFloat(SettingSensitivity, 1.5); err != nil {
		t.Fatalf("failed to set float: %v", err)
	}

	if got := s.Settings().GetFloat(SettingSensitivity, 1.0); got != 1.5 {
		t.Errorf("expected 1.5, got %f", got)
	}
}

func TestSettingsRepository_FloatDefault(t *testing.T) {
	s := newTestStore(t)

	if got := s.Settings().GetFloat("missing", 2.5); got != 2.5 {
		t.Errorf("expected default 2.5, got %f", got)
	}

	// Malformed values also fall back to the default.
	if err := s.Settings().Set("bad", "not-a-number"); err != nil {
		t.Fatalf("failed to set setting: %v", err)
	}
	if got := s.Settings().GetFloat("bad", 2.5); got != 2.5 {
		t.Errorf("expected default for malformed value, got %f", got)
	}
}

func TestSettingsRepository_IntRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if err := s.Settings().SetInt(SettingCameraID, 2); err != nil {
		t.Fatalf("failed to set int: %v", err)
	}

	if got := s.Settings().GetInt(SettingCameraID, 0); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}

	if got := s.Settings().GetInt("missing", 7); got != 7 {
		t.Errorf("expected default 7, got %d", got)
	}
}
