package models

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"profileparser/parsers"
)

// ProfileModel persists extracted profiles keyed by user ID. The whole
// profile is stored as a JSONB document; the extraction pipeline owns its
// shape.
type ProfileModel struct {
	db *sql.DB
}

func NewProfileModel(db *sql.DB) *ProfileModel {
	return &ProfileModel{db: db}
}

// EnsureSchema creates the backing table when it does not exist yet.
func (m *ProfileModel) EnsureSchema() error {
	_, err := m.db.Exec(`
		CREATE TABLE IF NOT EXISTS user_profiles (
			user_id    INTEGER PRIMARY KEY,
			profile    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("error creating user_profiles table: %v", err)
	}
	return nil
}

// GetByUserID loads the stored profile for a user. A missing row returns
// (nil, nil) so callers can treat absence as an empty starting point.
func (m *ProfileModel) GetByUserID(userID int) (*parsers.Profile, error) {
	var raw []byte
	err := m.db.QueryRow(
		`SELECT profile FROM user_profiles WHERE user_id = $1`, userID,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading profile for user %d: %v", userID, err)
	}

	profile := parsers.NewProfile()
	if err := json.Unmarshal(raw, profile); err != nil {
		return nil, fmt.Errorf("error decoding stored profile for user %d: %v", userID, err)
	}
	return profile, nil
}

// CreateOrUpdate upserts the profile document for a user.
func (m *ProfileModel) CreateOrUpdate(userID int, profile *parsers.Profile) error {
	raw, err := profile.ToJSON()
	if err != nil {
		return fmt.Errorf("error encoding profile for user %d: %v", userID, err)
	}

	_, err = m.db.Exec(`
		INSERT INTO user_profiles (user_id, profile, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET profile = EXCLUDED.profile, updated_at = NOW()`,
		userID, raw)
	if err != nil {
		return fmt.Errorf("error saving profile for user %d: %v", userID, err)
	}
	return nil
}
