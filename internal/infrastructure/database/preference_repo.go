package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cropguru/internal/ports/output"
)

const localePreferenceKey = "locale"

var _ output.LocalePreferenceStore = (*PreferenceRepository)(nil)

// PreferenceRepository stores device-scoped preferences durably. deviceID
// identifies the installation so several devices can keep distinct locale
// choices.
type PreferenceRepository struct {
	pool     *pgxpool.Pool
	deviceID string
}

// NewPreferenceRepository creates a PreferenceRepository for one device.
func NewPreferenceRepository(pool *pgxpool.Pool, deviceID string) *PreferenceRepository {
	return &PreferenceRepository{pool: pool, deviceID: deviceID}
}

// Load returns the stored locale code, or "" when none has been saved yet.
func (r *PreferenceRepository) Load(ctx context.Context) (string, error) {
	var value string
	err := r.pool.QueryRow(ctx,
		`SELECT value FROM preferences WHERE device_id = $1 AND key = $2`,
		r.deviceID, localePreferenceKey,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load locale preference: %w", err)
	}
	return value, nil
}

func (r *PreferenceRepository) Save(ctx context.Context, code string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO preferences (device_id, key, value)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (device_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		r.deviceID, localePreferenceKey, code,
	)
	if err != nil {
		return fmt.Errorf("save locale preference: %w", err)
	}
	return nil
}
