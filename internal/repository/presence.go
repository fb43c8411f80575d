package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/zone_presence_engine/internal/models"
	"github.com/shenikar/zone_presence_engine/internal/service"
)

type PresenceRepository struct {
	db *pgxpool.Pool
}

func NewPresenceRepository(db *pgxpool.Pool) service.PresenceRepository {
	return &PresenceRepository{db: db}
}

// Load возвращает состояние присутствия пользователя или nil, если записи еще нет
func (r *PresenceRepository) Load(ctx context.Context, userID string) (*models.PresenceState, error) {
	state := &models.PresenceState{}
	query := `
		SELECT user_id, zone_ids, evaluated_at, initialized
		FROM presence_states
		WHERE user_id = $1;
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&state.UserID,
		&state.CurrentZones,
		&state.EvaluatedAt,
		&state.Initialized,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load presence state: %w", err)
	}
	return state, nil
}

// Save перезаписывает состояние присутствия целиком одной строкой.
// Частичных обновлений полей нет: сбой посреди записи не может оставить
// полуобновленную запись.
func (r *PresenceRepository) Save(ctx context.Context, state *models.PresenceState) error {
	query := `
		INSERT INTO presence_states (user_id, zone_ids, evaluated_at, initialized)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			zone_ids = EXCLUDED.zone_ids,
			evaluated_at = EXCLUDED.evaluated_at,
			initialized = EXCLUDED.initialized;
	`
	if _, err := r.db.Exec(ctx, query,
		state.UserID,
		state.CurrentZones,
		state.EvaluatedAt,
		state.Initialized,
	); err != nil {
		return fmt.Errorf("failed to save presence state: %w", err)
	}
	return nil
}

// Clear удаляет запись присутствия пользователя (явный sign-out)
func (r *PresenceRepository) Clear(ctx context.Context, userID string) error {
	query := `DELETE FROM presence_states WHERE user_id = $1;`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to clear presence state: %w", err)
	}
	return nil
}
