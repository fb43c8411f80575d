package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/zone_presence_engine/internal/models"
	"github.com/shenikar/zone_presence_engine/internal/service"
)

type FriendRepository struct {
	db *pgxpool.Pool
}

func NewFriendRepository(db *pgxpool.Pool) service.FriendRepository {
	return &FriendRepository{db: db}
}

// GetSharedZoneFriends возвращает дружеские связи пользователя, в которых зона
// входит в множество общих, вместе с текущим состоянием присутствия каждого друга
func (r *FriendRepository) GetSharedZoneFriends(ctx context.Context, userID string, zoneID uuid.UUID) ([]*models.FriendLink, error) {
	query := `
		SELECT
			f.user_id,
			f.friend_id,
			f.shared_zone_ids,
			p.zone_ids,
			p.evaluated_at,
			p.initialized
		FROM friend_links f
		LEFT JOIN presence_states p ON p.user_id = f.friend_id
		WHERE f.user_id = $1 AND $2 = ANY(f.shared_zone_ids);
	`
	rows, err := r.db.Query(ctx, query, userID, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shared-zone friends: %w", err)
	}
	defer rows.Close()

	links := make([]*models.FriendLink, 0)
	for rows.Next() {
		link := &models.FriendLink{}
		var friendZones []uuid.UUID
		var evaluatedAt *time.Time
		var initialized *bool
		err := rows.Scan(
			&link.UserID,
			&link.FriendID,
			&link.SharedZones,
			&friendZones,
			&evaluatedAt,
			&initialized,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan friend link row: %w", err)
		}
		// У друга может еще не быть записи присутствия
		if evaluatedAt != nil {
			link.Presence = &models.PresenceState{
				UserID:       link.FriendID,
				CurrentZones: friendZones,
				EvaluatedAt:  *evaluatedAt,
				Initialized:  initialized != nil && *initialized,
			}
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error friend link iteration: %w", err)
	}
	return links, nil
}
