package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/zone_presence_engine/internal/models"
	"github.com/shenikar/zone_presence_engine/internal/service"
)

type ZoneRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewZoneRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.ZoneRepository {
	return &ZoneRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// GetZonesForUser возвращает каталог зон, членом которых является пользователь.
// Координаты нормализуются к плоской форме lat/lon/radius прямо в запросе,
// чтобы дрейф схемы документов зон не протекал в оценщик.
func (r *ZoneRepository) GetZonesForUser(ctx context.Context, userID string) ([]*models.ZoneDefinition, error) {
	if zones, err := r.getZonesFromCache(ctx, userID); err == nil && zones != nil {
		return zones, nil
	}

	query := `
		SELECT
			z.id,
			z.name,
			z.owner_id,
			ST_Y(z.location::geometry) as latitude,
			ST_X(z.location::geometry) as longitude,
			z.radius_meters,
			ARRAY(SELECT zm.user_id FROM zone_members zm WHERE zm.zone_id = z.id ORDER BY zm.joined_at) as member_ids,
			z.created_at,
			z.updated_at
		FROM zones z
		JOIN zone_members m ON m.zone_id = z.id
		WHERE m.user_id = $1
		ORDER BY z.created_at;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get zones for user: %w", err)
	}
	defer rows.Close()

	zones := make([]*models.ZoneDefinition, 0)
	for rows.Next() {
		zone := &models.ZoneDefinition{}
		err := rows.Scan(
			&zone.ID,
			&zone.Name,
			&zone.OwnerID,
			&zone.Latitude,
			&zone.Longitude,
			&zone.RadiusMeters,
			&zone.MemberIDs,
			&zone.CreatedAt,
			&zone.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error zone list iteration: %w", err)
	}

	// Кэш каталога best-effort: неудачная запись в кэш не ломает чтение
	_ = r.setZonesCache(ctx, userID, zones)
	return zones, nil
}

// InvalidateZoneCache удаляет каталог зон пользователя из Redis кэша
func (r *ZoneRepository) InvalidateZoneCache(ctx context.Context, userID string) error {
	key := zoneCacheKey(userID)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate zone catalog cache: %w", err)
	}
	return nil
}

// getZonesFromCache пытается получить каталог зон из Redis
func (r *ZoneRepository) getZonesFromCache(ctx context.Context, userID string) ([]*models.ZoneDefinition, error) {
	val, err := r.redisClient.Get(ctx, zoneCacheKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get zone catalog from cache: %w", err)
	}

	zones := make([]*models.ZoneDefinition, 0)
	if err := json.Unmarshal(val, &zones); err != nil {
		return nil, fmt.Errorf("failed to unmarshal zone catalog from cache: %w", err)
	}
	return zones, nil
}

// setZonesCache сохраняет каталог зон пользователя в Redis
func (r *ZoneRepository) setZonesCache(ctx context.Context, userID string, zones []*models.ZoneDefinition) error {
	val, err := json.Marshal(zones)
	if err != nil {
		return fmt.Errorf("failed to marshal zone catalog for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, zoneCacheKey(userID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set zone catalog in cache: %w", err)
	}
	return nil
}

func zoneCacheKey(userID string) string {
	return fmt.Sprintf("zones:user:%s", userID)
}
