package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/zone_presence_engine/internal/models"
	"github.com/shenikar/zone_presence_engine/internal/service"
)

// RegionStore хранит в Redis активный набор регионов каждого пользователя.
// Устройство читает этот набор и зеркалирует его в платформенный
// мониторинг регионов; сам примитив ОС живет на клиенте.
type RegionStore struct {
	redisClient *redis.Client
}

func NewRegionStore(redisClient *redis.Client) service.RegionMonitor {
	return &RegionStore{redisClient: redisClient}
}

// RegisterRegions записывает активный набор зон пользователя
func (r *RegionStore) RegisterRegions(ctx context.Context, userID string, zones []*models.ZoneDefinition) error {
	if len(zones) == 0 {
		return nil
	}
	members := make([]interface{}, 0, len(zones))
	for _, zone := range zones {
		members = append(members, zone.ID.String())
	}
	if err := r.redisClient.SAdd(ctx, regionSetKey(userID), members...).Err(); err != nil {
		return fmt.Errorf("failed to register regions: %w", err)
	}
	return nil
}

// DeregisterAll удаляет весь активный набор регионов пользователя
func (r *RegionStore) DeregisterAll(ctx context.Context, userID string) error {
	if err := r.redisClient.Del(ctx, regionSetKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to deregister regions: %w", err)
	}
	return nil
}

// ActiveRegions возвращает идентификаторы зон активного набора
func (r *RegionStore) ActiveRegions(ctx context.Context, userID string) ([]uuid.UUID, error) {
	members, err := r.redisClient.SMembers(ctx, regionSetKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read active regions: %w", err)
	}
	ids := make([]uuid.UUID, 0, len(members))
	for _, member := range members {
		id, err := uuid.Parse(member)
		if err != nil {
			return nil, fmt.Errorf("failed to parse active region id %q: %w", member, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func regionSetKey(userID string) string {
	return fmt.Sprintf("regions:user:%s", userID)
}
