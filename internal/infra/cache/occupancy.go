package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// generationKey счетчик поколений. Инкремент делает все старые ключи недостижимыми.
const generationKey = "occupancy:generation"

// OccupancyCache кэш результатов агрегации занятости в Redis
type OccupancyCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOccupancyCache создает кэш поверх готового клиента Redis
func NewOccupancyCache(client *redis.Client, ttl time.Duration) *OccupancyCache {
	return &OccupancyCache{
		client: client,
		ttl:    ttl,
	}
}

// Key возвращает ключ периода для текущего поколения
func (c *OccupancyCache) Key(ctx context.Context, from, to types.Date) (string, error) {
	generation, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: Key - get generation: %v", ErrRedis, err)
	}
	return occupancyKey(generation, from, to), nil
}

// Get возвращает записи по ключу; found=false при промахе
func (c *OccupancyCache) Get(ctx context.Context, key string) ([]domain.OccupancyRecord, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - key=%s: %v", ErrRedis, key, err)
	}

	records, err := decodeRecords(data)
	if err != nil {
		return nil, false, err
	}
	return records, true, nil
}

// Set сохраняет записи с TTL
func (c *OccupancyCache) Set(ctx context.Context, key string, records []domain.OccupancyRecord) error {
	payload, err := encodeRecords(records)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - key=%s: %v", ErrRedis, key, err)
	}
	return nil
}

// Invalidate сбрасывает весь кэш занятости сменой поколения
func (c *OccupancyCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate: %v", ErrRedis, err)
	}
	return nil
}

// Ping проверяет соединение с Redis
func (c *OccupancyCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close закрывает клиент Redis
func (c *OccupancyCache) Close() error {
	return c.client.Close()
}

func occupancyKey(generation int64, from, to types.Date) string {
	return fmt.Sprintf("occupancy:v%d:%s:%s", generation, from, to)
}
