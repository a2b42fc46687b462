package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/model"
	"weather-widget/pkg/redis"
)

const sessionKeyPrefix = "session::"

// RedisSessionGateway stores each session as a JSON value whose TTL is
// refreshed on every save, so idle sessions expire on their own.
type RedisSessionGateway struct {
	client        *redis.Client
	healthChecker *redis.HealthChecker
	ttl           time.Duration
}

var _ SessionGateway = (*RedisSessionGateway)(nil)

func NewRedisSessionGateway(client *redis.Client, ttl time.Duration) *RedisSessionGateway {
	return &RedisSessionGateway{
		client:        client,
		healthChecker: redis.NewHealthChecker(client),
		ttl:           ttl,
	}
}

func (gateway *RedisSessionGateway) buildKey(id string) string {
	return sessionKeyPrefix + id
}

func (gateway *RedisSessionGateway) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	data, err := gateway.client.GetBytes(ctx, gateway.buildKey(id))
	if err != nil {
		return nil, fmt.Errorf("failed to read session %s: %w", id, err)
	}
	if data == nil {
		return nil, nil
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &session, nil
}

func (gateway *RedisSessionGateway) Save(ctx context.Context, session entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", session.ID, err)
	}
	if err := gateway.client.Set(ctx, gateway.buildKey(session.ID), data, gateway.ttl); err != nil {
		return fmt.Errorf("failed to save session %s: %w", session.ID, err)
	}
	return nil
}

func (gateway *RedisSessionGateway) Delete(ctx context.Context, id string) error {
	return gateway.client.Delete(ctx, gateway.buildKey(id))
}

// DeleteIdle is a no-op: Redis expires idle sessions through the key TTL.
func (gateway *RedisSessionGateway) DeleteIdle(context.Context, time.Time) (int, error) {
	return 0, nil
}

func (gateway *RedisSessionGateway) Health() model.ComponentHealthStatus {
	check := gateway.healthChecker.HealthCheck()

	details := map[string]string{"type": "redis"}
	for key, value := range check.Details {
		details[key] = value
	}

	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if count, err := gateway.client.CountKeys(ctx, sessionKeyPrefix+"*"); err == nil {
			details["sessions"] = fmt.Sprint(count)
		}
	}

	return model.ComponentHealthStatus{Status: status, Details: details}
}
