package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alquigo/alquigo-backend/pkg/logger"
	redisclient "github.com/alquigo/alquigo-backend/pkg/redis"
	redislib "github.com/redis/go-redis/v9"
)

type cartSlot interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type cartKeyer interface {
	CartKey(ownerID string) string
}

// RedisStore persists cart snapshots as JSON under the owner's cart
// slot. Unreadable snapshots hydrate as an empty cart.
type RedisStore struct {
	slot  cartSlot
	keyer cartKeyer
	ttl   time.Duration
	logg  *logger.Logger
}

// NewRedisStore builds the production cart store.
func NewRedisStore(client *redisclient.Client, ttl time.Duration, logg *logger.Logger) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("cart snapshot ttl must be positive")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &RedisStore{slot: client, keyer: client, ttl: ttl, logg: logg}, nil
}

func (s *RedisStore) Load(ctx context.Context, ownerID string) []Line {
	key := s.keyer.CartKey(ownerID)
	raw, err := s.slot.Get(ctx, key)
	if err != nil {
		if err != redislib.Nil {
			s.logg.Warn(s.logg.WithCartKey(ctx, key), fmt.Sprintf("failed to read cart slot: %v", err))
		}
		return nil
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		s.logg.Warn(s.logg.WithCartKey(ctx, key), fmt.Sprintf("discarding corrupt cart snapshot: %v", err))
		return nil
	}
	return lines
}

func (s *RedisStore) Save(ctx context.Context, ownerID string, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshaling cart snapshot: %w", err)
	}
	return s.slot.Set(ctx, s.keyer.CartKey(ownerID), string(payload), s.ttl)
}

func (s *RedisStore) Clear(ctx context.Context, ownerID string) error {
	return s.slot.Del(ctx, s.keyer.CartKey(ownerID))
}
