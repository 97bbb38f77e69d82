package riderlocation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"pharmago/internal/entities"
	service "pharmago/internal/service/rider"
)

// Repository хранит последнюю известную позицию райдера в Redis.
// TTL ограничивает срок жизни: протухшая позиция равна отсутствующей,
// и райдер выпадает из кандидатов назначения.
type Repository struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Repository {
	return &Repository{
		client: client,
		ttl:    ttl,
	}
}

func key(riderID int64) string {
	return fmt.Sprintf("rider:location:%d", riderID)
}

func (r *Repository) SetLocation(ctx context.Context, riderID int64, location entities.GeoPoint) error {
	value := fmt.Sprintf("%s,%s",
		strconv.FormatFloat(location.Lat, 'f', -1, 64),
		strconv.FormatFloat(location.Lng, 'f', -1, 64),
	)

	if err := r.client.Set(ctx, key(riderID), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("unexpected rider location repository set error: %w", err)
	}
	return nil
}

func (r *Repository) Location(ctx context.Context, riderID int64) (*entities.GeoPoint, error) {
	value, err := r.client.Get(ctx, key(riderID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrLocationNotFound
		}
		return nil, fmt.Errorf("unexpected rider location repository get error: %w", err)
	}

	parts := strings.SplitN(value, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("malformed rider location value %q", value)
	}

	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, fmt.Errorf("malformed rider location value %q: %w", value, err)
	}
	lng, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, fmt.Errorf("malformed rider location value %q: %w", value, err)
	}

	return &entities.GeoPoint{Lat: lat, Lng: lng}, nil
}
