package redis

import (
	"context"
	"dashboard-service/internal/app/contracts"
	"dashboard-service/internal/pkg/exceptions"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// deleteIfEqualsScript deletes KEYS[1] only while it still holds ARGV[1].
var deleteIfEqualsScript = redis.NewScript(`
local current = redis.call("GET", KEYS[1])
if not current then
	return 0
end
if current == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return -1
`)

type redisRepository struct {
	client redis.UniversalClient
}

func NewRedisRepository(client redis.UniversalClient) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	err := r.client.Del(ctx, keys...).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

// Set stores strings and byte slices as-is and JSON-encodes anything else.
func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	var payload interface{}
	switch v := value.(type) {
	case []byte, string:
		payload = v
	default:
		jsonValue, err := json.Marshal(value)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		payload = jsonValue
	}

	err := r.client.Set(ctx, key, payload, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

// Get returns an empty string and no error when the key does not exist.
func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGet(err)
	}
	return data, nil
}

// TrySetNX sets key only when it does not exist yet and reports whether it
// did. Values are stored as-is.
func (r *redisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	acquired, err := r.client.SetNX(ctx, key, value, exp).Result()
	if err != nil {
		return false, exceptions.ErrRedisSet(err)
	}
	return acquired, nil
}

func (r *redisRepository) AddToSet(ctx context.Context, key string, values ...interface{}) error {
	err := r.client.SAdd(ctx, key, values...).Err()
	if err != nil {
		return exceptions.ErrRedisAddToSet(err)
	}
	return nil
}

func (r *redisRepository) RemoveFromSet(ctx context.Context, key string, values ...interface{}) error {
	if len(values) == 0 {
		return nil
	}
	err := r.client.SRem(ctx, key, values...).Err()
	if err != nil {
		return exceptions.ErrRedisRemoveFromSet(err)
	}
	return nil
}

func (r *redisRepository) GetSetMembers(ctx context.Context, key string) ([]string, error) {
	setMembers, err := r.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, exceptions.ErrRedisGetSetMembers(err)
	}
	return setMembers, nil
}

func (r *redisRepository) AddToSortedSet(ctx context.Context, key string, score float64, member string) error {
	err := r.client.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Err()
	if err != nil {
		return exceptions.ErrRedisAddToSortedSet(err)
	}
	return nil
}

// GetSortedSetMembers returns the members ordered by ascending score.
func (r *redisRepository) GetSortedSetMembers(ctx context.Context, key string) ([]string, error) {
	members, err := r.client.ZRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, exceptions.ErrRedisGetSortedSetMembers(err)
	}
	return members, nil
}

func (r *redisRepository) RemoveFromSortedSet(ctx context.Context, key string, members ...string) error {
	if len(members) == 0 {
		return nil
	}
	values := make([]interface{}, len(members))
	for i, member := range members {
		values[i] = member
	}
	err := r.client.ZRem(ctx, key, values...).Err()
	if err != nil {
		return exceptions.ErrRedisRemoveFromSortedSet(err)
	}
	return nil
}

// RemoveFromSortedSetByScore drops every member scored at or below maxScore.
func (r *redisRepository) RemoveFromSortedSetByScore(ctx context.Context, key string, maxScore float64) error {
	err := r.client.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatFloat(maxScore, 'f', -1, 64)).Err()
	if err != nil {
		return exceptions.ErrRedisRemoveFromSortedSet(err)
	}
	return nil
}

// GetMany returns one value per key, "" for keys that do not exist.
func (r *redisRepository) GetMany(ctx context.Context, keys ...string) ([]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	results, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}
	values := make([]string, len(results))
	for i, result := range results {
		if value, ok := result.(string); ok {
			values[i] = value
		}
	}
	return values, nil
}

func (r *redisRepository) Expire(ctx context.Context, key string, exp time.Duration) error {
	err := r.client.Expire(ctx, key, exp).Err()
	if err != nil {
		return exceptions.ErrRedisExpire(err)
	}
	return nil
}

// DeleteIfEquals compares and deletes in one script run, so no other client
// can take the key between the check and the delete.
func (r *redisRepository) DeleteIfEquals(ctx context.Context, key, value string) (contracts.DeleteResult, error) {
	result, err := deleteIfEqualsScript.Run(ctx, r.client, []string{key}, value).Int()
	if err != nil {
		return contracts.DeleteResultMissing, exceptions.ErrRedisDelete(err)
	}
	return contracts.DeleteResult(result), nil
}
