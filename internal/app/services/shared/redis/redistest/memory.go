// Package redistest provides an in-memory RedisRepository for tests.
package redistest

import (
	"context"
	"dashboard-service/internal/app/contracts"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// Memory keeps strings, sets and sorted sets in maps. Expirations are
// recorded but never applied.
type Memory struct {
	mu      sync.Mutex
	strings map[string]string
	sets    map[string]map[string]bool
	zsets   map[string]map[string]float64
	ttls    map[string]time.Duration
	err     error
	onSet   func(key string)
}

var _ contracts.RedisRepository = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		strings: map[string]string{},
		sets:    map[string]map[string]bool{},
		zsets:   map[string]map[string]float64{},
		ttls:    map[string]time.Duration{},
	}
}

// FailWith makes every following call return err.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// OnSet registers fn to run after every Set, outside the lock, so fn may call
// back into m.
func (m *Memory) OnSet(fn func(key string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onSet = fn
}

func (m *Memory) Value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.strings[key]
	return value, ok
}

func (m *Memory) SetMembers(key string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sortedKeys(m.sets[key])
}

func (m *Memory) TTL(key string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ttls[key]
}

func (m *Memory) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, key := range keys {
		delete(m.strings, key)
		delete(m.sets, key)
		delete(m.zsets, key)
		delete(m.ttls, key)
	}
	return nil
}

func (m *Memory) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	m.mu.Lock()
	if m.err != nil {
		m.mu.Unlock()
		return m.err
	}
	encoded, err := encode(value)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.strings[key] = encoded
	m.ttls[key] = exp
	hook := m.onSet
	m.mu.Unlock()

	if hook != nil {
		hook(key)
	}
	return nil
}

func (m *Memory) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	return m.strings[key], nil
}

func (m *Memory) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.strings[key]; ok {
		return false, nil
	}
	encoded, err := encode(value)
	if err != nil {
		return false, err
	}
	m.strings[key] = encoded
	m.ttls[key] = exp
	return true, nil
}

func (m *Memory) AddToSet(ctx context.Context, key string, values ...interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.sets[key] == nil {
		m.sets[key] = map[string]bool{}
	}
	for _, value := range values {
		encoded, err := encode(value)
		if err != nil {
			return err
		}
		m.sets[key][encoded] = true
	}
	return nil
}

func (m *Memory) RemoveFromSet(ctx context.Context, key string, values ...interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, value := range values {
		encoded, err := encode(value)
		if err != nil {
			return err
		}
		delete(m.sets[key], encoded)
	}
	return nil
}

func (m *Memory) GetSetMembers(ctx context.Context, key string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return sortedKeys(m.sets[key]), nil
}

func (m *Memory) AddToSortedSet(ctx context.Context, key string, score float64, member string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.zsets[key] == nil {
		m.zsets[key] = map[string]float64{}
	}
	m.zsets[key][member] = score
	return nil
}

func (m *Memory) GetSortedSetMembers(ctx context.Context, key string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	zset := m.zsets[key]
	members := make([]string, 0, len(zset))
	for member := range zset {
		members = append(members, member)
	}
	sort.Slice(members, func(i, j int) bool {
		if zset[members[i]] == zset[members[j]] {
			return members[i] < members[j]
		}
		return zset[members[i]] < zset[members[j]]
	})
	return members, nil
}

func (m *Memory) RemoveFromSortedSet(ctx context.Context, key string, members ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, member := range members {
		delete(m.zsets[key], member)
	}
	return nil
}

func (m *Memory) RemoveFromSortedSetByScore(ctx context.Context, key string, maxScore float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for member, score := range m.zsets[key] {
		if score <= maxScore {
			delete(m.zsets[key], member)
		}
	}
	return nil
}

func (m *Memory) GetMany(ctx context.Context, keys ...string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	values := make([]string, len(keys))
	for i, key := range keys {
		values[i] = m.strings[key]
	}
	return values, nil
}

func (m *Memory) Expire(ctx context.Context, key string, exp time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.ttls[key] = exp
	return nil
}

func (m *Memory) DeleteIfEquals(ctx context.Context, key, value string) (contracts.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return contracts.DeleteResultMissing, m.err
	}
	current, ok := m.strings[key]
	if !ok {
		return contracts.DeleteResultMissing, nil
	}
	if current != value {
		return contracts.DeleteResultMismatch, nil
	}
	delete(m.strings, key)
	delete(m.ttls, key)
	return contracts.DeleteResultDeleted, nil
}

func encode(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
