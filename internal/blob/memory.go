package blob

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/common"
)

// MemoryStore keeps objects in process memory. It backs local development
// and tests.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]map[string]memObject
	now     func() time.Time
}

type memObject struct {
	data        []byte
	contentType string
	modified    time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		buckets: map[string]map[string]memObject{},
		now:     time.Now,
	}
}

// SetClock replaces the clock used for LastModified and signed expiries.
func (m *MemoryStore) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *MemoryStore) Upload(_ context.Context, bucket, key string, data []byte, contentType string, overwrite bool) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b := m.buckets[bucket]
	if b == nil {
		b = map[string]memObject{}
		m.buckets[bucket] = b
	}
	if _, exists := b[key]; exists && !overwrite {
		return "", &common.GatewayError{Op: "upload", Target: bucket, Message: "object already exists: " + key, Err: common.ErrorAlreadyExists}
	}
	b[key] = memObject{data: slices.Clone(data), contentType: contentType, modified: m.now()}
	return key, nil
}

func (m *MemoryStore) Remove(_ context.Context, bucket string, keys []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.buckets[bucket], k)
	}
}

func (m *MemoryStore) URLFor(_ context.Context, bucket, key string, opts URLOptions) (string, error) {
	u := publicURL("memory:/", bucket, key)
	if opts.Signed {
		m.mu.Lock()
		exp := m.now().Add(opts.ttl()).Unix()
		m.mu.Unlock()
		u = fmt.Sprintf("%s?expires=%d", u, exp)
	}
	return u, nil
}

func (m *MemoryStore) List(_ context.Context, bucket string) ([]Object, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Object, 0, len(m.buckets[bucket]))
	for k, o := range m.buckets[bucket] {
		out = append(out, Object{Key: k, Size: int64(len(o.data)), LastModified: o.modified})
	}
	slices.SortFunc(out, func(a, b Object) int { return strings.Compare(a.Key, b.Key) })
	return out, nil
}

// Get returns a stored object's bytes.
func (m *MemoryStore) Get(bucket, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.buckets[bucket][key]
	return o.data, ok
}

// Keys returns the sorted keys of bucket.
func (m *MemoryStore) Keys(bucket string) []string {
	objs, _ := m.List(context.Background(), bucket)
	keys := make([]string, len(objs))
	for i, o := range objs {
		keys[i] = o.Key
	}
	return keys
}
