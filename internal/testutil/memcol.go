// Package testutil provides in-memory repository fakes so service and
// transport tests run without a database.
package testutil

import (
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/akmalhzn/portfolio-api/pkg/apperr"
)

// memCol is a tiny in-memory stand-in for a Mongo collection. The accessor
// funcs let one implementation serve every entity type.
type memCol[T any] struct {
	mu    sync.Mutex
	items []T
	id    func(*T) *primitive.ObjectID
	times func(*T) (createdAt, updatedAt *time.Time)
	label string
}

func (c *memCol[T]) create(v *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	*c.id(v) = primitive.NewObjectID()
	now := time.Now().UTC()
	created, updated := c.times(v)
	*created, *updated = now, now
	c.items = append(c.items, *v)
	return nil
}

func (c *memCol[T]) get(id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound(c.label + " not found")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if *c.id(&c.items[i]) == oid {
			out := c.items[i]
			return &out, nil
		}
	}
	return nil, apperr.NotFound(c.label + " not found")
}

func (c *memCol[T]) update(id string, v *T) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound(c.label + " not found")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if *c.id(&c.items[i]) == oid {
			*c.id(v) = oid
			created, updated := c.times(v)
			existingCreated, _ := c.times(&c.items[i])
			*created = *existingCreated
			*updated = time.Now().UTC()
			c.items[i] = *v
			return nil
		}
	}
	return apperr.NotFound(c.label + " not found")
}

func (c *memCol[T]) delete(id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound(c.label + " not found")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if *c.id(&c.items[i]) == oid {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound(c.label + " not found")
}

func (c *memCol[T]) count() (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int64(len(c.items)), nil
}

// list copies matching items, sorts them with less (descending comparators
// are expressed by the caller) and applies the limit.
func (c *memCol[T]) list(match func(T) bool, less func(a, b T) bool, limit int64) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		if match == nil || match(it) {
			out = append(out, it)
		}
	}
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out
}
