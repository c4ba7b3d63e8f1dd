package cache

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/centrominero/gil/internal/metrics"
	"github.com/centrominero/gil/internal/repository"
)

type EquipmentLister interface {
	ListAvailable(ctx context.Context) ([]*repository.Equipment, error)
}

// EquipmentCache keeps the currently available equipment in memory so the
// availability listing does not hit the store on every request. Loan and
// maintenance transitions push updates through Set.
type EquipmentCache struct {
	mu    sync.RWMutex
	cache map[int64]*repository.Equipment
	repo  EquipmentLister
	log   *zap.Logger
}

func NewEquipmentCache(repo EquipmentLister, log *zap.Logger) *EquipmentCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &EquipmentCache{
		cache: make(map[int64]*repository.Equipment),
		repo:  repo,
		log:   log,
	}
}

func (c *EquipmentCache) LoadInitialData(ctx context.Context) error {
	items, err := c.repo.ListAvailable(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, eq := range items {
		eqCopy := *eq
		c.cache[eq.ID] = &eqCopy
	}
	metrics.EquipmentCacheItems.Set(float64(len(c.cache)))
	c.log.Info("equipment availability cache loaded", zap.Int("items", len(c.cache)))
	return nil
}

func (c *EquipmentCache) Get(id int64) (*repository.Equipment, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	eq, found := c.cache[id]
	if !found {
		return nil, false
	}
	eqCopy := *eq
	return &eqCopy, true
}

// Set stores the equipment when it is available and evicts it otherwise.
func (c *EquipmentCache) Set(eq *repository.Equipment) {
	if eq.State != repository.EquipmentAvailable {
		c.Delete(eq.ID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	eqCopy := *eq
	c.cache[eq.ID] = &eqCopy
	metrics.EquipmentCacheItems.Set(float64(len(c.cache)))
}

func (c *EquipmentCache) Delete(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[id]; found {
		delete(c.cache, id)
		metrics.EquipmentCacheItems.Set(float64(len(c.cache)))
	}
}

// List returns the cached available equipment ordered by internal code.
func (c *EquipmentCache) List() []*repository.Equipment {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]*repository.Equipment, 0, len(c.cache))
	for _, eq := range c.cache {
		eqCopy := *eq
		items = append(items, &eqCopy)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].InternalCode < items[j].InternalCode
	})
	return items
}
