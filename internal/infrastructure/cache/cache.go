// Package cache 提供进程内 TTL 缓存实现
package cache

import (
	"container/list"
	"sync"
	"time"

	"pokebattle-ai-api/pkg/metrics"
)

// Clock 可注入的时钟，测试时替换
type Clock func() time.Time

// entry 缓存条目，记录写入时间
type entry struct {
	key       string
	payload   []byte
	fetchedAt time.Time
}

// Cache 容量受限的进程内缓存
// 过期条目不会主动清理，读取时按未命中处理并在下次写入时覆盖；
// 超出容量按 LRU 淘汰
type Cache struct {
	mu       sync.Mutex
	items    map[string]*list.Element
	order    *list.List // 队首为最近使用
	ttl      time.Duration
	capacity int
	now      Clock
}

// Option 缓存可选配置
type Option func(*Cache)

// WithClock 注入时钟
func WithClock(clock Clock) Option {
	return func(c *Cache) {
		c.now = clock
	}
}

// New 创建缓存，ttl 为条目有效期，capacity 为容量上限
func New(ttl time.Duration, capacity int, opts ...Option) *Cache {
	if capacity <= 0 {
		capacity = 512
	}
	c := &Cache{
		items:    make(map[string]*list.Element),
		order:    list.New(),
		ttl:      ttl,
		capacity: capacity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get 读取缓存值，过期条目视为未命中
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		metrics.CacheMissesTotal.Inc()
		return nil, false
	}

	ent := elem.Value.(*entry)
	if c.now().Sub(ent.fetchedAt) >= c.ttl {
		// 逻辑过期，留待下次写入覆盖
		metrics.CacheMissesTotal.Inc()
		return nil, false
	}

	c.order.MoveToFront(elem)
	metrics.CacheHitsTotal.Inc()
	return ent.payload, true
}

// Put 写入缓存值，覆盖同键旧条目并重置时间戳
func (c *Cache) Put(key string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		ent := elem.Value.(*entry)
		ent.payload = payload
		ent.fetchedAt = c.now()
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.capacity {
		c.evictOldest()
	}

	elem := c.order.PushFront(&entry{
		key:       key,
		payload:   payload,
		fetchedAt: c.now(),
	})
	c.items[key] = elem
}

// Clear 清空缓存
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*list.Element)
	c.order.Init()
}

// Size 返回当前条目数（含逻辑过期条目）
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// evictOldest 淘汰最久未使用条目，调用方需持锁
func (c *Cache) evictOldest() {
	elem := c.order.Back()
	if elem == nil {
		return
	}
	ent := elem.Value.(*entry)
	c.order.Remove(elem)
	delete(c.items, ent.key)
	metrics.CacheEvictionsTotal.Inc()
}
