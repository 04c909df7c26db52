package collection

import (
	"fmt"
	"sync"

	"obsengine/models"
)

// SeriesCache is a fixed-capacity ring holding one series' most recent
// points in timestamp order. Writers for different series never share a
// cache, so ingestion across series does not contend on a lock.
type SeriesCache struct {
	lock     *sync.RWMutex
	points   []*models.MetricPoint
	capacity int
	cursor   int
	num      int
}

func NewSeriesCache(capacity int) *SeriesCache {
	if capacity <= 0 {
		panic("invalid SeriesCache capacity")
	}
	return &SeriesCache{
		lock:     &sync.RWMutex{},
		points:   make([]*models.MetricPoint, capacity),
		capacity: capacity,
	}
}

// binarySearch returns the logical position of the first point with a
// timestamp >= t. Positions are relative to the oldest retained point.
func (c *SeriesCache) binarySearch(t int64) int {
	if c.num == 0 {
		return 0
	}
	var l, r int
	if c.points[c.cursor] == nil {
		l = 0
		r = c.cursor - 1
	} else {
		l = c.cursor
		r = c.cursor - 1 + c.capacity
	}

	for l <= r {
		m := l + (r-l)/2
		if t <= c.points[m%c.capacity].Timestamp {
			r = m - 1
		} else {
			l = m + 1
		}
	}
	return l
}

func (c *SeriesCache) Put(p *models.MetricPoint) {
	c.lock.Lock()
	defer c.lock.Unlock()

	defer func() {
		c.num++
	}()

	if c.num == 0 || p.Timestamp >= c.points[((c.cursor-1)+c.capacity)%c.capacity].Timestamp {
		c.points[c.cursor] = p
		c.cursor = (c.cursor + 1) % c.capacity
		return
	}

	pos := c.binarySearch(p.Timestamp)
	if pos == c.cursor && c.points[c.cursor] != nil {
		// older than everything retained; the ring has already evicted its slot
		return
	}

	end := c.cursor
	if c.points[end] != nil {
		end += c.capacity
	}
	for i := end; i > pos; i-- {
		c.points[i%c.capacity] = c.points[(i-1)%c.capacity]
	}
	c.points[pos%c.capacity] = p
	c.cursor = (c.cursor + 1) % c.capacity
}

// Query returns points with timestamps in [start, end) matching labels. The
// second return value reports whether the cache is known to cover the whole
// range; callers fall back to the durable store when it is false.
func (c *SeriesCache) Query(start, end int64, labels map[string]string) ([]*models.MetricPoint, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if c.num == 0 {
		return []*models.MetricPoint{}, false
	}

	result := []*models.MetricPoint{}
	from := c.binarySearch(start)
	to := c.binarySearch(end)
	for i := from; i < to; i++ {
		p := c.points[i%c.capacity]
		if p.HasLabels(labels) {
			result = append(result, p)
		}
	}

	if c.num < c.capacity {
		return result, c.points[0].Timestamp <= start
	}
	return result, c.points[c.cursor].Timestamp <= start
}

func (c *SeriesCache) String() string {
	c.lock.RLock()
	defer c.lock.RUnlock()

	var head, tail int
	if c.points[c.cursor] == nil {
		head = 0
		tail = c.cursor - 1
	} else {
		head = c.cursor
		tail = c.cursor + c.capacity - 1
	}

	s := make([]*models.MetricPoint, tail-head+1)
	for i := 0; i <= tail-head; i++ {
		s[i] = c.points[(i+head)%c.capacity]
	}
	return fmt.Sprint(s)
}
