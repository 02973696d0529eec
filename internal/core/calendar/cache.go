package calendar

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/aidosbay/HBP-RatesService/internal/domain"
)

// Cache явная мемоизация BuildPriceCalendar, ограниченная по ёмкости и
// безопасная для конкурентного использования. Ключ — слепок значений всех
// шести параметров, поэтому владелец кэша обязан инвалидировать его (или
// просто не переиспользовать), когда исходные цены/остатки/правила
// меняются. Вытеснение — самая старая запись по порядку добавления.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string][][]domain.DayCell
	order    []string
}

// NewCache создает кэш на capacity записей; capacity <= 0 отключает
// кэширование (каждый Get строит сетку заново).
func NewCache(capacity int) *Cache {
	return &Cache{
		capacity: capacity,
		entries:  make(map[string][][]domain.DayCell),
	}
}

// Get возвращает сетку из кэша или строит и запоминает её
func (c *Cache) Get(
	roomTypeID int64,
	rateID int64,
	monthStart time.Time,
	prices []domain.Price,
	avails []domain.Availability,
	ruleSet []domain.Rule,
) [][]domain.DayCell {
	if c == nil || c.capacity <= 0 {
		return BuildPriceCalendar(roomTypeID, rateID, monthStart, prices, avails, ruleSet)
	}

	key := fingerprint(roomTypeID, rateID, monthStart, prices, avails, ruleSet)

	c.mu.Lock()
	if grid, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return grid
	}
	c.mu.Unlock()

	// Сетку строим без блокировки: построение чистое, гонка максимум
	// приведёт к повторному вычислению того же значения
	grid := BuildPriceCalendar(roomTypeID, rateID, monthStart, prices, avails, ruleSet)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok {
		if len(c.entries) >= c.capacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.entries[key] = grid
		c.order = append(c.order, key)
	}
	return grid
}

// Len текущее число записей в кэше
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Invalidate очищает кэш целиком
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][][]domain.DayCell)
	c.order = nil
}

// fingerprint детерминированный слепок по значениям всех параметров.
// Записи хэшируются в порядке слайсов: один и тот же набор в другом
// порядке даст другой ключ, что безопасно (лишь лишнее вычисление).
func fingerprint(
	roomTypeID int64,
	rateID int64,
	monthStart time.Time,
	prices []domain.Price,
	avails []domain.Availability,
	ruleSet []domain.Rule,
) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%d|%s", roomTypeID, rateID, monthStart.Format(domain.DateFormat))
	for _, p := range prices {
		fmt.Fprintf(h, "|p:%d:%d:%s:%d:%s", p.ID, p.RateID, p.Date, p.Amount, p.Currency)
	}
	for _, a := range avails {
		fmt.Fprintf(h, "|a:%d:%d:%s:%d", a.ID, a.RoomTypeID, a.Date, a.Available)
	}
	for _, r := range ruleSet {
		fmt.Fprintf(h, "|r:%d:%s", r.ID, r.Kind)
		if r.Payload.RoomTypeID != nil {
			fmt.Fprintf(h, ":rt=%d", *r.Payload.RoomTypeID)
		}
		if r.Payload.RateID != nil {
			fmt.Fprintf(h, ":rp=%d", *r.Payload.RateID)
		}
		if r.Payload.Date != nil {
			fmt.Fprintf(h, ":d=%s", *r.Payload.Date)
		}
		fmt.Fprintf(h, ":v=%v", r.Payload.Value)
	}
	return fmt.Sprintf("%x", h.Sum64())
}
