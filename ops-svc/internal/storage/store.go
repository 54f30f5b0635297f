package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"luciafood-express/ops-svc/internal/domain"
)

type Store struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

// RecordOrder folds one placed order into the Postgres counters and the
// Redis leaderboards. Counter writes are authoritative; the zsets are a
// rebuildable cache.
func (s *Store) RecordOrder(event domain.OrderEvent) error {
	_, err := s.db.Exec(`
		INSERT INTO restaurant_stats (restaurant_id, order_count, item_count, revenue, last_order_at)
		VALUES ($1, 1, $2, $3, $4)
		ON CONFLICT (restaurant_id) DO UPDATE SET
			order_count = restaurant_stats.order_count + 1,
			item_count = restaurant_stats.item_count + EXCLUDED.item_count,
			revenue = restaurant_stats.revenue + EXCLUDED.revenue,
			last_order_at = EXCLUDED.last_order_at
	`, event.RestaurantID, event.ItemCount, event.Total, event.Timestamp)
	if err != nil {
		return err
	}

	day := event.Timestamp.Format("2006-01-02")

	dailyKey := fmt.Sprintf("ops:daily:orders:%s", day)
	s.rdb.ZIncrBy(s.ctx, dailyKey, 1, strconv.Itoa(event.RestaurantID))
	s.rdb.Expire(s.ctx, dailyKey, 7*24*time.Hour)

	zoneKey := fmt.Sprintf("ops:daily:zones:%s", day)
	s.rdb.ZIncrBy(s.ctx, zoneKey, 1, event.Zone)
	s.rdb.Expire(s.ctx, zoneKey, 7*24*time.Hour)

	s.rdb.ZIncrBy(s.ctx, "ops:alltime:revenue", event.Total, strconv.Itoa(event.RestaurantID))
	return nil
}

func (s *Store) TopRestaurantsToday(limit int) ([]domain.RestaurantActivity, error) {
	day := time.Now().Format("2006-01-02")
	key := fmt.Sprintf("ops:daily:orders:%s", day)
	return s.topFromZSet(key, limit)
}

func (s *Store) TopRestaurantsByRevenue(limit int) ([]domain.RestaurantActivity, error) {
	return s.topFromZSet("ops:alltime:revenue", limit)
}

func (s *Store) topFromZSet(key string, limit int) ([]domain.RestaurantActivity, error) {
	results, err := s.rdb.ZRevRangeWithScores(s.ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return []domain.RestaurantActivity{}, nil
	}

	top := []domain.RestaurantActivity{}
	for _, result := range results {
		restaurantID, _ := strconv.Atoi(result.Member.(string))
		top = append(top, domain.RestaurantActivity{
			RestaurantID: restaurantID,
			Name:         s.restaurantName(restaurantID),
			Score:        result.Score,
		})
	}
	return top, nil
}

func (s *Store) ZoneActivityToday() ([]domain.ZoneActivity, error) {
	day := time.Now().Format("2006-01-02")
	key := fmt.Sprintf("ops:daily:zones:%s", day)

	results, err := s.rdb.ZRevRangeWithScores(s.ctx, key, 0, -1).Result()
	if err != nil {
		return []domain.ZoneActivity{}, nil
	}

	zones := []domain.ZoneActivity{}
	for _, result := range results {
		zones = append(zones, domain.ZoneActivity{
			Zone:   result.Member.(string),
			Orders: result.Score,
		})
	}
	return zones, nil
}

func (s *Store) RestaurantSummary(restaurantID int) (*domain.RestaurantSummary, error) {
	summary := domain.RestaurantSummary{RestaurantID: restaurantID}
	err := s.db.QueryRow(`
		SELECT COALESCE(r.name, ''), s.order_count, s.item_count, s.revenue
		FROM restaurant_stats s
		LEFT JOIN restaurants r ON r.id = s.restaurant_id
		WHERE s.restaurant_id = $1
	`, restaurantID).Scan(&summary.Name, &summary.OrderCount, &summary.ItemCount, &summary.Revenue)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *Store) restaurantName(restaurantID int) string {
	var name string
	if err := s.db.QueryRow("SELECT name FROM restaurants WHERE id = $1", restaurantID).Scan(&name); err != nil {
		return ""
	}
	return name
}
