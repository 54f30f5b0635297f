package storage

import (
	"database/sql"
	"fmt"

	"luciafood-express/order-svc/internal/domain"
	"luciafood-express/order-svc/internal/service"
)

// PostgresRepository reads the shared catalog tables and persists orders.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

var (
	_ service.MenuReader      = (*PostgresRepository)(nil)
	_ service.OrderRepository = (*PostgresRepository)(nil)
	_ service.ProfileReader   = (*PostgresRepository)(nil)
)

func (r *PostgresRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	var preferred sql.NullFloat64
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, name, COALESCE(category, ''), list_price, preferred_price
		FROM menu_items
		WHERE id = $1`, id).
		Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Category, &item.ListPrice, &preferred)
	if err != nil {
		return nil, err
	}
	if preferred.Valid {
		item.PreferredPrice = &preferred.Float64
	}
	return &item, nil
}

func (r *PostgresRepository) GetRestaurantName(id int) (string, error) {
	var name string
	err := r.DB.QueryRow("SELECT name FROM restaurants WHERE id = $1", id).Scan(&name)
	return name, err
}

func (r *PostgresRepository) SaveOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO orders (restaurant_id, customer_name, customer_phone, customer_address,
			zone, subtotal, delivery_fee, total, payment_method, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`, order.RestaurantID, order.CustomerName, order.CustomerPhone, order.CustomerAddress,
		order.Zone, service.Round2(order.Subtotal), service.Round2(order.DeliveryFee),
		service.Round2(order.Total), order.PaymentMethod, order.Status).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, line := range order.Lines {
		_, err = tx.Exec(`
			INSERT INTO order_items (order_id, item_id, name, quantity, unit_price, line_total)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, order.ID, line.ItemID, line.Name, line.Quantity,
			service.Round2(line.UnitPrice), service.Round2(line.LineTotal))
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(id int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, customer_name, customer_phone, customer_address,
			COALESCE(zone, ''), subtotal, delivery_fee, total, payment_method, status, created_at
		FROM orders
		WHERE id = $1`, id).
		Scan(&order.ID, &order.RestaurantID, &order.CustomerName, &order.CustomerPhone,
			&order.CustomerAddress, &order.Zone, &order.Subtotal, &order.DeliveryFee,
			&order.Total, &order.PaymentMethod, &order.Status, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	if name, err := r.GetRestaurantName(order.RestaurantID); err == nil {
		order.RestaurantName = name
	}

	rows, err := r.DB.Query(`
		SELECT item_id, name, quantity, unit_price, line_total
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.ItemID, &line.Name, &line.Quantity, &line.UnitPrice, &line.LineTotal); err != nil {
			continue
		}
		order.Lines = append(order.Lines, line)
	}

	return &order, nil
}

func (r *PostgresRepository) GetProfile(phone string) (*domain.CustomerProfile, error) {
	var profile domain.CustomerProfile
	err := r.DB.QueryRow(`
		SELECT phone, name, COALESCE(address, ''), COALESCE(zone, '')
		FROM customers
		WHERE phone = $1`, phone).
		Scan(&profile.Phone, &profile.Name, &profile.Address, &profile.Zone)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
