package storage

import (
	"database/sql"

	"luciafood-express/catalog-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(
		"INSERT INTO restaurants (name, town, address, description, phone) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at",
		rest.Name, rest.Town, rest.Address, rest.Description, rest.Phone,
	).Scan(&rest.ID, &rest.CreatedAt)
}

func (r *PostgresRepository) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
        SELECT id, name, COALESCE(town, ''), COALESCE(address, ''), COALESCE(description, ''),
            COALESCE(phone, ''), COALESCE(image_url, ''), created_at
        FROM restaurants
        ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Town, &rest.Address, &rest.Description,
			&rest.Phone, &rest.ImageURL, &rest.CreatedAt); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}

	return restaurants, nil
}

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(town, ''), COALESCE(address, ''), COALESCE(description, ''),
			COALESCE(phone, ''), COALESCE(image_url, ''), created_at
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.Town, &rest.Address, &rest.Description,
			&rest.Phone, &rest.ImageURL, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) UpdateRestaurant(id int, rest *domain.Restaurant) error {
	return r.DB.QueryRow(`
		UPDATE restaurants SET name=$1, town=$2, address=$3, description=$4, phone=$5
		WHERE id=$6
		RETURNING id, name, COALESCE(town, ''), COALESCE(address, ''), COALESCE(description, ''),
			COALESCE(phone, ''), COALESCE(image_url, ''), created_at`,
		rest.Name, rest.Town, rest.Address, rest.Description, rest.Phone, id).
		Scan(&rest.ID, &rest.Name, &rest.Town, &rest.Address, &rest.Description,
			&rest.Phone, &rest.ImageURL, &rest.CreatedAt)
}

func (r *PostgresRepository) DeleteRestaurant(id int) (bool, error) {
	result, err := r.DB.Exec("DELETE FROM restaurants WHERE id=$1", id)
	if err != nil {
		return false, err
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (r *PostgresRepository) SetRestaurantImage(id int, imageURL string) error {
	_, err := r.DB.Exec("UPDATE restaurants SET image_url=$1 WHERE id=$2", imageURL, id)
	return err
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (restaurant_id, name, category, description, list_price, preferred_price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		item.RestaurantID, item.Name, item.Category, item.Description,
		item.ListPrice, item.PreferredPrice).
		Scan(&item.ID, &item.CreatedAt)
}

func (r *PostgresRepository) ListMenuItems(restaurantID int) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, COALESCE(category, ''), COALESCE(description, ''),
			list_price, preferred_price, COALESCE(image_url, ''), created_at
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY category, name`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			continue
		}
		items = append(items, *item)
	}

	return items, nil
}

func (r *PostgresRepository) GetMenuItem(restaurantID, itemID int) (*domain.MenuItem, error) {
	row := r.DB.QueryRow(`
		SELECT id, restaurant_id, name, COALESCE(category, ''), COALESCE(description, ''),
			list_price, preferred_price, COALESCE(image_url, ''), created_at
		FROM menu_items
		WHERE id = $1 AND restaurant_id = $2`, itemID, restaurantID)
	return scanMenuItem(row)
}

func (r *PostgresRepository) UpdateMenuItem(restaurantID, itemID int, item *domain.MenuItem) error {
	_, err := r.DB.Exec(`
		UPDATE menu_items
		SET name=$1, category=$2, description=$3, list_price=$4, preferred_price=$5
		WHERE id=$6 AND restaurant_id=$7`,
		item.Name, item.Category, item.Description, item.ListPrice, item.PreferredPrice,
		itemID, restaurantID)
	return err
}

func (r *PostgresRepository) DeleteMenuItem(restaurantID, itemID int) (bool, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id=$1 AND restaurant_id=$2", itemID, restaurantID)
	if err != nil {
		return false, err
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (r *PostgresRepository) SetMenuItemImage(restaurantID, itemID int, imageURL string) error {
	_, err := r.DB.Exec("UPDATE menu_items SET image_url=$1 WHERE id=$2 AND restaurant_id=$3",
		imageURL, itemID, restaurantID)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMenuItem(row rowScanner) (*domain.MenuItem, error) {
	var item domain.MenuItem
	var preferred sql.NullFloat64
	err := row.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Category, &item.Description,
		&item.ListPrice, &preferred, &item.ImageURL, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	if preferred.Valid {
		item.PreferredPrice = &preferred.Float64
	}
	return &item, nil
}
