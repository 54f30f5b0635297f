package tests

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luciafood-express/catalog-svc/internal/domain"
	"luciafood-express/catalog-svc/internal/storage"
)

func TestPostgresRepository_CreateRestaurant(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	dbMock.ExpectQuery("INSERT INTO restaurants").
		WithArgs("El Fogón", "Santa Lucía", "Calle Real", "", "50488112233").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(4, created))

	repo := storage.NewPostgresRepository(db)
	rest := domain.Restaurant{Name: "El Fogón", Town: "Santa Lucía", Address: "Calle Real", Phone: "50488112233"}
	require.NoError(t, repo.CreateRestaurant(&rest))

	assert.Equal(t, 4, rest.ID)
	assert.Equal(t, created, rest.CreatedAt)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestPostgresRepository_GetMenuItem(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	columns := []string{"id", "restaurant_id", "name", "category", "description",
		"list_price", "preferred_price", "image_url", "created_at"}

	t.Run("with preferred price", func(t *testing.T) {
		dbMock.ExpectQuery("SELECT (.+) FROM menu_items").
			WithArgs(2, 5).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(2, 5, "Pizza Suprema", "Pizzas", "", 100.0, 85.0, "", time.Now()))

		repo := storage.NewPostgresRepository(db)
		item, err := repo.GetMenuItem(5, 2)
		require.NoError(t, err)
		require.NotNil(t, item.PreferredPrice)
		assert.Equal(t, 85.0, *item.PreferredPrice)
	})

	t.Run("null preferred price", func(t *testing.T) {
		dbMock.ExpectQuery("SELECT (.+) FROM menu_items").
			WithArgs(3, 5).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(3, 5, "Baleada", "Típicos", "", 30.0, nil, "", time.Now()))

		repo := storage.NewPostgresRepository(db)
		item, err := repo.GetMenuItem(5, 3)
		require.NoError(t, err)
		assert.Nil(t, item.PreferredPrice)
		assert.Equal(t, 30.0, item.ListPrice)
	})

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestPostgresRepository_DeleteMenuItem(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)

	dbMock.ExpectExec("DELETE FROM menu_items").
		WithArgs(2, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	deleted, err := repo.DeleteMenuItem(5, 2)
	require.NoError(t, err)
	assert.True(t, deleted)

	dbMock.ExpectExec("DELETE FROM menu_items").
		WithArgs(99, 5).
		WillReturnResult(sqlmock.NewResult(0, 0))
	deleted, err = repo.DeleteMenuItem(5, 99)
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestPostgresRepository_ListRestaurants(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	columns := []string{"id", "name", "town", "address", "description", "phone", "image_url", "created_at"}
	dbMock.ExpectQuery("SELECT (.+) FROM restaurants").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, "El Fogón", "Santa Lucía", "", "", "", "", time.Now()).
			AddRow(2, "La Terraza", "Valle de Ángeles", "", "", "", "", time.Now()))

	repo := storage.NewPostgresRepository(db)
	restaurants, err := repo.ListRestaurants()
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, "El Fogón", restaurants[0].Name)

	assert.NoError(t, dbMock.ExpectationsWereMet())
}
