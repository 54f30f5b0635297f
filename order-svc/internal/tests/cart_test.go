package tests

import (
	"math/rand"
	"testing"

	"luciafood-express/order-svc/internal/domain"
	"luciafood-express/order-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItem(id, restaurantID int, listPrice float64) domain.MenuItem {
	return domain.MenuItem{ID: id, RestaurantID: restaurantID, Name: "Item", ListPrice: listPrice}
}

func TestCartStore_AddItemMergesLines(t *testing.T) {
	carts := service.NewCartStore()

	require.NoError(t, carts.AddItem("s1", menuItem(1, 10, 50), 1))
	require.NoError(t, carts.AddItem("s1", menuItem(1, 10, 50), 2))

	snapshot := carts.Snapshot("s1")
	assert.Len(t, snapshot.Lines, 1)
	assert.Equal(t, 3, snapshot.Lines[0].Quantity)
	assert.Equal(t, 3, carts.Quantity("s1", 1))
}

func TestCartStore_RestaurantLimit(t *testing.T) {
	carts := service.NewCartStore()

	require.NoError(t, carts.AddItem("s1", menuItem(1, 10, 50), 1))
	require.NoError(t, carts.AddItem("s1", menuItem(2, 20, 60), 1))
	require.NoError(t, carts.AddItem("s1", menuItem(3, 30, 70), 1))

	err := carts.AddItem("s1", menuItem(4, 40, 80), 1)
	assert.ErrorIs(t, err, service.ErrRestaurantLimit)

	// Rejected add must leave the cart untouched.
	assert.Equal(t, 3, carts.RestaurantCount("s1"))
	assert.Equal(t, 3, carts.ItemCount("s1"))
	assert.Equal(t, 0, carts.Quantity("s1", 4))

	// A fourth item from an already present restaurant is still fine.
	require.NoError(t, carts.AddItem("s1", menuItem(5, 10, 90), 1))
	assert.Equal(t, 3, carts.RestaurantCount("s1"))
}

func TestCartStore_RemoveItemDecrementsToDeletion(t *testing.T) {
	carts := service.NewCartStore()
	require.NoError(t, carts.AddItem("s1", menuItem(1, 10, 50), 3))

	carts.RemoveItem("s1", 1)
	assert.Equal(t, 2, carts.Quantity("s1", 1))
	carts.RemoveItem("s1", 1)
	carts.RemoveItem("s1", 1)
	assert.Equal(t, 0, carts.Quantity("s1", 1))
	assert.Empty(t, carts.Snapshot("s1").Lines)

	// One more remove on the now absent id is a no-op, never negative.
	carts.RemoveItem("s1", 1)
	assert.Equal(t, 0, carts.Quantity("s1", 1))
}

func TestCartStore_RemoveUnknownItemIsNoop(t *testing.T) {
	carts := service.NewCartStore()
	require.NoError(t, carts.AddItem("s1", menuItem(1, 10, 50), 1))

	carts.RemoveItem("s1", 999)
	assert.Equal(t, 1, carts.ItemCount("s1"))
}

func TestCartStore_UpdateQuantity(t *testing.T) {
	carts := service.NewCartStore()
	require.NoError(t, carts.AddItem("s1", menuItem(1, 10, 50), 1))

	carts.UpdateQuantity("s1", 1, 5)
	assert.Equal(t, 5, carts.Quantity("s1", 1))

	carts.UpdateQuantity("s1", 1, 0)
	assert.Empty(t, carts.Snapshot("s1").Lines)

	carts.UpdateQuantity("s1", 1, -3)
	assert.Empty(t, carts.Snapshot("s1").Lines)
}

func TestCartStore_ClearIsIdempotent(t *testing.T) {
	carts := service.NewCartStore()
	require.NoError(t, carts.AddItem("s1", menuItem(1, 10, 50), 2))

	carts.Clear("s1")
	assert.Zero(t, carts.ItemCount("s1"))
	carts.Clear("s1")
	assert.Zero(t, carts.ItemCount("s1"))
	assert.Empty(t, carts.Snapshot("s1").Lines)
}

func TestCartStore_SessionsAreIsolated(t *testing.T) {
	carts := service.NewCartStore()
	require.NoError(t, carts.AddItem("s1", menuItem(1, 10, 50), 2))
	require.NoError(t, carts.AddItem("s2", menuItem(2, 20, 60), 1))

	assert.Equal(t, 2, carts.ItemCount("s1"))
	assert.Equal(t, 1, carts.ItemCount("s2"))

	carts.Clear("s1")
	assert.Equal(t, 1, carts.ItemCount("s2"))
}

func TestCartStore_SnapshotGroupsByRestaurant(t *testing.T) {
	carts := service.NewCartStore()
	require.NoError(t, carts.AddItem("s1", menuItem(1, 10, 50), 2))
	require.NoError(t, carts.AddItem("s1", menuItem(2, 20, 30), 1))
	require.NoError(t, carts.AddItem("s1", menuItem(3, 10, 10), 1))

	snapshot := carts.Snapshot("s1")
	require.Len(t, snapshot.Groups, 2)
	assert.Equal(t, []int{10, 20}, carts.RestaurantIDs("s1"))

	assert.Equal(t, 10, snapshot.Groups[0].RestaurantID)
	assert.Len(t, snapshot.Groups[0].Lines, 2)
	assert.InDelta(t, 110, snapshot.Groups[0].Subtotal, 1e-9)
	assert.InDelta(t, 30, snapshot.Groups[1].Subtotal, 1e-9)
	assert.InDelta(t, 140, snapshot.Subtotal, 1e-9)
	assert.Equal(t, 4, snapshot.ItemCount)
	assert.Equal(t, 2, snapshot.RestaurantCount)
}

func TestCartStore_NotifiesSubscribers(t *testing.T) {
	carts := service.NewCartStore()

	var notified []domain.CartSnapshot
	carts.Subscribe(func(sessionID string, snapshot domain.CartSnapshot) {
		assert.Equal(t, "s1", sessionID)
		notified = append(notified, snapshot)
	})

	require.NoError(t, carts.AddItem("s1", menuItem(1, 10, 50), 1))
	carts.UpdateQuantity("s1", 1, 4)
	carts.Clear("s1")

	require.Len(t, notified, 3)
	assert.Equal(t, 1, notified[0].ItemCount)
	assert.Equal(t, 4, notified[1].ItemCount)
	assert.Zero(t, notified[2].ItemCount)
}

// Randomized add/remove/update sequences must keep the structural invariants:
// unique item ids, quantities >= 1, at most three restaurants, and a subtotal
// that always equals the sum of effective price times quantity.
func TestCartStore_RandomizedInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	carts := service.NewCartStore()

	preferred := 35.0
	items := []domain.MenuItem{
		menuItem(1, 10, 50),
		menuItem(2, 10, 75.5),
		{ID: 3, RestaurantID: 20, Name: "Item", ListPrice: 40, PreferredPrice: &preferred},
		menuItem(4, 30, 12.25),
		menuItem(5, 40, 99),
	}

	for i := 0; i < 500; i++ {
		item := items[rng.Intn(len(items))]
		switch rng.Intn(4) {
		case 0:
			_ = carts.AddItem("s1", item, rng.Intn(3)+1)
		case 1:
			carts.RemoveItem("s1", item.ID)
		case 2:
			carts.UpdateQuantity("s1", item.ID, rng.Intn(5))
		case 3:
			_ = carts.Quantity("s1", item.ID)
		}

		snapshot := carts.Snapshot("s1")
		seen := map[int]bool{}
		var expected float64
		for _, line := range snapshot.Lines {
			require.False(t, seen[line.Item.ID], "duplicate line for item %d", line.Item.ID)
			seen[line.Item.ID] = true
			require.GreaterOrEqual(t, line.Quantity, 1)
			expected += service.EffectiveUnitPrice(line.Item) * float64(line.Quantity)
		}
		require.LessOrEqual(t, snapshot.RestaurantCount, service.MaxRestaurantsPerCart)
		require.InDelta(t, expected, snapshot.Subtotal, 1e-9)
		require.GreaterOrEqual(t, snapshot.Subtotal, 0.0)
	}
}
