package service

import (
	"errors"
	"sync"

	"luciafood-express/order-svc/internal/domain"
)

// MaxRestaurantsPerCart caps how many distinct restaurants a cart may hold at
// once. Checkout is stricter and requires exactly one (see checkout.go).
const MaxRestaurantsPerCart = 3

var ErrRestaurantLimit = errors.New("cart already holds items from the maximum number of restaurants")

// CartStore holds every session's in-memory cart and enforces the structural
// invariants on each mutation: one line per item id, quantities >= 1, at most
// MaxRestaurantsPerCart distinct restaurants. Carts live only as long as the
// process; they are not persisted.
type CartStore struct {
	mu          sync.Mutex
	carts       map[string][]domain.CartLine
	subscribers []func(sessionID string, snapshot domain.CartSnapshot)
}

func NewCartStore() *CartStore {
	return &CartStore{carts: map[string][]domain.CartLine{}}
}

// Subscribe registers a callback invoked after every mutation with the fresh
// snapshot of the affected cart.
func (s *CartStore) Subscribe(fn func(sessionID string, snapshot domain.CartSnapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// AddItem adds quantity units of item to the session cart, merging into an
// existing line for the same item id. Introducing a new restaurant beyond the
// cap is refused with ErrRestaurantLimit and leaves the cart untouched.
func (s *CartStore) AddItem(sessionID string, item domain.MenuItem, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}

	s.mu.Lock()
	lines := s.carts[sessionID]

	idx := -1
	restaurants := map[int]bool{}
	for i, line := range lines {
		restaurants[line.Item.RestaurantID] = true
		if line.Item.ID == item.ID {
			idx = i
		}
	}

	if !restaurants[item.RestaurantID] && len(restaurants) >= MaxRestaurantsPerCart {
		s.mu.Unlock()
		return ErrRestaurantLimit
	}

	if idx >= 0 {
		lines[idx].Quantity += quantity
	} else {
		lines = append(lines, domain.CartLine{Item: item, Quantity: quantity})
	}
	s.carts[sessionID] = lines
	s.notifyLocked(sessionID)
	s.mu.Unlock()
	return nil
}

// RemoveItem decrements the matching line by one unit, deleting the line when
// it would reach zero. An absent item id is a no-op.
func (s *CartStore) RemoveItem(sessionID string, itemID int) {
	s.mu.Lock()
	lines := s.carts[sessionID]
	for i, line := range lines {
		if line.Item.ID != itemID {
			continue
		}
		if line.Quantity > 1 {
			lines[i].Quantity--
		} else {
			lines = append(lines[:i], lines[i+1:]...)
		}
		s.carts[sessionID] = lines
		s.notifyLocked(sessionID)
		break
	}
	s.mu.Unlock()
}

// UpdateQuantity sets a line's quantity directly; zero or negative deletes the
// line. The restaurant cap is only checked when a new restaurant enters the
// cart via AddItem, never here.
func (s *CartStore) UpdateQuantity(sessionID string, itemID, quantity int) {
	s.mu.Lock()
	lines := s.carts[sessionID]
	for i, line := range lines {
		if line.Item.ID != itemID {
			continue
		}
		if quantity <= 0 {
			lines = append(lines[:i], lines[i+1:]...)
		} else {
			lines[i].Quantity = quantity
		}
		s.carts[sessionID] = lines
		s.notifyLocked(sessionID)
		break
	}
	s.mu.Unlock()
}

func (s *CartStore) Clear(sessionID string) {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.notifyLocked(sessionID)
	s.mu.Unlock()
}

// Quantity reports the quantity of one item, zero when absent.
func (s *CartStore) Quantity(sessionID string, itemID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, line := range s.carts[sessionID] {
		if line.Item.ID == itemID {
			return line.Quantity
		}
	}
	return 0
}

func (s *CartStore) ItemCount(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, line := range s.carts[sessionID] {
		count += line.Quantity
	}
	return count
}

func (s *CartStore) RestaurantCount(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.restaurantIDsLocked(sessionID))
}

func (s *CartStore) RestaurantIDs(sessionID string) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restaurantIDsLocked(sessionID)
}

// Snapshot returns a copy of the cart with lines grouped per restaurant and
// subtotals resolved through the pricing rules.
func (s *CartStore) Snapshot(sessionID string) domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(sessionID)
}

func (s *CartStore) restaurantIDsLocked(sessionID string) []int {
	var ids []int
	seen := map[int]bool{}
	for _, line := range s.carts[sessionID] {
		if !seen[line.Item.RestaurantID] {
			seen[line.Item.RestaurantID] = true
			ids = append(ids, line.Item.RestaurantID)
		}
	}
	return ids
}

func (s *CartStore) snapshotLocked(sessionID string) domain.CartSnapshot {
	src := s.carts[sessionID]
	lines := make([]domain.CartLine, len(src))
	copy(lines, src)

	snapshot := domain.CartSnapshot{
		SessionID: sessionID,
		Lines:     lines,
		Subtotal:  CartSubtotal(lines),
	}

	groupIdx := map[int]int{}
	for _, line := range lines {
		snapshot.ItemCount += line.Quantity
		i, ok := groupIdx[line.Item.RestaurantID]
		if !ok {
			i = len(snapshot.Groups)
			groupIdx[line.Item.RestaurantID] = i
			snapshot.Groups = append(snapshot.Groups, domain.RestaurantGroup{
				RestaurantID: line.Item.RestaurantID,
			})
		}
		snapshot.Groups[i].Lines = append(snapshot.Groups[i].Lines, line)
		snapshot.Groups[i].Subtotal += LineTotal(line)
	}
	snapshot.RestaurantCount = len(snapshot.Groups)
	return snapshot
}

func (s *CartStore) notifyLocked(sessionID string) {
	if len(s.subscribers) == 0 {
		return
	}
	snapshot := s.snapshotLocked(sessionID)
	for _, fn := range s.subscribers {
		fn(sessionID, snapshot)
	}
}
