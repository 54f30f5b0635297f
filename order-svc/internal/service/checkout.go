package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"luciafood-express/order-svc/internal/domain"
)

var (
	ErrEmptyCart               = errors.New("cart is empty")
	ErrMultiRestaurantCheckout = errors.New("checkout requires items from a single restaurant")
	ErrCheckoutInProgress      = errors.New("a checkout is already in progress for this session")
	ErrOrderSave               = errors.New("failed to save order, try again")
	ErrChatLink                = errors.New("could not open messaging app")
)

// MissingCustomerInfoError reports which checkout fields were blank so the
// client can point at them.
type MissingCustomerInfoError struct {
	Fields []string
}

func (e *MissingCustomerInfoError) Error() string {
	return "missing customer info: " + strings.Join(e.Fields, ", ")
}

// AssembleOrder validates the cart and customer input and freezes them into an
// immutable order. The cart may hold up to three restaurants for browsing, but
// submission requires exactly one; this two-tier policy is deliberate.
// Validation failures leave every input untouched and nothing external is
// consulted.
func AssembleOrder(snapshot domain.CartSnapshot, info domain.CustomerInfo, restaurantName string, fees *FeeTable) (*domain.Order, error) {
	if len(snapshot.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	var missing []string
	if strings.TrimSpace(info.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(info.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(info.Address) == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return nil, &MissingCustomerInfoError{Fields: missing}
	}

	if snapshot.RestaurantCount != 1 {
		return nil, ErrMultiRestaurantCheckout
	}

	paymentMethod := strings.TrimSpace(info.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = "Efectivo"
	}

	order := &domain.Order{
		RestaurantID:    snapshot.Lines[0].Item.RestaurantID,
		RestaurantName:  restaurantName,
		CustomerName:    strings.TrimSpace(info.Name),
		CustomerPhone:   strings.TrimSpace(info.Phone),
		CustomerAddress: strings.TrimSpace(info.Address),
		Zone:            strings.TrimSpace(info.Zone),
		DeliveryFee:     fees.FeeFor(strings.TrimSpace(info.Zone)),
		PaymentMethod:   paymentMethod,
		Status:          "pending",
		CreatedAt:       time.Now(),
	}

	for _, line := range snapshot.Lines {
		unit := EffectiveUnitPrice(line.Item)
		order.Lines = append(order.Lines, domain.OrderLine{
			ItemID:    line.Item.ID,
			Name:      line.Item.Name,
			Quantity:  line.Quantity,
			UnitPrice: unit,
			LineTotal: unit * float64(line.Quantity),
		})
		order.Subtotal += unit * float64(line.Quantity)
	}
	order.Total = order.Subtotal + order.DeliveryFee

	return order, nil
}

// CheckoutService turns a session cart into a persisted order plus a WhatsApp
// hand-off, clearing the cart only when both steps succeed.
type CheckoutService struct {
	carts       *CartStore
	fees        *FeeTable
	menu        MenuReader
	orders      OrderRepository
	chat        ChatLinker
	guard       CheckoutGuard
	publisher   OrderPublisher
	destination string
}

func NewCheckoutService(carts *CartStore, fees *FeeTable, menu MenuReader, orders OrderRepository,
	chat ChatLinker, guard CheckoutGuard, publisher OrderPublisher, destination string,
) *CheckoutService {
	return &CheckoutService{
		carts:       carts,
		fees:        fees,
		menu:        menu,
		orders:      orders,
		chat:        chat,
		guard:       guard,
		publisher:   publisher,
		destination: destination,
	}
}

func (s *CheckoutService) Checkout(ctx context.Context, sessionID string, info domain.CustomerInfo) (*domain.CheckoutResult, error) {
	acquired, err := s.guard.Acquire(ctx, sessionID)
	if err != nil {
		// A broken guard must not block every checkout; duplicate protection
		// degrades to a single instance's cart state.
		log.Printf("[order-svc] checkout guard unavailable: %v", err)
	} else if !acquired {
		return nil, ErrCheckoutInProgress
	}
	defer s.guard.Release(ctx, sessionID)

	snapshot := s.carts.Snapshot(sessionID)

	order, err := AssembleOrder(snapshot, info, "", s.fees)
	if err != nil {
		return nil, err
	}

	name, err := s.menu.GetRestaurantName(order.RestaurantID)
	if err != nil || name == "" {
		name = fmt.Sprintf("Restaurante #%d", order.RestaurantID)
	}
	order.RestaurantName = name

	if err := s.orders.SaveOrder(order); err != nil {
		// Cart stays intact so the customer can simply retry.
		return nil, fmt.Errorf("%w: %v", ErrOrderSave, err)
	}

	transcript := RenderTranscript(order)
	link, err := s.chat.ChatLink(s.destination, transcript)
	if err != nil {
		// The order row already exists; the cart is kept so the customer can
		// retry the messaging step without rebuilding their selection.
		return nil, fmt.Errorf("%w: %v", ErrChatLink, err)
	}

	s.carts.Clear(sessionID)

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:         "order_placed",
			OrderID:      order.ID,
			RestaurantID: order.RestaurantID,
			Zone:         order.Zone,
			Total:        order.Total,
			ItemCount:    snapshot.ItemCount,
			Timestamp:    time.Now(),
		}
		if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
			log.Printf("[order-svc] failed to publish order event: %v", err)
		}
	}

	return &domain.CheckoutResult{Order: order, WhatsAppLink: link, Transcript: transcript}, nil
}

func (s *CheckoutService) GetOrder(id int) (*domain.Order, error) {
	return s.orders.GetOrder(id)
}

// OrderChatLink rebuilds the hand-off link for a persisted order, used by the
// QR code endpoint.
func (s *CheckoutService) OrderChatLink(id int) (string, error) {
	order, err := s.orders.GetOrder(id)
	if err != nil {
		return "", err
	}
	link, err := s.chat.ChatLink(s.destination, RenderTranscript(order))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrChatLink, err)
	}
	return link, nil
}
