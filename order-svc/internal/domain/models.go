package domain

import "time"

// MenuItem is the catalog record as the cart sees it. PreferredPrice is a
// platform-set override: when non-nil it replaces ListPrice everywhere.
type MenuItem struct {
	ID             int      `json:"id"`
	RestaurantID   int      `json:"restaurant_id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	ListPrice      float64  `json:"list_price"`
	PreferredPrice *float64 `json:"preferred_price,omitempty"`
}

// CartLine is one distinct menu item plus its quantity. At most one line per
// item id exists in a cart, and Quantity is always >= 1.
type CartLine struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

type RestaurantGroup struct {
	RestaurantID int        `json:"restaurant_id"`
	Lines        []CartLine `json:"lines"`
	Subtotal     float64    `json:"subtotal"`
}

// CartSnapshot is a read-only view of a session cart.
type CartSnapshot struct {
	SessionID       string            `json:"session_id"`
	Lines           []CartLine        `json:"lines"`
	Groups          []RestaurantGroup `json:"groups"`
	Subtotal        float64           `json:"subtotal"`
	ItemCount       int               `json:"item_count"`
	RestaurantCount int               `json:"restaurant_count"`
}

type CustomerInfo struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Zone          string `json:"zone"`
	PaymentMethod string `json:"payment_method"`
}

// OrderLine is a frozen copy of a cart line at submission time. Later catalog
// price changes never alter a persisted order.
type OrderLine struct {
	ItemID    int     `json:"item_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type Order struct {
	ID              int         `json:"id"`
	RestaurantID    int         `json:"restaurant_id"`
	RestaurantName  string      `json:"restaurant_name"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerAddress string      `json:"customer_address"`
	Zone            string      `json:"zone"`
	Lines           []OrderLine `json:"lines"`
	Subtotal        float64     `json:"subtotal"`
	DeliveryFee     float64     `json:"delivery_fee"`
	Total           float64     `json:"total"`
	PaymentMethod   string      `json:"payment_method"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
}

// CheckoutResult is what a successful checkout returns to the client: the
// persisted order plus the WhatsApp hand-off link and the message behind it.
type CheckoutResult struct {
	Order        *Order `json:"order"`
	WhatsAppLink string `json:"whatsapp_link"`
	Transcript   string `json:"transcript"`
}

// CustomerProfile prefills checkout fields for a returning customer.
type CustomerProfile struct {
	Phone   string `json:"phone"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Zone    string `json:"zone"`
}
