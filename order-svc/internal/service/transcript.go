package service

import (
	"fmt"
	"strings"

	"luciafood-express/order-svc/internal/domain"
)

// RenderTranscript produces the WhatsApp message for an assembled order. The
// output is deterministic for a given order so the hand-off can be retried and
// tested byte for byte.
func RenderTranscript(order *domain.Order) string {
	var b strings.Builder

	b.WriteString("*NUEVO PEDIDO - LuciaFood Express*\n\n")
	b.WriteString("*Cliente:* " + order.CustomerName + "\n")
	b.WriteString("*Teléfono:* " + order.CustomerPhone + "\n")
	b.WriteString("*Dirección:* " + order.CustomerAddress + "\n")
	b.WriteString("*Zona:* " + order.Zone + "\n\n")
	b.WriteString("*Restaurante:* " + order.RestaurantName + "\n\n")
	b.WriteString("*Pedido:*\n")
	for _, line := range order.Lines {
		fmt.Fprintf(&b, "%d x %s - L %.2f\n", line.Quantity, line.Name, line.LineTotal)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "*Subtotal:* L %.2f\n", order.Subtotal)
	fmt.Fprintf(&b, "*Envío:* L %.2f\n", order.DeliveryFee)
	fmt.Fprintf(&b, "*Total:* L %.2f\n\n", order.Total)
	b.WriteString("*Pago:* " + order.PaymentMethod + "\n")

	return b.String()
}
