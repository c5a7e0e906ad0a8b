package order

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPrice renders a monetary value the way the shop displays it:
// Brazilian Real with a comma decimal separator.
func FormatPrice(d decimal.Decimal) string {
	return "R$ " + strings.ReplaceAll(d.StringFixed(2), ".", ",")
}

// Summary renders the deterministic multi-line text block relayed to the
// seller over WhatsApp: header, customer, itemized products in cart order,
// subtotal, delivery or pickup block, grand total and observations.
func Summary(o Order) string {
	var b strings.Builder
	b.WriteString("🍷 *NOVO PEDIDO - Abaixo de Zero*\n\n")
	fmt.Fprintf(&b, "👤 *Cliente:* %s\n", o.CustomerName)
	fmt.Fprintf(&b, "📱 *Telefone:* %s\n\n", o.CustomerPhone)

	b.WriteString("🛒 *Produtos:*\n")
	for _, it := range o.Items {
		fmt.Fprintf(&b, "• %s - Qtd: %d - %s\n", it.Name, it.Quantity, FormatPrice(it.LineTotal))
	}

	fmt.Fprintf(&b, "\n*Subtotal:* %s\n\n", FormatPrice(o.Subtotal))

	if o.DeliveryType == DeliveryDelivery {
		fmt.Fprintf(&b, "📍 *Entrega:* %s\n", o.Address)
		fmt.Fprintf(&b, "💰 *Taxa de entrega:* %s\n", FormatPrice(o.DeliveryFee))
	} else {
		b.WriteString("🏪 *Retirada:* Na loja (Grátis)\n")
	}

	fmt.Fprintf(&b, "\n💰 *TOTAL FINAL:* %s\n", FormatPrice(o.Total))

	if o.Observations != "" {
		fmt.Fprintf(&b, "\n📝 *Observações:* %s\n", o.Observations)
	}

	b.WriteString("\n---\nPedido gerado automaticamente pelo site")
	return b.String()
}

// RelayURL builds the messaging deep link that carries the summary to the
// given recipient, percent-encoded as the text query parameter.
func RelayURL(number string, o Order) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(Summary(o))
}
