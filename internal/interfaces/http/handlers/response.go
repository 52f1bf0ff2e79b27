package handlers

import (
	"encoding/json"

	"github.com/your-org/storefront-cart/internal/domain/checkout"
)

// looseText accepts a JSON string or number and keeps its text. Any other
// JSON value reads as empty.
type looseText string

func (t *looseText) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = looseText(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*t = looseText(n.String())
		return nil
	}

	*t = ""
	return nil
}

// EntryResponse is one cart row
type EntryResponse struct {
	Name      string `json:"name"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

// CartResponse is the cart table plus the order summary
type CartResponse struct {
	Items           []EntryResponse           `json:"items"`
	ItemCount       int                       `json:"item_count"`
	Summary         checkout.FormattedSummary `json:"summary"`
	CheckoutEnabled bool                      `json:"checkout_enabled"`
	AddressRequired bool                      `json:"address_required"`
	ShowPaymentQR   bool                      `json:"show_payment_qr"`
}

// NewCartResponse renders a view for the API
func NewCartResponse(view checkout.View) CartResponse {
	items := make([]EntryResponse, 0, len(view.Entries))
	for _, e := range view.Entries {
		items = append(items, EntryResponse{
			Name:      e.Name,
			Price:     e.Price,
			Quantity:  e.Quantity,
			Image:     e.Image,
			UnitPrice: view.Summary.Money(e.UnitPrice()),
			LineTotal: view.Summary.Money(e.LineTotal()),
		})
	}

	return CartResponse{
		Items:           items,
		ItemCount:       view.Summary.ItemCount,
		Summary:         view.Summary.Formatted(),
		CheckoutEnabled: view.CheckoutEnabled,
		AddressRequired: view.AddressRequired,
		ShowPaymentQR:   view.ShowPaymentQR,
	}
}
