// internal/domain/cart/entity.go
package cart

import (
	"github.com/shopspring/decimal"
	"github.com/your-org/foodhub-storefront/internal/pkg/apperror"
	"github.com/your-org/foodhub-storefront/internal/pkg/money"
)

var (
	ErrItemNotFound = apperror.NotFound("cart_item_not_found", "item not in cart")
	ErrItemName     = apperror.Validation("cart_item_name", "item name is required")
	ErrCartFrozen   = apperror.Conflict("cart_frozen", "the cart cannot change while a payment is processing")
)

// LineItem is one distinct dish in the cart. Names are unique within a cart.
type LineItem struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal is unit price times quantity
func (l LineItem) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals summarises the cart
type Totals struct {
	ItemCount     int             `json:"item_count"`     // Number of distinct lines
	TotalQuantity int             `json:"total_quantity"` // Sum of all quantities
	SubTotal      decimal.Decimal `json:"sub_total"`
}

// Snapshot is an immutable copy of the cart handed to observers
type Snapshot struct {
	Items  []LineItem `json:"items"`
	Totals Totals     `json:"totals"`
}

// Names returns the line names in cart order
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		names = append(names, item.Name)
	}
	return names
}

// ParsePrice reads a price the way the menu renders it. Unparseable input is zero.
func ParsePrice(raw string) decimal.Decimal {
	return money.Parse(raw)
}

// CalculateTotals sums a list of lines
func CalculateTotals(items []LineItem) Totals {
	totals := Totals{
		ItemCount: len(items),
		SubTotal:  decimal.Zero,
	}
	for _, item := range items {
		totals.TotalQuantity += item.Quantity
		totals.SubTotal = totals.SubTotal.Add(item.LineTotal())
	}
	return totals
}
