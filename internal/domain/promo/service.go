// internal/domain/promo/service.go
package promo

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/your-org/foodhub-storefront/internal/domain/cart"
)

var hundred = decimal.NewFromInt(100)

// Engine validates codes against a static table
type Engine struct {
	codes map[string]Code
}

// NewEngine builds an engine from codes, keyed case-insensitively
func NewEngine(codes []Code) *Engine {
	e := &Engine{codes: make(map[string]Code, len(codes))}
	for _, c := range codes {
		e.codes[normalize(c.Code)] = c
	}
	return e
}

// Lookup finds a code, ignoring case and surrounding spaces
func (e *Engine) Lookup(code string) (Code, bool) {
	c, ok := e.codes[normalize(code)]
	return c, ok
}

// ApplyCode computes the discount code would give on subtotal.
// Unknown or empty codes are reported invalid with a zero discount.
func (e *Engine) ApplyCode(code string, subtotal decimal.Decimal) Result {
	normalized := normalize(code)
	c, ok := e.codes[normalized]
	if normalized == "" || !ok {
		return Result{
			Code:           normalized,
			Percent:        decimal.Zero,
			DiscountAmount: decimal.Zero,
			Message:        "Invalid promo code",
		}
	}

	return Result{
		Valid:          true,
		Code:           c.Code,
		Percent:        c.Percent,
		DiscountAmount: Discount(c, subtotal),
		Description:    c.Description,
		Message:        "Promo applied: " + c.Description,
	}
}

// Discount is subtotal * percent / 100, rounded to two places
func Discount(c Code, subtotal decimal.Decimal) decimal.Decimal {
	if !subtotal.IsPositive() {
		return decimal.Zero
	}
	return subtotal.Mul(c.Percent).Div(hundred).Round(2)
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Selection holds the single active promo for the cart. Applying another
// valid code replaces it; an invalid code leaves it as it was.
type Selection struct {
	engine *Engine

	mu       sync.RWMutex
	active   *Code
	discount decimal.Decimal
	subtotal decimal.Decimal
}

// NewSelection creates an empty selection
func NewSelection(engine *Engine) *Selection {
	return &Selection{
		engine:   engine,
		discount: decimal.Zero,
		subtotal: decimal.Zero,
	}
}

// Attach keeps the discount in step with the cart
func (s *Selection) Attach(c *cart.Cart) {
	s.OnCartChange(c.Snapshot())
	c.Subscribe(s.OnCartChange)
}

// OnCartChange recomputes the discount for the new subtotal
func (s *Selection) OnCartChange(snapshot cart.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subtotal = snapshot.Totals.SubTotal
	s.recompute()
}

// Apply tries code against the current subtotal
func (s *Selection) Apply(code string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.engine.ApplyCode(code, s.subtotal)
	if !result.Valid {
		return result
	}
	c, _ := s.engine.Lookup(result.Code)
	s.active = &c
	s.recompute()
	return result
}

// Clear removes the active promo
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
	s.discount = decimal.Zero
}

// Active returns the applied code, if any
func (s *Selection) Active() (Code, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return Code{}, false
	}
	return *s.active, true
}

// Discount is the discount for the latest cart subtotal
func (s *Selection) Discount() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.discount
}

// DiscountFor computes the active promo's discount on an arbitrary subtotal
func (s *Selection) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return decimal.Zero
	}
	return Discount(*s.active, subtotal)
}

func (s *Selection) recompute() {
	if s.active == nil {
		s.discount = decimal.Zero
		return
	}
	s.discount = Discount(*s.active, s.subtotal)
}
