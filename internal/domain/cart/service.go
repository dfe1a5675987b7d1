// internal/domain/cart/service.go
package cart

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// Observer is called after every cart mutation
type Observer func(Snapshot)

// Cart is the in-memory shopping cart of the current device. It is not persisted.
// While frozen, customer edits fail with ErrCartFrozen; Clear still works.
type Cart struct {
	mu        sync.Mutex
	items     []LineItem
	frozen    bool
	observers []Observer

	// notifyMu orders mutations together with their notifications
	notifyMu sync.Mutex
}

// New creates an empty cart
func New() *Cart {
	return &Cart{}
}

// Subscribe registers fn to be called after each mutation
func (c *Cart) Subscribe(fn Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// AddItem adds one unit of name. An existing line keeps its original unit price.
func (c *Cart) AddItem(name string, unitPrice decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrItemName
	}
	if unitPrice.IsNegative() {
		unitPrice = decimal.Zero
	}

	return c.mutate(func() error {
		if c.frozen {
			return ErrCartFrozen
		}
		if i := c.indexOf(name); i >= 0 {
			c.items[i].Quantity++
			return nil
		}
		c.items = append(c.items, LineItem{Name: name, UnitPrice: unitPrice, Quantity: 1})
		return nil
	})
}

// Increment adds one unit to an existing line
func (c *Cart) Increment(name string) error {
	return c.mutate(func() error {
		if c.frozen {
			return ErrCartFrozen
		}
		i := c.indexOf(name)
		if i < 0 {
			return ErrItemNotFound
		}
		c.items[i].Quantity++
		return nil
	})
}

// Decrement removes one unit, dropping the line when it reaches zero
func (c *Cart) Decrement(name string) error {
	return c.mutate(func() error {
		if c.frozen {
			return ErrCartFrozen
		}
		i := c.indexOf(name)
		if i < 0 {
			return ErrItemNotFound
		}
		c.items[i].Quantity--
		if c.items[i].Quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		}
		return nil
	})
}

// Clear empties the cart, frozen or not
func (c *Cart) Clear() {
	c.mutate(func() error {
		c.items = nil
		return nil
	})
}

// Freeze rejects customer edits until Thaw
func (c *Cart) Freeze() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen = true
}

// Thaw allows edits again
func (c *Cart) Thaw() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen = false
}

// Frozen reports whether edits are currently rejected
func (c *Cart) Frozen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frozen
}

// Items returns a copy of the lines in insertion order
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyItems()
}

// Subtotal is computed from the current lines on every call
func (c *Cart) Subtotal() decimal.Decimal {
	return c.Snapshot().Totals.SubTotal
}

// Count is the total number of units
func (c *Cart) Count() int {
	return c.Snapshot().Totals.TotalQuantity
}

// Len is the number of distinct lines
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return c.Len() == 0
}

// Snapshot returns a consistent copy of lines and totals
func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.copyItems()
	return Snapshot{Items: items, Totals: CalculateTotals(items)}
}

// mutate runs fn under the lock and, if it succeeded, notifies observers.
// Mutations are serialized on notifyMu so observers see them in order; mu is
// released before observers run, so they may read the cart but not mutate it.
func (c *Cart) mutate(fn func() error) error {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	if err := fn(); err != nil {
		c.mu.Unlock()
		return err
	}
	items := c.copyItems()
	observers := append([]Observer(nil), c.observers...)
	c.mu.Unlock()

	snapshot := Snapshot{Items: items, Totals: CalculateTotals(items)}
	for _, observer := range observers {
		observer(snapshot)
	}
	return nil
}

func (c *Cart) indexOf(name string) int {
	for i, item := range c.items {
		if item.Name == name {
			return i
		}
	}
	return -1
}

func (c *Cart) copyItems() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}
