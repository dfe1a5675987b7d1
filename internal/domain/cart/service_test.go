package cart

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestAddItemMergesByName(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem("Pizza", price(5000)))
	require.NoError(t, c.AddItem("Pizza", price(9999)))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].UnitPrice.Equal(price(5000)), "existing line keeps its price")
	assert.True(t, c.Subtotal().Equal(price(10000)))
}

func TestAddItemValidation(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.AddItem("  ", price(100)), ErrItemName)

	require.NoError(t, c.AddItem("Mystery", ParsePrice("n/a")))
	require.NoError(t, c.AddItem("Refund", price(-50)))
	assert.True(t, c.Subtotal().IsZero())
	assert.Equal(t, 2, c.Len())
}

func TestIncrementDecrement(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem("Cola", price(800)))

	require.NoError(t, c.Increment("Cola"))
	assert.Equal(t, 2, c.Count())

	require.NoError(t, c.Decrement("Cola"))
	assert.Equal(t, 1, c.Count())

	require.NoError(t, c.Decrement("Cola"))
	assert.True(t, c.IsEmpty(), "reaching zero removes the line")

	assert.ErrorIs(t, c.Increment("Cola"), ErrItemNotFound)
	assert.ErrorIs(t, c.Decrement("Cola"), ErrItemNotFound)
}

func TestInsertionOrderIsKept(t *testing.T) {
	c := New()
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, c.AddItem(name, price(100)))
	}
	require.NoError(t, c.Decrement("B"))
	require.NoError(t, c.AddItem("B", price(100)))

	assert.Equal(t, []string{"A", "C", "B"}, c.Snapshot().Names())
}

func TestTotals(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem("Burger", price(5500)))
	require.NoError(t, c.AddItem("Burger", price(5500)))
	require.NoError(t, c.AddItem("Cake", ParsePrice("₦3,500")))

	totals := c.Snapshot().Totals
	assert.Equal(t, 2, totals.ItemCount)
	assert.Equal(t, 3, totals.TotalQuantity)
	assert.True(t, totals.SubTotal.Equal(price(14500)))
}

func TestClear(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem("Cake", price(3500)))
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Subtotal().IsZero())
}

func TestItemsReturnsCopy(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem("Cake", price(3500)))

	items := c.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, c.Count())
}

func TestObserversSeeEveryMutation(t *testing.T) {
	c := New()
	var subtotals []string
	c.Subscribe(func(s Snapshot) {
		subtotals = append(subtotals, s.Totals.SubTotal.String())
	})

	require.NoError(t, c.AddItem("Cake", price(3500)))
	require.NoError(t, c.Increment("Cake"))
	require.NoError(t, c.Decrement("Cake"))
	assert.Error(t, c.Decrement("Missing"))
	c.Clear()

	assert.Equal(t, []string{"3500", "7000", "3500", "0"}, subtotals)
}

func TestConcurrentAdds(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.AddItem("Cola", price(800))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 50, c.Count())
}

func TestFrozenCartRejectsEdits(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem("Suya", price(3500)))
	c.Freeze()
	assert.True(t, c.Frozen())

	assert.ErrorIs(t, c.AddItem("Chapman", price(1500)), ErrCartFrozen)
	assert.ErrorIs(t, c.Increment("Suya"), ErrCartFrozen)
	assert.ErrorIs(t, c.Decrement("Suya"), ErrCartFrozen)
	assert.Equal(t, 1, c.Count())

	c.Thaw()
	require.NoError(t, c.AddItem("Chapman", price(1500)))
	assert.Equal(t, 2, c.Count())

	c.Freeze()
	c.Clear()
	assert.True(t, c.IsEmpty())
}

func TestObserversSeeMutationsInOrder(t *testing.T) {
	c := New()
	var (
		mu   sync.Mutex
		seen []int
	)
	c.Subscribe(func(s Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, s.Totals.TotalQuantity)
	})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.AddItem("Cola", price(800))
		}()
	}
	wg.Wait()

	require.Len(t, seen, 100)
	for i, quantity := range seen {
		assert.Equal(t, i+1, quantity)
	}
}
