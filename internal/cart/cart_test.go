package cart

import (
	"context"
	"testing"

	"bigcorp/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int64, price string) model.Product {
	return model.Product{
		ID:        id,
		Title:     "p",
		Price:     decimal.RequireFromString(price),
		Available: true,
	}
}

func TestCart_AddAccumulatesQuantity(t *testing.T) {
	c := New()
	p := product(1, "10.00")

	c.Add(p, 2)
	c.Add(p, 3)

	assert.Equal(t, int64(5), c.Len())
	assert.True(t, c.TotalPrice().Equal(decimal.RequireFromString("50.00")),
		"total=%s", c.TotalPrice())
}

// addし直したときは単価スナップショットを現在価格で取り直す
func TestCart_AddRefreshesSnapshot(t *testing.T) {
	c := New()

	c.Add(product(1, "10.00"), 1)
	c.Add(product(1, "12.00"), 1)

	line := c[Key(1)]
	assert.True(t, line.Price.Equal(decimal.RequireFromString("12.00")))
	assert.Equal(t, int64(2), line.Quantity)
}

// 商品価格が後で変わってもカートはスナップショットで数える
func TestCart_TotalUsesSnapshotNotLivePrice(t *testing.T) {
	c := New()
	p := product(1, "10.00")
	c.Add(p, 2)

	//商品側の価格だけ変わった
	p.Price = decimal.RequireFromString("99.99")

	assert.True(t, c.TotalPrice().Equal(decimal.RequireFromString("20.00")),
		"total=%s", c.TotalPrice())
}

func TestCart_UpdateOverwritesQuantity(t *testing.T) {
	c := New()
	c.Add(product(1, "10.00"), 2)

	c.Update(product(1, "10.00"), 5)

	assert.Equal(t, int64(5), c.Len())
	assert.True(t, c.TotalPrice().Equal(decimal.RequireFromString("50.00")))
}

func TestCart_DeleteAbsentIsNoop(t *testing.T) {
	c := New()
	c.Add(product(1, "10.00"), 2)

	c.Delete(42)

	assert.Equal(t, int64(2), c.Len())
	assert.Len(t, c, 1)
}

// 例：空→add(10.00×2)→update(5)→delete
func TestCart_WorkedExample(t *testing.T) {
	c := New()
	p := product(1, "10.00")

	assert.Equal(t, int64(0), c.Len())

	c.Add(p, 2)
	assert.Equal(t, int64(2), c.Len())
	assert.True(t, c.TotalPrice().Equal(decimal.RequireFromString("20.00")))

	c.Update(p, 5)
	assert.True(t, c.TotalPrice().Equal(decimal.RequireFromString("50.00")))

	c.Delete(1)
	assert.Equal(t, int64(0), c.Len())
	assert.True(t, c.TotalPrice().Equal(decimal.Zero))
}

func TestCart_LenSumsAcrossProducts(t *testing.T) {
	c := New()
	c.Add(product(1, "10.00"), 2)
	c.Add(product(2, "3.50"), 4)

	assert.Equal(t, int64(6), c.Len())
	assert.True(t, c.TotalPrice().Equal(decimal.RequireFromString("34.00")))
	assert.ElementsMatch(t, []int64{1, 2}, c.ProductIDs())
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	//未保存のセッションは空カート
	c, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), c.Len())

	c.Add(product(1, "10.00"), 2)
	require.NoError(t, store.Save(ctx, "s1", c))

	got, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Len())
	assert.True(t, got.TotalPrice().Equal(decimal.RequireFromString("20.00")))

	//別セッションには見えない
	other, err := store.Load(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, int64(0), other.Len())

	require.NoError(t, store.Clear(ctx, "s1"))
	cleared, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), cleared.Len())
}
