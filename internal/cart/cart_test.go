package cart_test

import (
	"testing"

	"papershop/internal/cart"
	"papershop/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func item(id string, price int64) model.CartItem {
	return model.CartItem{
		ID:        id,
		Code:      "0580",
		Price:     price,
		Subject:   "Mathematics",
		Board:     "Cambridge",
		Level:     "IGCSE",
		Type:      "Past Paper",
		YearRange: "2019-2023",
		Component: "Paper 2",
	}
}

// 同じIDの追加は何度やっても1つのまま
func TestCart_AddItems_DropsDuplicateIDs(t *testing.T) {
	c := cart.New()

	c.AddItems([]model.CartItem{item("a", 390), item("b", 160)})
	c.AddItems([]model.CartItem{item("a", 390), item("c", 450)})
	c.AddItems([]model.CartItem{item("a", 390)})

	assert.Equal(t, 3, c.TotalItems())

	ids := []string{}
	for _, it := range c.Items() {
		ids = append(ids, it.ID)
	}
	//追加順も保持される
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestCart_RemoveItem_NoopWhenAbsent(t *testing.T) {
	c := cart.New(item("a", 390))

	c.RemoveItem("zzz")
	assert.Equal(t, 1, c.TotalItems())

	c.RemoveItem("a")
	assert.Equal(t, 0, c.TotalItems())
}

func TestCart_TotalsAfterMutations(t *testing.T) {
	c := cart.New()
	assert.Equal(t, int64(0), c.TotalPrice())
	assert.Equal(t, 0, c.TotalItems())

	c.AddItems([]model.CartItem{item("a", 390), item("b", 160)})
	assert.Equal(t, int64(550), c.TotalPrice())
	assert.Equal(t, 2, c.TotalItems())

	c.RemoveItem("a")
	assert.Equal(t, int64(160), c.TotalPrice())
	assert.Equal(t, 1, c.TotalItems())

	c.Clear()
	assert.Equal(t, int64(0), c.TotalPrice())
	assert.Equal(t, 0, c.TotalItems())
}

// Itemsはコピーなので呼び出し側でいじっても中身は変わらない
func TestCart_ItemsReturnsCopy(t *testing.T) {
	c := cart.New(item("a", 390))

	got := c.Items()
	got[0].Price = 0

	assert.Equal(t, int64(390), c.TotalPrice())
}
