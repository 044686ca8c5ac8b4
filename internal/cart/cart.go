package cart

import "papershop/internal/domain/model"

// Cart は1ブラウジングセッション分のカート。所有者は1人なのでロックはしない。
// グローバルには持たず、使う側へ明示的に渡す。
type Cart struct {
	items []model.CartItem
}

func New(items ...model.CartItem) *Cart {
	c := &Cart{}
	c.AddItems(items)
	return c
}

// AddItems は未追加のものだけ足す。同じIDは黙って捨てる（エラーにしない）。
// 追加順は保持する。
func (c *Cart) AddItems(newItems []model.CartItem) {
	for _, it := range newItems {
		if c.contains(it.ID) {
			continue
		}
		c.items = append(c.items, it)
	}
}

// RemoveItem は該当IDの行を消す。無ければ何もしない。
func (c *Cart) RemoveItem(id string) {
	for i, it := range c.items {
		if it.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) TotalPrice() int64 {
	var total int64 = 0
	for _, it := range c.items {
		total += it.Price
	}
	return total
}

func (c *Cart) TotalItems() int {
	return len(c.items)
}

// Items はコピーを返す。行の差し替えはRemove+Addで行う。
func (c *Cart) Items() []model.CartItem {
	out := make([]model.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) contains(id string) bool {
	for _, it := range c.items {
		if it.ID == id {
			return true
		}
	}
	return false
}
