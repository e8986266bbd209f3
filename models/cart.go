package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// CartLine pairs a product snapshot with how many of it are in the cart.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (l CartLine) Total() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the per-session shopping cart. Lines keep insertion order and hold
// at most one line per product ID. Totals are always derived from the lines.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// AddLine merges into an existing line for the same product or appends a new one.
func (c *Cart) AddLine(product Product, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("add %q x%d: %w", product.Name, quantity, ErrInvalidQuantity)
	}
	if i := c.indexOf(product.ID); i >= 0 {
		c.lines[i].Quantity += quantity
		return nil
	}
	product.Category = nil
	c.lines = append(c.lines, CartLine{Product: product, Quantity: quantity})
	return nil
}

func (c *Cart) RemoveLine(product Product) {
	c.removeAt(c.indexOf(product.ID))
}

func (c *Cart) IncreaseQuantity(productID uint) {
	if i := c.indexOf(productID); i >= 0 {
		c.lines[i].Quantity++
	}
}

// DecreaseQuantity drops the line entirely once its quantity would reach zero.
func (c *Cart) DecreaseQuantity(productID uint) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	if c.lines[i].Quantity <= 1 {
		c.removeAt(i)
		return
	}
	c.lines[i].Quantity--
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy; mutating it does not affect the cart.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) NumberOfLines() int {
	return len(c.lines)
}

func (c *Cart) NumberOfItems() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Total())
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) indexOf(productID uint) int {
	for i, l := range c.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}
