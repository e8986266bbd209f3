package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/junaidrashid-git/sportsstore/models"
)

const CartKey = "cart"

// ProductLookup resolves stored cart lines back to catalog products.
// A nil product with a nil error means the product no longer exists.
type ProductLookup interface {
	GetByID(ctx context.Context, id uint) (*models.Product, error)
}

// storedLine is written as a [productID, quantity] pair. Only references are
// kept in the session so a cookie-backed cart stays small however many lines
// it holds; the products are reloaded from the catalog on every request.
type storedLine struct {
	ProductID uint
	Quantity  int
}

func (l storedLine) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int64{int64(l.ProductID), int64(l.Quantity)})
}

func (l *storedLine) UnmarshalJSON(data []byte) error {
	var pair [2]int64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if pair[0] <= 0 {
		return fmt.Errorf("stored cart line has product id %d", pair[0])
	}
	l.ProductID, l.Quantity = uint(pair[0]), int(pair[1])
	return nil
}

type storedCart struct {
	Lines []storedLine `json:"lines"`
}

func encodeCart(cart *models.Cart) ([]byte, error) {
	lines := cart.Lines()
	stored := storedCart{Lines: make([]storedLine, 0, len(lines))}
	for _, l := range lines {
		stored.Lines = append(stored.Lines, storedLine{ProductID: l.Product.ID, Quantity: l.Quantity})
	}
	return json.Marshal(stored)
}

// LoadCart returns the cart stored in sess, or an empty one. Lines whose
// product has since been deleted are dropped.
func LoadCart(ctx context.Context, sess Session, products ProductLookup) (*models.Cart, error) {
	raw, ok, err := sess.Get(CartKey)
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	cart := models.NewCart()
	if !ok || len(raw) == 0 {
		return cart, nil
	}
	var stored storedCart
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	for _, l := range stored.Lines {
		product, err := products.GetByID(ctx, l.ProductID)
		if err != nil {
			return nil, fmt.Errorf("load cart product %d: %w", l.ProductID, err)
		}
		if product == nil {
			continue
		}
		if err := cart.AddLine(*product, l.Quantity); err != nil {
			return nil, fmt.Errorf("decode cart: %w", err)
		}
	}
	return cart, nil
}

// SaveCart writes cart under CartKey and saves the session.
func SaveCart(sess Session, cart *models.Cart) error {
	raw, err := encodeCart(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := sess.Set(CartKey, raw); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	if err := sess.Save(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// WithCart loads the cart, runs fn, and stores the cart back when fn
// succeeds. The cart is saved before the caller writes any response body.
func WithCart[T any](ctx context.Context, sess Session, products ProductLookup, fn func(cart *models.Cart) (T, error)) (T, error) {
	var zero T
	cart, err := LoadCart(ctx, sess, products)
	if err != nil {
		return zero, err
	}
	out, err := fn(cart)
	if err != nil {
		return zero, err
	}
	if err := SaveCart(sess, cart); err != nil {
		return zero, err
	}
	return out, nil
}
