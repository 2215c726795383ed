package pages

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"swag_automation/internal/config"
)

// CartItem is an immutable snapshot of one cart row.
type CartItem struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
}

// Cart page selectors.
const (
	cartList             = ".cart_list"
	cartItem             = ".cart_item"
	cartItemQuantity     = ".cart_quantity"
	cartItemName         = ".inventory_item_name"
	cartItemDesc         = ".inventory_item_desc"
	cartItemPrice        = ".inventory_item_price"
	cartContinueShopping = "#continue-shopping"
	cartCheckoutButton   = "#checkout"
)

// CartPage drives the shopping cart screen.
type CartPage struct {
	base
}

func NewCartPage(page playwright.Page, cfg *config.Config, logger *zap.Logger) *CartPage {
	return &CartPage{base: newBase(page, cfg, logger, "cart", "/cart.html")}
}

// ContinueShopping returns to the catalog.
func (p *CartPage) ContinueShopping() error {
	return p.Click(cartContinueShopping)
}

// ProceedToCheckout moves on to checkout step one.
func (p *CartPage) ProceedToCheckout() error {
	p.log.Info("proceeding to checkout")
	return p.Click(cartCheckoutButton)
}

// RemoveItem removes a cart row by product name.
func (p *CartPage) RemoveItem(name string) error {
	p.log.Info("removing item", zap.String("item", name))
	return p.Click("#remove-" + productID(name))
}

// ItemCount returns the number of rows in the cart.
func (p *CartPage) ItemCount() int {
	return p.Count(cartItem)
}

// ItemNames returns the cart row names in document order.
func (p *CartPage) ItemNames() []string {
	return p.AllTexts(cartItemName)
}

// ItemPrices returns the cart row prices in document order.
func (p *CartPage) ItemPrices() ([]float64, error) {
	texts := p.AllTexts(cartItemPrice)
	prices := make([]float64, 0, len(texts))
	for _, t := range texts {
		v, err := ParsePrice(t)
		if err != nil {
			return nil, err
		}
		prices = append(prices, v)
	}
	return prices, nil
}

// CartItem returns a snapshot of the named row, or nil when the cart shows no
// such item.
func (p *CartPage) CartItem(name string) (*CartItem, error) {
	selector := fmt.Sprintf(".cart_item:has-text(%q)", name)
	if !p.IsVisible(selector) {
		return nil, nil
	}

	item := p.Page().Locator(selector)
	itemName, err := item.Locator(cartItemName).TextContent()
	if err != nil {
		return nil, err
	}
	desc, err := item.Locator(cartItemDesc).TextContent()
	if err != nil {
		return nil, err
	}
	priceText, err := item.Locator(cartItemPrice).TextContent()
	if err != nil {
		return nil, err
	}
	price, err := ParsePrice(priceText)
	if err != nil {
		return nil, err
	}
	qtyText, err := item.Locator(cartItemQuantity).TextContent()
	if err != nil {
		return nil, err
	}
	qty, err := strconv.Atoi(qtyText)
	if err != nil {
		return nil, fmt.Errorf("cart quantity %q: %w", qtyText, err)
	}

	return &CartItem{Name: itemName, Description: desc, Price: price, Quantity: qty}, nil
}

// IsLoaded reports whether the cart screen's defining elements are visible.
func (p *CartPage) IsLoaded() bool {
	return p.IsVisible(cartList) &&
		p.IsVisible(cartCheckoutButton) &&
		p.IsVisible(cartContinueShopping)
}

// IsEmpty reports whether the cart has no rows.
func (p *CartPage) IsEmpty() bool {
	return p.ItemCount() == 0
}

// ContainsItem reports whether a row with exactly this name is in the cart.
func (p *CartPage) ContainsItem(name string) bool {
	return slices.Contains(p.ItemNames(), name)
}
