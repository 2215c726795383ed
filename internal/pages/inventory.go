package pages

import (
	"fmt"
	"strconv"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"swag_automation/internal/config"
	"swag_automation/internal/elements"
)

// SortOrder enumerates the catalog sort options, valued by the sort
// dropdown's option value attribute.
type SortOrder string

const (
	SortNameAsc      SortOrder = "az"
	SortNameDesc     SortOrder = "za"
	SortPriceLowHigh SortOrder = "lohi"
	SortPriceHighLow SortOrder = "hilo"
)

// ProductInfo is an immutable snapshot of one catalog entry.
type ProductInfo struct {
	Name        string
	Description string
	Price       float64
}

// Inventory page selectors.
const (
	inventoryAppLogo    = ".app_logo"
	inventoryMenuButton = "#react-burger-menu-btn"
	inventoryMenuClose  = "#react-burger-cross-btn"
	inventoryMenuAll    = "#inventory_sidebar_link"
	inventoryMenuLogout = "#logout_sidebar_link"
	inventoryMenuReset  = "#reset_sidebar_link"
	inventoryCartLink   = ".shopping_cart_link"
	inventoryCartBadge  = ".shopping_cart_badge"
	inventorySortSelect = "[data-test='product-sort-container']"
	inventoryList       = ".inventory_list"
	inventoryItem       = ".inventory_item"
	inventoryItemName   = ".inventory_item_name"
	inventoryItemDesc   = ".inventory_item_desc"
	inventoryItemPrice  = ".inventory_item_price"
	inventoryAddButtons = "button[id^='add-to-cart']"
)

// InventoryPage drives the product catalog screen.
type InventoryPage struct {
	base
}

func NewInventoryPage(page playwright.Page, cfg *config.Config, logger *zap.Logger) *InventoryPage {
	return &InventoryPage{base: newBase(page, cfg, logger, "inventory", "/inventory.html")}
}

// OpenMenu opens the hamburger menu and waits for it to render.
func (p *InventoryPage) OpenMenu() error {
	if err := p.Click(inventoryMenuButton); err != nil {
		return err
	}
	return p.WaitForVisible(inventoryMenuAll)
}

// CloseMenu closes the hamburger menu and waits for it to disappear.
func (p *InventoryPage) CloseMenu() error {
	if err := p.Click(inventoryMenuClose); err != nil {
		return err
	}
	return p.WaitForHidden(inventoryMenuAll)
}

// Logout signs out through the menu, landing back on the login screen.
func (p *InventoryPage) Logout() error {
	p.log.Info("logging out")
	if err := p.OpenMenu(); err != nil {
		return err
	}
	return p.Click(inventoryMenuLogout)
}

// ResetAppState clears cart and button state via the menu option.
func (p *InventoryPage) ResetAppState() error {
	p.log.Info("resetting application state")
	if err := p.OpenMenu(); err != nil {
		return err
	}
	if err := p.Click(inventoryMenuReset); err != nil {
		return err
	}
	return p.CloseMenu()
}

// GoToCart navigates to the shopping cart screen.
func (p *InventoryPage) GoToCart() error {
	return p.Click(inventoryCartLink)
}

// ClickProduct opens a product's detail view by its displayed name.
func (p *InventoryPage) ClickProduct(name string) error {
	selector := fmt.Sprintf(".inventory_item:has-text(%q) %s", name, inventoryItemName)
	return p.Click(selector)
}

// SortProducts reorders the catalog using the sort dropdown.
func (p *InventoryPage) SortProducts(order SortOrder) error {
	p.log.Info("sorting products", zap.String("order", string(order)))
	return p.SelectOptionIn(inventorySortSelect, elements.SelectOption{
		Value: playwright.String(string(order)),
	})
}

// AddProductToCart adds a product by name. The button id is derived from the
// name by the application's id contract.
func (p *InventoryPage) AddProductToCart(name string) error {
	p.log.Info("adding to cart", zap.String("product", name))
	return p.Click("#add-to-cart-" + productID(name))
}

// RemoveProductFromCart removes a previously added product by name.
func (p *InventoryPage) RemoveProductFromCart(name string) error {
	p.log.Info("removing from cart", zap.String("product", name))
	return p.Click("#remove-" + productID(name))
}

// AddProductByIndex adds the product at the given catalog position.
func (p *InventoryPage) AddProductByIndex(index int) error {
	item := p.Page().Locator(inventoryItem).Nth(index)
	return item.Locator(inventoryAddButtons).Click()
}

// CartCount reads the cart badge. A missing badge means an empty cart.
func (p *InventoryPage) CartCount() (int, error) {
	if !p.IsVisible(inventoryCartBadge) {
		return 0, nil
	}
	text, err := p.Text(inventoryCartBadge)
	if err != nil {
		return 0, err
	}
	if text == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("cart badge %q: %w", text, err)
	}
	return n, nil
}

// ProductCount returns the number of catalog entries currently displayed.
func (p *InventoryPage) ProductCount() int {
	return p.Count(inventoryItem)
}

// ProductNames returns the displayed product names in document order.
func (p *InventoryPage) ProductNames() []string {
	return p.AllTexts(inventoryItemName)
}

// ProductPrices returns the displayed prices in document order.
func (p *InventoryPage) ProductPrices() ([]float64, error) {
	texts := p.AllTexts(inventoryItemPrice)
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

// ProductInfo returns a snapshot of the named product, or nil when no such
// product is visible.
func (p *InventoryPage) ProductInfo(name string) (*ProductInfo, error) {
	selector := fmt.Sprintf(".inventory_item:has-text(%q)", name)
	if !p.IsVisible(selector) {
		p.log.Warn("product not found", zap.String("product", name))
		return nil, nil
	}

	item := p.Page().Locator(selector)
	itemName, err := item.Locator(inventoryItemName).TextContent()
	if err != nil {
		return nil, err
	}
	desc, err := item.Locator(inventoryItemDesc).TextContent()
	if err != nil {
		return nil, err
	}
	priceText, err := item.Locator(inventoryItemPrice).TextContent()
	if err != nil {
		return nil, err
	}
	price, err := ParsePrice(priceText)
	if err != nil {
		return nil, err
	}

	return &ProductInfo{Name: itemName, Description: desc, Price: price}, nil
}

// AllProducts returns a snapshot of every displayed product.
func (p *InventoryPage) AllProducts() ([]ProductInfo, error) {
	products := make([]ProductInfo, 0, p.ProductCount())
	for _, name := range p.ProductNames() {
		info, err := p.ProductInfo(name)
		if err != nil {
			return nil, err
		}
		if info != nil {
			products = append(products, *info)
		}
	}
	return products, nil
}

// IsLoaded reports whether the catalog is fully rendered: list container and
// logo visible, and at least one product present.
func (p *InventoryPage) IsLoaded() bool {
	return p.IsVisible(inventoryList) &&
		p.IsVisible(inventoryAppLogo) &&
		p.ProductCount() > 0
}

// IsProductInCart checks for the product's remove button, which the shop
// swaps in for the add button once an item is in the cart.
func (p *InventoryPage) IsProductInCart(name string) bool {
	return p.IsVisible("#remove-" + productID(name))
}

func (p *InventoryPage) IsMenuOpen() bool {
	return p.IsVisible(inventoryMenuAll)
}
