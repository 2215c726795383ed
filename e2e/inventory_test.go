package e2e

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swag_automation/internal/pages"
)

func TestInventoryShowsAllProducts(t *testing.T) {
	inventory := loginAsStandard(t)

	require.True(t, inventory.IsLoaded())
	assert.Equal(t, 6, inventory.ProductCount())
	assert.Len(t, inventory.ProductNames(), 6)
}

func TestInventoryProductInfo(t *testing.T) {
	inventory := loginAsStandard(t)

	backpack := data.Products["backpack"]
	info, err := inventory.ProductInfo(backpack.Name)
	require.NoError(t, err)
	require.NotNil(t, info, "backpack should be on the catalog")
	assert.Equal(t, backpack.Name, info.Name)
	assert.Equal(t, backpack.Price, info.Price)
	assert.NotEmpty(t, info.Description)
}

func TestInventoryUnknownProductYieldsNoInfo(t *testing.T) {
	inventory := loginAsStandard(t)

	info, err := inventory.ProductInfo("No Such Product")
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestSortProductsByNameDescending(t *testing.T) {
	inventory := loginAsStandard(t)
	require.NoError(t, inventory.SortProducts(pages.SortNameDesc))

	names := inventory.ProductNames()
	require.NotEmpty(t, names)
	assert.True(t, sort.SliceIsSorted(names, func(i, j int) bool {
		return names[i] > names[j]
	}), "names should be in descending order: %v", names)
}

func TestSortProductsByPriceAscending(t *testing.T) {
	inventory := loginAsStandard(t)
	require.NoError(t, inventory.SortProducts(pages.SortPriceLowHigh))

	prices, err := inventory.ProductPrices()
	require.NoError(t, err)
	require.NotEmpty(t, prices)
	assert.True(t, sort.Float64sAreSorted(prices), "prices should ascend: %v", prices)
}

func TestAddAndRemoveProduct(t *testing.T) {
	inventory := loginAsStandard(t)
	backpack := data.Products["backpack"].Name

	require.NoError(t, inventory.AddProductToCart(backpack))
	assert.True(t, inventory.IsProductInCart(backpack))
	count, err := inventory.CartCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, inventory.RemoveProductFromCart(backpack))
	assert.False(t, inventory.IsProductInCart(backpack))
	count, err = inventory.CartCount()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMenuOpensAndCloses(t *testing.T) {
	inventory := loginAsStandard(t)

	require.NoError(t, inventory.OpenMenu())
	assert.True(t, inventory.IsMenuOpen())

	require.NoError(t, inventory.CloseMenu())
	assert.False(t, inventory.IsMenuOpen())
}

func TestResetAppStateClearsCart(t *testing.T) {
	inventory := loginAsStandard(t)
	require.NoError(t, inventory.AddProductByIndex(0))

	require.NoError(t, inventory.ResetAppState())

	count, err := inventory.CartCount()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
