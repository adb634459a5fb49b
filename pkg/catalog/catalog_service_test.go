package catalog

import (
	"context"
	"testing"
	"time"

	"FreshBasket-Backend/domain"
	"FreshBasket-Backend/entities"
	"FreshBasket-Backend/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCatalog(t *testing.T, db *gorm.DB) (vegetables, dairy entities.Category) {
	t.Helper()

	vegetables = entities.Category{ID: uuid.New(), Name: "Vegetables"}
	dairy = entities.Category{ID: uuid.New(), Name: "Dairy"}
	require.NoError(t, db.Create(&vegetables).Error)
	require.NoError(t, db.Create(&dairy).Error)

	products := []entities.Product{
		{ID: uuid.New(), Name: "Tomato", Price: 40, Unit: "kg", CategoryID: vegetables.ID, IsActive: true, IsFeatured: true, StockQuantity: 100},
		{ID: uuid.New(), Name: "Potato", Price: 25, Unit: "kg", CategoryID: vegetables.ID, IsActive: true, StockQuantity: 200},
		{ID: uuid.New(), Name: "Butter", Price: 120, Unit: "piece", CategoryID: dairy.ID, IsActive: true, IsFeatured: true, StockQuantity: 50},
		{ID: uuid.New(), Name: "Paneer", Price: 90, Unit: "piece", CategoryID: dairy.ID, IsActive: false, StockQuantity: 30},
	}
	for i := range products {
		products[i].CreatedAt = time.Now().Add(time.Duration(i) * time.Second)
		require.NoError(t, db.Create(&products[i]).Error)
	}

	return vegetables, dairy
}

func newTestCatalogService(t *testing.T) (CatalogService, *gorm.DB) {
	t.Helper()
	db := testutil.OpenTestDB(t)
	return NewCatalogService(NewCatalogRepository(db)), db
}

func TestListProductsSkipsInactive(t *testing.T) {
	service, db := newTestCatalogService(t)
	seedCatalog(t, db)

	products, err := service.ListProducts(context.Background(), domain.ProductFilter{})
	require.NoError(t, err)

	assert.Len(t, products, 3)
	for _, p := range products {
		assert.NotEqual(t, "Paneer", p.Name)
	}
}

func TestListProductsByCategory(t *testing.T) {
	service, db := newTestCatalogService(t)
	_, dairy := seedCatalog(t, db)

	products, err := service.ListProducts(context.Background(), domain.ProductFilter{CategoryID: dairy.ID.String()})
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "Butter", products[0].Name)
}

func TestListProductsSearchIsCaseInsensitive(t *testing.T) {
	service, db := newTestCatalogService(t)
	seedCatalog(t, db)

	products, err := service.ListProducts(context.Background(), domain.ProductFilter{Search: "TOM"})
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "Tomato", products[0].Name)
}

func TestListProductsIncludesCategory(t *testing.T) {
	service, db := newTestCatalogService(t)
	vegetables, _ := seedCatalog(t, db)

	products, err := service.ListProducts(context.Background(), domain.ProductFilter{Search: "Potato"})
	require.NoError(t, err)

	require.Len(t, products, 1)
	require.NotNil(t, products[0].Category)
	assert.Equal(t, vegetables.Name, products[0].Category.Name)
	assert.Equal(t, vegetables.ID.String(), products[0].Category.ID)
}

func TestListProductsPriceRange(t *testing.T) {
	service, db := newTestCatalogService(t)
	seedCatalog(t, db)

	products, err := service.ListProducts(context.Background(), domain.ProductFilter{MinPrice: 30, MaxPrice: 100})
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "Tomato", products[0].Name)
}

func TestListProductsSortByPrice(t *testing.T) {
	service, db := newTestCatalogService(t)
	seedCatalog(t, db)

	asc, err := service.ListProducts(context.Background(), domain.ProductFilter{SortBy: domain.SortByPriceAsc})
	require.NoError(t, err)
	require.Len(t, asc, 3)
	assert.Equal(t, "Potato", asc[0].Name)
	assert.Equal(t, "Butter", asc[2].Name)

	desc, err := service.ListProducts(context.Background(), domain.ProductFilter{SortBy: domain.SortByPriceDesc})
	require.NoError(t, err)
	require.Len(t, desc, 3)
	assert.Equal(t, "Butter", desc[0].Name)
	assert.Equal(t, "Potato", desc[2].Name)
}

func TestGetFeaturedProducts(t *testing.T) {
	service, db := newTestCatalogService(t)
	seedCatalog(t, db)

	products, err := service.GetFeaturedProducts(context.Background(), 0)
	require.NoError(t, err)

	assert.Len(t, products, 2)
	for _, p := range products {
		assert.True(t, p.IsFeatured)
	}

	limited, err := service.GetFeaturedProducts(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestGetProductNotFoundForInactive(t *testing.T) {
	service, db := newTestCatalogService(t)
	seedCatalog(t, db)

	var paneer entities.Product
	require.NoError(t, db.Where("name = ?", "Paneer").First(&paneer).Error)

	_, err := service.GetProduct(context.Background(), paneer.ID.String())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetProductUnknownID(t *testing.T) {
	service, db := newTestCatalogService(t)
	seedCatalog(t, db)

	_, err := service.GetProduct(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestListCategoriesSortedByName(t *testing.T) {
	service, db := newTestCatalogService(t)
	seedCatalog(t, db)

	categories, err := service.ListCategories(context.Background())
	require.NoError(t, err)

	require.Len(t, categories, 2)
	assert.Equal(t, "Dairy", categories[0].Name)
	assert.Equal(t, "Vegetables", categories[1].Name)
}
