// internal/services/product_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestAnyActiveVariant(t *testing.T) {
	assert.False(t, anyActiveVariant(nil))

	// Nil IsActive defaults to active
	assert.True(t, anyActiveVariant([]VariantInput{
		{Name: "250g", Price: 9.99},
	}))

	assert.False(t, anyActiveVariant([]VariantInput{
		{Name: "250g", Price: 9.99, IsActive: boolPtr(false)},
		{Name: "500g", Price: 17.99, IsActive: boolPtr(false)},
	}))

	assert.True(t, anyActiveVariant([]VariantInput{
		{Name: "250g", Price: 9.99, IsActive: boolPtr(false)},
		{Name: "500g", Price: 17.99, IsActive: boolPtr(true)},
	}))
}

func TestVariantFromInput(t *testing.T) {
	productID := uuid.New()

	variant := variantFromInput(productID, VariantInput{
		Name:            "500g",
		Price:           17.99,
		DiscountedPrice: 14.99,
		Stock:           12,
	})

	assert.Equal(t, productID, variant.ProductID)
	assert.Equal(t, "500g", variant.Name)
	assert.Equal(t, 17.99, variant.Price)
	assert.Equal(t, 14.99, variant.DiscountedPrice)
	assert.Equal(t, 12, variant.Stock)
	assert.True(t, variant.IsActive)

	inactive := variantFromInput(productID, VariantInput{
		Name:     "250g",
		Price:    9.99,
		IsActive: boolPtr(false),
	})
	assert.False(t, inactive.IsActive)
}
