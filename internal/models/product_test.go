// internal/models/product_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasActiveVariant(t *testing.T) {
	product := &Product{}
	assert.False(t, product.HasActiveVariant())

	product.Variants = []ProductVariant{
		{Name: "250g", IsActive: false},
		{Name: "500g", IsActive: false},
	}
	assert.False(t, product.HasActiveVariant())

	product.Variants[1].IsActive = true
	assert.True(t, product.HasActiveVariant())
}

func TestOrderStatusValidation(t *testing.T) {
	assert.True(t, OrderStatusPlaced.Valid())
	assert.True(t, OrderStatusShipped.Valid())
	assert.True(t, OrderStatusDelivered.Valid())
	assert.True(t, OrderStatusCancelled.Valid())
	assert.False(t, OrderStatus("Order lost").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestBlogCategoryValidation(t *testing.T) {
	for _, category := range BlogCategories() {
		assert.True(t, category.Valid())
	}
	assert.False(t, BlogCategory("Travel").Valid())
}
