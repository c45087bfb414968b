// internal/services/export_service_test.go
package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m-sowraj/alkarahm-admin/internal/models"
)

func TestExportFilename(t *testing.T) {
	want := fmt.Sprintf("products_%s.xlsx", time.Now().Format("20060102"))
	assert.Equal(t, want, ExportFilename("products"))
}

func TestExportParamsCoverWholeResultSet(t *testing.T) {
	page, limit := exportParams()
	assert.Equal(t, 1, page)
	assert.Equal(t, exportRowLimit, limit)
}

func TestVariantCellFlattensToOneCell(t *testing.T) {
	variants := []models.ProductVariant{
		{Name: "250g", Price: 9.99},
		{Name: "500g", Price: 17.99},
	}

	assert.Equal(t, "250g (9.99), 500g (17.99)", variantCell(variants))
	assert.Equal(t, "", variantCell(nil))
}

func TestListCellFlattensToOneCell(t *testing.T) {
	assert.Equal(t, "honey, organic, gift", listCell([]string{"honey", "organic", "gift"}))
	assert.Equal(t, "", listCell(nil))
}

func TestOrderItemsCell(t *testing.T) {
	items := []models.OrderItem{
		{ProductName: "Sidr Honey", VariantName: "500g", Quantity: 2},
		{ProductName: "Gift Box", Quantity: 1},
	}

	assert.Equal(t, "Sidr Honey / 500g x2, Gift Box x1", orderItemsCell(items))
	assert.Equal(t, "", orderItemsCell(nil))
}
