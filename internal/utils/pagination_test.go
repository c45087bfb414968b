// internal/utils/pagination_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext(url string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", url, nil)
	return c
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	c := newTestContext("/v1/admin/products")

	params := GetPaginationParams(c)

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
	assert.Equal(t, "created_at", params.Sort)
	assert.Equal(t, "desc", params.Order)
	assert.Empty(t, params.Search)
}

func TestGetPaginationParamsFromQuery(t *testing.T) {
	c := newTestContext("/v1/admin/products?page=3&limit=50&sort=name&order=asc&search=honey")

	params := GetPaginationParams(c)

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 50, params.Limit)
	assert.Equal(t, "name", params.Sort)
	assert.Equal(t, "asc", params.Order)
	assert.Equal(t, "honey", params.Search)
}

func TestGetPaginationParamsRejectsGarbage(t *testing.T) {
	c := newTestContext("/v1/admin/products?page=-4&limit=9999&order=sideways")

	params := GetPaginationParams(c)

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
	assert.Equal(t, "desc", params.Order)
}

func TestClampPage(t *testing.T) {
	// 45 rows at 20 per page gives 3 pages
	assert.Equal(t, 1, ClampPage(1, 45, 20))
	assert.Equal(t, 3, ClampPage(3, 45, 20))
	assert.Equal(t, 3, ClampPage(7, 45, 20))
	assert.Equal(t, 1, ClampPage(0, 45, 20))
	assert.Equal(t, 1, ClampPage(-2, 45, 20))
}

func TestClampPageEmptyResultSet(t *testing.T) {
	// With no rows the only valid page is 1
	assert.Equal(t, 1, ClampPage(5, 0, 20))
	assert.Equal(t, 1, ClampPage(1, 0, 20))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(1, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 3, TotalPages(45, 20))
	assert.Equal(t, 0, TotalPages(45, 0))
}

func TestCreatePaginationResult(t *testing.T) {
	params := PaginationParams{Page: 2, Limit: 10}
	data := []string{"a", "b"}

	result := CreatePaginationResult(data, 25, params)

	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 10, result.Limit)
	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, data, result.Data)
}
