// internal/services/order_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderSearchClause(t *testing.T) {
	clause, args := orderSearchClause("A1B2")

	// Staff paste order ids and customer emails from the table; both must
	// be searchable alongside the shipping address.
	assert.Contains(t, clause, "CAST(id AS TEXT) LIKE ?")
	assert.Contains(t, clause, "LOWER(email) LIKE ?")
	assert.Contains(t, clause, "LOWER(name) LIKE ?")
	assert.Contains(t, clause, "LOWER(address_name) LIKE ?")
	assert.Contains(t, clause, "LOWER(address_phone_number) LIKE ?")
	assert.Contains(t, clause, "LOWER(address_district) LIKE ?")

	// Deleted accounts stay out of the customer match
	assert.Contains(t, clause, "deleted_at IS NULL")

	// One lowercased substring term per placeholder
	assert.Equal(t, strings.Count(clause, "?"), len(args))
	for _, arg := range args {
		assert.Equal(t, "%a1b2%", arg)
	}
}
