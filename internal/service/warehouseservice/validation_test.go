package warehouseservice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fulfilment/internal/domain"
	apperror "fulfilment/internal/errors"
	"fulfilment/internal/service/warehouseservice"
)

func TestValidateForCreateOrReplace_Valid(t *testing.T) {
	err := warehouseservice.ValidateForCreateOrReplace(newWarehouse("BU-001", "AMSTERDAM-001", 20, 20))

	assert.NoError(t, err)
}

func TestValidateForCreateOrReplace_Failures(t *testing.T) {
	cases := []struct {
		name    string
		input   *domain.Warehouse
		message string
	}{
		{"sem dados", nil, "Warehouse data is required"},
		{"código vazio", newWarehouse("", "AMSTERDAM-001", 20, 5), "Business unit code is required"},
		{"código em branco", newWarehouse("   \t", "AMSTERDAM-001", 20, 5), "Business unit code is required"},
		{"localização vazia", newWarehouse("BU-001", "", 20, 5), "Location is required"},
		{"localização em branco", newWarehouse("BU-001", "  ", 20, 5), "Location is required"},
		{"capacidade zero", newWarehouse("BU-001", "AMSTERDAM-001", 0, 0), "Capacity must be greater than 0"},
		{"capacidade negativa", newWarehouse("BU-001", "AMSTERDAM-001", -1, 0), "Capacity must be greater than 0"},
		{"capacidade ausente", &domain.Warehouse{BusinessUnitCode: "BU-001", Location: "AMSTERDAM-001", Stock: domain.IntPtr(1)}, "Capacity must be greater than 0"},
		{"estoque negativo", newWarehouse("BU-001", "AMSTERDAM-001", 20, -1), "Stock must be 0 or greater"},
		{"estoque ausente", &domain.Warehouse{BusinessUnitCode: "BU-001", Location: "AMSTERDAM-001", Capacity: domain.IntPtr(20)}, "Stock must be 0 or greater"},
		{"estoque acima da capacidade", newWarehouse("BU-001", "AMSTERDAM-001", 20, 21), "Stock cannot exceed capacity"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := warehouseservice.ValidateForCreateOrReplace(tc.input)

			assert.Error(t, err)
			assert.IsType(t, &apperror.ValidationError{}, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

// TestValidateForCreateOrReplace_FirstFailureWins garante que apenas o primeiro erro é reportado.
func TestValidateForCreateOrReplace_FirstFailureWins(t *testing.T) {
	w := newWarehouse(" ", "", -5, -1)

	err := warehouseservice.ValidateForCreateOrReplace(w)

	assert.Contains(t, err.Error(), "Business unit code is required")
	assert.NotContains(t, err.Error(), "Location")
}

func TestRequireStockNotExceedCapacity_Boundary(t *testing.T) {
	assert.NoError(t, warehouseservice.RequireStockNotExceedCapacity(newWarehouse("BU", "L", 10, 10)))
	assert.Error(t, warehouseservice.RequireStockNotExceedCapacity(newWarehouse("BU", "L", 10, 11)))
}
