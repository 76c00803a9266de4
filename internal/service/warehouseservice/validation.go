package warehouseservice

import (
	"strings"

	"fulfilment/internal/domain"
	apperror "fulfilment/internal/errors"
)

// Validações de campo compartilhadas por Create e Replace. São funções puras;
// cada uma devolve um ValidationError distinto. Com exceção de RequireWarehouseData,
// todas assumem w não-nil.

func RequireWarehouseData(w *domain.Warehouse) error {
	if w == nil {
		return apperror.NewValidationError("Warehouse data is required")
	}
	return nil
}

func RequireBusinessUnitCode(w *domain.Warehouse) error {
	if strings.TrimSpace(w.BusinessUnitCode) == "" {
		return apperror.NewValidationError("Business unit code is required")
	}
	return nil
}

func RequireLocation(w *domain.Warehouse) error {
	if strings.TrimSpace(w.Location) == "" {
		return apperror.NewValidationError("Location is required")
	}
	return nil
}

func RequireCapacityPositive(w *domain.Warehouse) error {
	if w.Capacity == nil || *w.Capacity <= 0 {
		return apperror.NewValidationError("Capacity must be greater than 0")
	}
	return nil
}

func RequireStockNonNegative(w *domain.Warehouse) error {
	if w.Stock == nil || *w.Stock < 0 {
		return apperror.NewValidationError("Stock must be 0 or greater")
	}
	return nil
}

// RequireStockNotExceedCapacity assume capacidade e estoque presentes.
func RequireStockNotExceedCapacity(w *domain.Warehouse) error {
	if w.StockOrZero() > w.CapacityOrZero() {
		return apperror.NewValidationError("Stock cannot exceed capacity")
	}
	return nil
}

// ValidateForCreateOrReplace executa as seis checagens em ordem; o primeiro erro vence.
func ValidateForCreateOrReplace(w *domain.Warehouse) error {
	if err := RequireWarehouseData(w); err != nil {
		return err
	}
	checks := []func(*domain.Warehouse) error{
		RequireBusinessUnitCode,
		RequireLocation,
		RequireCapacityPositive,
		RequireStockNonNegative,
		RequireStockNotExceedCapacity,
	}
	for _, check := range checks {
		if err := check(w); err != nil {
			return err
		}
	}
	return nil
}
