package warehouseservice_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"fulfilment/internal/domain"
	"fulfilment/internal/pkg/logger"
	"fulfilment/internal/service/warehouseservice"
)

// MockWarehouseStore é uma implementação mock da interface WarehouseStore
type MockWarehouseStore struct {
	mock.Mock
}

func (m *MockWarehouseStore) GetAll(ctx context.Context) ([]domain.Warehouse, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]domain.Warehouse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWarehouseStore) Create(ctx context.Context, warehouse *domain.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseStore) Update(ctx context.Context, warehouse *domain.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseStore) Remove(ctx context.Context, warehouse *domain.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseStore) FindByBusinessUnitCode(ctx context.Context, code string) (*domain.Warehouse, error) {
	args := m.Called(ctx, code)
	if v := args.Get(0); v != nil {
		return v.(*domain.Warehouse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWarehouseStore) FindByID(ctx context.Context, id int64) (*domain.Warehouse, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Warehouse), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockLocationResolver é uma implementação mock da interface LocationResolver
type MockLocationResolver struct {
	mock.Mock
}

func (m *MockLocationResolver) ResolveByIdentifier(ctx context.Context, identifier string) (*domain.Location, error) {
	args := m.Called(ctx, identifier)
	if v := args.Get(0); v != nil {
		return v.(*domain.Location), args.Error(1)
	}
	return nil, args.Error(1)
}

// passthroughTx executa fn diretamente e conta as unidades de trabalho abertas.
type passthroughTx struct {
	runs int
}

func (p *passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.runs++
	return fn(ctx)
}

func newTestService(store *MockWarehouseStore, resolver *MockLocationResolver) (*warehouseservice.Service, *passthroughTx) {
	tx := &passthroughTx{}
	return warehouseservice.NewService(store, resolver, tx, logger.NewNop()), tx
}

func newWarehouse(code, location string, capacity, stock int) *domain.Warehouse {
	return &domain.Warehouse{
		BusinessUnitCode: code,
		Location:         location,
		Capacity:         domain.IntPtr(capacity),
		Stock:            domain.IntPtr(stock),
	}
}

func existingWarehouse(id int64, code, location string, capacity, stock int) domain.Warehouse {
	w := newWarehouse(code, location, capacity, stock)
	w.ID = id
	w.CreatedAt = time.Now().Add(-24 * time.Hour)
	return *w
}
