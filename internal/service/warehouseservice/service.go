package warehouseservice

import (
	"context"
	"fmt"
	"time"

	"fulfilment/internal/domain"
	apperror "fulfilment/internal/errors"
	"fulfilment/internal/pkg/logger"
)

// WarehouseStore define o contrato que o Serviço espera da camada de Persistência.
// GetAll e FindByBusinessUnitCode enxergam apenas unidades ativas.
type WarehouseStore interface {
	GetAll(ctx context.Context) ([]domain.Warehouse, error)
	Create(ctx context.Context, warehouse *domain.Warehouse) error
	Update(ctx context.Context, warehouse *domain.Warehouse) error
	Remove(ctx context.Context, warehouse *domain.Warehouse) error
	FindByBusinessUnitCode(ctx context.Context, code string) (*domain.Warehouse, error)
	FindByID(ctx context.Context, id int64) (*domain.Warehouse, error)
}

// LocationResolver resolve uma localização do catálogo. (nil, nil) significa não encontrada.
type LocationResolver interface {
	ResolveByIdentifier(ctx context.Context, identifier string) (*domain.Location, error)
}

// TxManager delimita a unidade de trabalho de cada operação de ciclo de vida.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implementa as operações de ciclo de vida das unidades de armazém
// (Create, Replace, Archive) e as consultas usadas pela API.
type Service struct {
	store     WarehouseStore
	locations LocationResolver
	tx        TxManager
	logger    logger.Logger
	now       func() time.Time
}

// NewService cria e retorna uma nova instância do Serviço de Armazéns.
func NewService(store WarehouseStore, locations LocationResolver, tx TxManager, log logger.Logger) *Service {
	return &Service{
		store:     store,
		locations: locations,
		tx:        tx,
		logger:    log.With(map[string]interface{}{"component": "warehouseservice"}),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// List devolve todas as unidades ativas.
func (s *Service) List(ctx context.Context) ([]domain.Warehouse, error) {
	warehouses, err := s.store.GetAll(ctx)
	if err != nil {
		s.logger.Error("Falha ao listar armazéns no Store.", err)
		return nil, apperror.Propagate("Falha interna ao buscar armazéns.", err)
	}

	s.logger.Debug("Armazéns ativos listados.", map[string]interface{}{"count": len(warehouses)})
	return warehouses, nil
}

// GetByID busca uma unidade pela identidade, arquivada ou não.
func (s *Service) GetByID(ctx context.Context, id int64) (domain.Warehouse, error) {
	warehouse, err := s.store.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao buscar armazém por ID no Store.", err)
		return domain.Warehouse{}, apperror.Propagate("Falha interna ao buscar armazém.", err)
	}
	if warehouse == nil {
		return domain.Warehouse{}, apperror.NewNotFoundError("Warehouse unit not found")
	}
	return *warehouse, nil
}

// ArchiveByID localiza a unidade pela identidade e a arquiva pelo seu business unit code.
// Uma unidade já arquivada é NotFound: o código dela pode pertencer hoje a uma sucessora.
func (s *Service) ArchiveByID(ctx context.Context, id int64) error {
	return s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		warehouse, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !warehouse.IsActive() {
			return apperror.NewNotFoundError("Warehouse unit not found")
		}
		return s.Archive(ctx, &warehouse)
	})
}

// locationUsage resume as unidades ativas numa localização.
type locationUsage struct {
	count    int
	capacity int
}

// usageAt soma contagem e capacidade das unidades ativas em location. Unidades com
// o business unit code excludeCode são ignoradas (vazio não exclui nada).
func usageAt(active []domain.Warehouse, location, excludeCode string) locationUsage {
	var usage locationUsage
	for i := range active {
		w := &active[i]
		if !w.IsActive() || w.Location != location {
			continue
		}
		if excludeCode != "" && w.BusinessUnitCode == excludeCode {
			continue
		}
		usage.count++
		usage.capacity += w.CapacityOrZero()
	}
	return usage
}

// resolveLocation busca a localização; ausência é um erro de validação.
func (s *Service) resolveLocation(ctx context.Context, identifier string) (*domain.Location, error) {
	location, err := s.locations.ResolveByIdentifier(ctx, identifier)
	if err != nil {
		s.logger.Error("Falha ao resolver localização.", err)
		return nil, apperror.Propagate("Falha interna ao resolver localização.", err)
	}
	if location == nil {
		return nil, apperror.NewValidationError("Invalid location")
	}
	return location, nil
}

// checkLocationConstraints aplica os limites de quantidade e capacidade da localização
// à unidade candidata, desconsiderando as unidades com excludeCode.
func (s *Service) checkLocationConstraints(ctx context.Context, candidate *domain.Warehouse, excludeCode string) error {
	location, err := s.resolveLocation(ctx, candidate.Location)
	if err != nil {
		return err
	}

	active, err := s.store.GetAll(ctx)
	if err != nil {
		s.logger.Error("Falha ao listar armazéns ativos para checagem de localização.", err)
		return apperror.Propagate("Falha interna ao buscar armazéns.", err)
	}

	usage := usageAt(active, candidate.Location, excludeCode)
	if usage.count >= location.MaxNumberOfWarehouses {
		return apperror.NewValidationError("Maximum number of warehouses reached for this location")
	}
	// Comparação sem soma: capacidades próximas de MaxInt não podem estourar.
	if *candidate.Capacity > location.MaxCapacity-usage.capacity {
		return apperror.NewValidationError("Location capacity limit exceeded")
	}

	s.logger.Debug("Limites da localização verificados.", map[string]interface{}{
		"location":        location.Identification,
		"active_count":    usage.count,
		"active_capacity": usage.capacity,
		"max_count":       location.MaxNumberOfWarehouses,
		"max_capacity":    location.MaxCapacity,
	})
	return nil
}

// findActive busca a unidade ativa de um business unit code, ou NotFound.
func (s *Service) findActive(ctx context.Context, code string) (*domain.Warehouse, error) {
	current, err := s.store.FindByBusinessUnitCode(ctx, code)
	if err != nil {
		s.logger.Error("Falha ao buscar armazém por business unit code.", err)
		return nil, apperror.Propagate(fmt.Sprintf("Falha interna ao buscar armazém %s.", code), err)
	}
	if current == nil || !current.IsActive() {
		return nil, apperror.NewNotFoundError("Warehouse unit not found")
	}
	return current, nil
}
