package memstore

import (
	"context"
	"sort"
	"sync"

	"fulfilment/internal/domain"
	apperror "fulfilment/internal/errors"
	"fulfilment/internal/pkg/logger"
)

// txKey marca o contexto de uma unidade de trabalho em andamento.
type txKey struct{}

// Store é um Warehouse Store em memória. Também implementa o TxManager:
// unidades de trabalho são serializadas e desfeitas por snapshot em caso de erro.
// Chamadas fora de uma unidade de trabalho esperam a que estiver em andamento.
type Store struct {
	txMu   sync.Mutex // serializa unidades de trabalho e chamadas avulsas
	mu     sync.RWMutex
	rows   map[int64]domain.Warehouse
	nextID int64
	logger logger.Logger
}

// NewStore cria um Store vazio. Os IDs começam em 1.
func NewStore(log logger.Logger) *Store {
	return &Store{
		rows:   make(map[int64]domain.Warehouse),
		nextID: 1,
		logger: log.With(map[string]interface{}{"component": "memstore"}),
	}
}

// Seed insere unidades iniciais, respeitando a unicidade de unidades ativas.
func (s *Store) Seed(ctx context.Context, warehouses ...domain.Warehouse) error {
	for i := range warehouses {
		w := warehouses[i].Clone()
		if err := s.Create(ctx, &w); err != nil {
			return err
		}
	}
	return nil
}

// RunInTransaction executa fn com acesso exclusivo às escritas transacionais. Se fn
// falhar (ou entrar em pânico) o estado anterior é restaurado. Chamadas aninhadas
// reutilizam a unidade de trabalho corrente.
func (s *Store) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	rows, nextID := s.snapshot()
	defer func() {
		if p := recover(); p != nil {
			s.restore(rows, nextID)
			panic(p)
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, struct{}{})); err != nil {
		s.restore(rows, nextID)
		s.logger.Debug("Unidade de trabalho desfeita.", map[string]interface{}{"error": err.Error()})
		return err
	}
	return nil
}

// outsideTx espera a unidade de trabalho em andamento quando ctx não pertence a ela,
// para que leituras avulsas não vejam um Replace pela metade.
func (s *Store) outsideTx(ctx context.Context) func() {
	if ctx.Value(txKey{}) != nil {
		return func() {}
	}
	s.txMu.Lock()
	return s.txMu.Unlock
}

func (s *Store) snapshot() (map[int64]domain.Warehouse, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make(map[int64]domain.Warehouse, len(s.rows))
	for id, w := range s.rows {
		rows[id] = w.Clone()
	}
	return rows, s.nextID
}

func (s *Store) restore(rows map[int64]domain.Warehouse, nextID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows = rows
	s.nextID = nextID
}

// GetAll devolve as unidades ativas ordenadas por ID.
func (s *Store) GetAll(ctx context.Context) ([]domain.Warehouse, error) {
	defer s.outsideTx(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()

	warehouses := make([]domain.Warehouse, 0, len(s.rows))
	for _, w := range s.rows {
		if w.IsActive() {
			warehouses = append(warehouses, w.Clone())
		}
	}
	sort.Slice(warehouses, func(i, j int) bool { return warehouses[i].ID < warehouses[j].ID })
	return warehouses, nil
}

// Create insere a unidade e atribui o próximo ID. Uma segunda unidade ativa para o
// mesmo business unit code é recusada com ConflictError.
func (s *Store) Create(ctx context.Context, warehouse *domain.Warehouse) error {
	defer s.outsideTx(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()

	if warehouse.IsActive() {
		if _, ok := s.activeByCode(warehouse.BusinessUnitCode); ok {
			return apperror.NewConflictError("Business unit code already exists")
		}
	}

	warehouse.ID = s.nextID
	s.nextID++
	s.rows[warehouse.ID] = warehouse.Clone()

	s.logger.Debug("Armazém inserido.", map[string]interface{}{"id": warehouse.ID, "business_unit_code": warehouse.BusinessUnitCode})
	return nil
}

// Update sobrescreve o registro pelo ID ou, sem ID, pela unidade ativa com o mesmo
// business unit code. Sem registro correspondente, nada acontece.
func (s *Store) Update(ctx context.Context, warehouse *domain.Warehouse) error {
	defer s.outsideTx(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()

	var id int64
	if warehouse.HasID() {
		if _, ok := s.rows[warehouse.ID]; !ok {
			return nil
		}
		id = warehouse.ID
	} else {
		current, ok := s.activeByCode(warehouse.BusinessUnitCode)
		if !ok {
			return nil
		}
		id = current.ID
	}

	updated := warehouse.Clone()
	updated.ID = id
	s.rows[id] = updated
	return nil
}

// Remove apaga o registro pelo ID ou, sem ID, a unidade ativa com o mesmo código.
// nil é ignorado.
func (s *Store) Remove(ctx context.Context, warehouse *domain.Warehouse) error {
	if warehouse == nil {
		return nil
	}
	defer s.outsideTx(ctx)()

	s.mu.Lock()
	defer s.mu.Unlock()

	if warehouse.HasID() {
		delete(s.rows, warehouse.ID)
		return nil
	}
	if current, ok := s.activeByCode(warehouse.BusinessUnitCode); ok {
		delete(s.rows, current.ID)
	}
	return nil
}

// FindByBusinessUnitCode devolve uma cópia da unidade ativa com o código, ou nil.
func (s *Store) FindByBusinessUnitCode(ctx context.Context, code string) (*domain.Warehouse, error) {
	if code == "" {
		return nil, nil
	}
	defer s.outsideTx(ctx)()

	s.mu.RLock()
	defer s.mu.RUnlock()

	current, ok := s.activeByCode(code)
	if !ok {
		return nil, nil
	}
	w := current.Clone()
	return &w, nil
}

// FindByID devolve uma cópia do registro, arquivado ou não, ou nil.
func (s *Store) FindByID(ctx context.Context, id int64) (*domain.Warehouse, error) {
	defer s.outsideTx(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	w := stored.Clone()
	return &w, nil
}

// activeByCode exige s.mu adquirido.
func (s *Store) activeByCode(code string) (domain.Warehouse, bool) {
	for _, w := range s.rows {
		if w.IsActive() && w.BusinessUnitCode == code {
			return w, true
		}
	}
	return domain.Warehouse{}, false
}
