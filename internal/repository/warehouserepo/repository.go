package warehouserepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"

	"fulfilment/internal/domain"
	"fulfilment/internal/pkg/database"
	"fulfilment/internal/pkg/logger"
)

const warehousesTable = "warehouses"

var warehouseColumns = []string{
	"id", "business_unit_code", "location", "capacity", "stock", "created_at", "archived_at",
}

// WarehouseRepository é o Warehouse Store sobre PostgreSQL. As consultas usam a
// transação do contexto quando houver (database.QuerierFrom).
type WarehouseRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	builder   squirrel.StatementBuilderType
	logger    logger.Logger
}

// NewWarehouseRepository cria e retorna uma nova instância do Repositório de Armazéns.
func NewWarehouseRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *WarehouseRepository {
	return &WarehouseRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		logger:    log.With(map[string]interface{}{"component": "warehouserepo"}),
	}
}

// scanner cobre *sql.Row e *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanWarehouse(row scanner) (domain.Warehouse, error) {
	var (
		w          domain.Warehouse
		capacity   sql.NullInt64
		stock      sql.NullInt64
		archivedAt sql.NullTime
	)
	if err := row.Scan(&w.ID, &w.BusinessUnitCode, &w.Location, &capacity, &stock, &w.CreatedAt, &archivedAt); err != nil {
		return domain.Warehouse{}, err
	}
	if capacity.Valid {
		w.Capacity = domain.IntPtr(int(capacity.Int64))
	}
	if stock.Valid {
		w.Stock = domain.IntPtr(int(stock.Int64))
	}
	if archivedAt.Valid {
		t := archivedAt.Time.UTC()
		w.ArchivedAt = &t
	}
	w.CreatedAt = w.CreatedAt.UTC()
	return w, nil
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return int64(*v)
}

func nullableTime(v *time.Time) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// GetAll busca as unidades ativas ordenadas por ID.
func (r *WarehouseRepository) GetAll(ctx context.Context) ([]domain.Warehouse, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := r.builder.
		Select(warehouseColumns...).
		From(warehousesTable).
		Where(squirrel.Eq{"archived_at": nil}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, database.TranslateError("Falha ao montar consulta de armazéns", err)
	}

	rows, err := database.QuerierFrom(ctxTimeout, r.DB).QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao executar GetAll query.", err)
		return nil, database.TranslateError("Falha ao buscar armazéns ativos", err)
	}
	defer rows.Close()

	warehouses := make([]domain.Warehouse, 0)
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear armazém na iteração de GetAll.", err)
			return nil, database.TranslateError("Falha ao mapear armazéns do DB", err)
		}
		warehouses = append(warehouses, w)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de armazéns.", err)
		return nil, database.TranslateError("Erro após iteração de armazéns", err)
	}

	r.logger.Debug("GetAll concluído.", map[string]interface{}{"total_warehouses": len(warehouses)})
	return warehouses, nil
}

// Create insere a unidade e preenche o ID gerado pelo banco.
func (r *WarehouseRepository) Create(ctx context.Context, warehouse *domain.Warehouse) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := r.builder.
		Insert(warehousesTable).
		Columns("business_unit_code", "location", "capacity", "stock", "created_at", "archived_at").
		Values(
			warehouse.BusinessUnitCode, warehouse.Location,
			nullableInt(warehouse.Capacity), nullableInt(warehouse.Stock),
			warehouse.CreatedAt, nullableTime(warehouse.ArchivedAt),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return database.TranslateError("Falha ao montar inserção de armazém", err)
	}

	if err := database.QuerierFrom(ctxTimeout, r.DB).QueryRowContext(ctxTimeout, query, args...).Scan(&warehouse.ID); err != nil {
		r.logger.Error("Falha ao inserir armazém no DB.", err)
		return database.TranslateError("Falha ao criar armazém", err)
	}

	r.logger.Debug("Armazém inserido.", map[string]interface{}{"id": warehouse.ID, "business_unit_code": warehouse.BusinessUnitCode})
	return nil
}

// Update sobrescreve o registro pelo ID ou, sem ID, a unidade ativa com o mesmo
// business unit code. Nenhuma linha afetada não é erro.
func (r *WarehouseRepository) Update(ctx context.Context, warehouse *domain.Warehouse) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	stmt := r.builder.
		Update(warehousesTable).
		Set("business_unit_code", warehouse.BusinessUnitCode).
		Set("location", warehouse.Location).
		Set("capacity", nullableInt(warehouse.Capacity)).
		Set("stock", nullableInt(warehouse.Stock)).
		Set("created_at", warehouse.CreatedAt).
		Set("archived_at", nullableTime(warehouse.ArchivedAt))

	if warehouse.HasID() {
		stmt = stmt.Where(squirrel.Eq{"id": warehouse.ID})
	} else {
		stmt = stmt.Where(squirrel.Eq{"business_unit_code": warehouse.BusinessUnitCode, "archived_at": nil})
	}

	query, args, err := stmt.ToSql()
	if err != nil {
		return database.TranslateError("Falha ao montar atualização de armazém", err)
	}

	res, err := database.QuerierFrom(ctxTimeout, r.DB).ExecContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao atualizar armazém no DB.", err)
		return database.TranslateError("Falha ao atualizar armazém", err)
	}

	affected, _ := res.RowsAffected()
	r.logger.Debug("Armazém atualizado.", map[string]interface{}{
		"id": warehouse.ID, "business_unit_code": warehouse.BusinessUnitCode, "rows_affected": affected,
	})
	return nil
}

// Remove apaga o registro pelo ID ou, sem ID, a unidade ativa com o mesmo código.
func (r *WarehouseRepository) Remove(ctx context.Context, warehouse *domain.Warehouse) error {
	if warehouse == nil {
		return nil
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	stmt := r.builder.Delete(warehousesTable)
	if warehouse.HasID() {
		stmt = stmt.Where(squirrel.Eq{"id": warehouse.ID})
	} else {
		stmt = stmt.Where(squirrel.Eq{"business_unit_code": warehouse.BusinessUnitCode, "archived_at": nil})
	}

	query, args, err := stmt.ToSql()
	if err != nil {
		return database.TranslateError("Falha ao montar remoção de armazém", err)
	}

	if _, err := database.QuerierFrom(ctxTimeout, r.DB).ExecContext(ctxTimeout, query, args...); err != nil {
		r.logger.Error("Falha ao remover armazém do DB.", err)
		return database.TranslateError("Falha ao remover armazém", err)
	}
	return nil
}

// FindByBusinessUnitCode busca a unidade ativa com o código, ou nil.
func (r *WarehouseRepository) FindByBusinessUnitCode(ctx context.Context, code string) (*domain.Warehouse, error) {
	if code == "" {
		return nil, nil
	}
	return r.findOne(ctx, squirrel.Eq{"business_unit_code": code, "archived_at": nil})
}

// FindByID busca a unidade pelo ID, arquivada ou não, ou nil.
func (r *WarehouseRepository) FindByID(ctx context.Context, id int64) (*domain.Warehouse, error) {
	return r.findOne(ctx, squirrel.Eq{"id": id})
}

func (r *WarehouseRepository) findOne(ctx context.Context, where squirrel.Eq) (*domain.Warehouse, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := r.builder.
		Select(warehouseColumns...).
		From(warehousesTable).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, database.TranslateError("Falha ao montar consulta de armazém", err)
	}

	w, err := scanWarehouse(database.QuerierFrom(ctxTimeout, r.DB).QueryRowContext(ctxTimeout, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Falha ao buscar armazém no DB.", err)
		return nil, database.TranslateError("Falha ao buscar armazém", err)
	}
	return &w, nil
}
