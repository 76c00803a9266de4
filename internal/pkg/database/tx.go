package database

import (
	"context"
	"database/sql"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"fulfilment/internal/pkg/logger"
)

var tracer = otel.Tracer("fulfilment/database")

// Querier é o subconjunto comum de *sql.DB e *sql.Tx usado pelos repositórios.
// Repositórios obtêm o Querier pelo contexto para participar da transação corrente.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// txKey é a chave de contexto da transação ativa.
type txKey struct{}

// TxManager executa unidades de trabalho numa transação PostgreSQL.
type TxManager struct {
	db        *sql.DB
	isolation sql.IsolationLevel
	logger    logger.Logger
}

// NewTxManager cria um TxManager com isolamento serializable, que fecha a janela de
// corrida entre a checagem de capacidade e a escrita de duas operações concorrentes.
func NewTxManager(db *sql.DB, log logger.Logger) *TxManager {
	return &TxManager{db: db, isolation: sql.LevelSerializable, logger: log}
}

// RunInTransaction executa fn numa transação. Erro em fn (ou pânico) faz rollback;
// sucesso faz commit. Chamadas aninhadas reutilizam a transação do contexto.
func (m *TxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := TxFromContext(ctx); ok {
		return fn(ctx)
	}

	ctx, span := tracer.Start(ctx, "transaction",
		trace.WithAttributes(attribute.String("tx.isolation", m.isolation.String())))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: m.isolation})
	if err != nil {
		return TranslateError("Falha ao iniciar transação", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			m.logger.Error("Falha no rollback da transação.", rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return TranslateError("Falha ao confirmar transação", err)
	}
	return nil
}

// TxFromContext devolve a transação ativa, se houver.
func TxFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}

// QuerierFrom devolve a transação do contexto ou, na ausência, o pool.
func QuerierFrom(ctx context.Context, db *sql.DB) Querier {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return db
}
