package warehouseservice

import (
	"context"

	"fulfilment/internal/domain"
	apperror "fulfilment/internal/errors"
)

// Replace arquiva a unidade ativa de successor.BusinessUnitCode e cria successor como
// sua sucessora. Arquivamento e criação ocorrem na mesma transação: ou ambos são
// confirmados ou nenhum é.
//
// Os limites da localização são recalculados sem a unidade corrente, que está prestes
// a ser arquivada; assim uma unidade pode ser substituída na mesma localização até o
// seu próprio tamanho anterior.
func (s *Service) Replace(ctx context.Context, successor *domain.Warehouse) error {
	if err := ValidateForCreateOrReplace(successor); err != nil {
		s.logger.Warn("Substituição rejeitada na validação.", map[string]interface{}{"error": err.Error()})
		return err
	}

	log := s.logger.With(map[string]interface{}{
		"business_unit_code": successor.BusinessUnitCode,
		"location":           successor.Location,
	})
	log.Debug("Iniciando substituição de armazém.", nil)

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.findActive(ctx, successor.BusinessUnitCode)
		if err != nil {
			return err
		}

		if *successor.Capacity < current.StockOrZero() {
			return apperror.NewValidationError("New warehouse capacity must accommodate stock from previous warehouse")
		}
		if *successor.Stock != current.StockOrZero() {
			return apperror.NewValidationError("Stock must match the previous warehouse stock")
		}

		if err := s.checkLocationConstraints(ctx, successor, successor.BusinessUnitCode); err != nil {
			return err
		}

		now := s.now()
		current.ArchivedAt = &now
		if err := s.store.Update(ctx, current); err != nil {
			return apperror.Propagate("Falha interna ao arquivar armazém corrente.", err)
		}

		successor.ID = 0
		successor.CreatedAt = now
		successor.ArchivedAt = nil
		if err := s.store.Create(ctx, successor); err != nil {
			return apperror.Propagate("Falha interna ao criar armazém sucessor.", err)
		}

		log.Debug("Unidade corrente arquivada.", map[string]interface{}{"archived_id": current.ID})
		return nil
	})
	if err != nil {
		log.Warn("Substituição de armazém não concluída.", map[string]interface{}{"error": err.Error()})
		return err
	}

	log.Info("Armazém substituído com sucesso.", map[string]interface{}{"id": successor.ID})
	return nil
}
