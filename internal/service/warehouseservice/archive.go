package warehouseservice

import (
	"context"
	"strings"

	"fulfilment/internal/domain"
	apperror "fulfilment/internal/errors"
)

// Archive arquiva a unidade ativa identificada por target.BusinessUnitCode.
// O registro alterado é o buscado no Store, nunca target: a requisição pode trazer
// apenas o código, e os demais atributos não podem ser sobrescritos.
func (s *Service) Archive(ctx context.Context, target *domain.Warehouse) error {
	if target == nil {
		return apperror.NewValidationError("Warehouse data is required")
	}
	if strings.TrimSpace(target.BusinessUnitCode) == "" {
		return apperror.NewValidationError("Business unit code is required")
	}

	log := s.logger.With(map[string]interface{}{"business_unit_code": target.BusinessUnitCode})

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.findActive(ctx, target.BusinessUnitCode)
		if err != nil {
			return err
		}

		now := s.now()
		current.ArchivedAt = &now
		if err := s.store.Update(ctx, current); err != nil {
			return apperror.Propagate("Falha interna ao arquivar armazém.", err)
		}
		return nil
	})
	if err != nil {
		log.Warn("Arquivamento de armazém não concluído.", map[string]interface{}{"error": err.Error()})
		return err
	}

	log.Info("Armazém arquivado com sucesso.", nil)
	return nil
}
