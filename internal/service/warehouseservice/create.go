package warehouseservice

import (
	"context"

	"fulfilment/internal/domain"
	apperror "fulfilment/internal/errors"
)

// Create valida e insere uma nova unidade ativa. candidate é alterado no lugar:
// recebe CreatedAt, ArchivedAt nil e o ID atribuído pelo Store.
// Nenhuma escrita ocorre se alguma checagem falhar.
func (s *Service) Create(ctx context.Context, candidate *domain.Warehouse) error {
	if err := ValidateForCreateOrReplace(candidate); err != nil {
		s.logger.Warn("Armazém rejeitado na validação.", map[string]interface{}{"error": err.Error()})
		return err
	}

	log := s.logger.With(map[string]interface{}{
		"business_unit_code": candidate.BusinessUnitCode,
		"location":           candidate.Location,
	})
	log.Debug("Iniciando criação de armazém.", nil)

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.store.FindByBusinessUnitCode(ctx, candidate.BusinessUnitCode)
		if err != nil {
			return apperror.Propagate("Falha interna ao buscar armazém.", err)
		}
		if existing != nil {
			return apperror.NewConflictError("Business unit code already exists")
		}

		if err := s.checkLocationConstraints(ctx, candidate, ""); err != nil {
			return err
		}

		candidate.CreatedAt = s.now()
		candidate.ArchivedAt = nil

		if err := s.store.Create(ctx, candidate); err != nil {
			return apperror.Propagate("Falha interna ao criar armazém.", err)
		}
		return nil
	})
	if err != nil {
		log.Warn("Criação de armazém não concluída.", map[string]interface{}{"error": err.Error()})
		return err
	}

	log.Info("Armazém criado com sucesso.", map[string]interface{}{"id": candidate.ID})
	return nil
}
