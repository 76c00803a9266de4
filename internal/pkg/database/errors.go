package database

import (
	"errors"

	"github.com/lib/pq"

	apperror "fulfilment/internal/errors"
)

// Códigos SQLSTATE tratados como conflito de escrita.
const (
	codeUniqueViolation      = pq.ErrorCode("23505")
	codeSerializationFailure = pq.ErrorCode("40001")
)

// TranslateError converte erros do driver em AppError. Violação de unicidade e falha de
// serialização viram ConflictError; AppErrors passam intactos e o restante vira InternalError (DB).
func TranslateError(msg string, err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUniqueViolation:
			return apperror.NewConflictErrorWithCause("Business unit code already exists", err)
		case codeSerializationFailure:
			return apperror.NewConflictErrorWithCause("Concurrent modification, retry the operation", err)
		}
	}
	var appErr apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.NewDBError(msg, err)
}
