package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError é a interface central para todos os erros tipados do serviço.
// Operações de domínio devolvem AppError; o Handler traduz para HTTP na borda.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION_ERROR", "NOT_FOUND")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Permite encapsular erros subjacentes
}

// --- Erros de Domínio ---

// ValidationError representa entrada malformada ou que viola uma regra de negócio
// (InvalidArgument). Nunca é persistida.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NotFoundError indica que a unidade ativa referenciada não existe.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound }
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// ConflictError representa violação de unicidade do business unit code ou
// conflito de escrita concorrente detectado pela persistência.
type ConflictError struct {
	Msg string
	Err error
}

func (e *ConflictError) Error() string    { return fmt.Sprintf("Conflito de estado: %s", e.Msg) }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict }
func (e *ConflictError) Unwrap() error    { return e.Err }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// NewConflictErrorWithCause cria um erro de conflito preservando o erro do driver.
func NewConflictErrorWithCause(msg string, err error) AppError {
	return &ConflictError{Msg: msg, Err: err}
}

// --- Erros de Infraestrutura ---

// InternalError representa falhas inesperadas no serviço, Store ou Resolver.
type InternalError struct {
	Msg string
	Err error // Erro original (e.g., erro do driver SQL)
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Erro Interno: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("Erro Interno: %s", e.Msg)
}
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError }
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor.
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para InternalError de falhas no DB.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB)", msg), err)
}

// Propagate devolve err intacto se já for um AppError; caso contrário encapsula-o
// num InternalError com a mensagem fornecida.
func Propagate(msg string, err error) error {
	if err == nil {
		return nil
	}
	var appErr AppError
	if stderrors.As(err, &appErr) {
		return err
	}
	return NewInternalError(msg, err)
}

// --- Helpers de classificação ---

// IsValidation reporta se err (ou algum erro encapsulado) é um ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return stderrors.As(err, &target)
}

// IsNotFound reporta se err é um NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return stderrors.As(err, &target)
}

// IsConflict reporta se err é um ConflictError.
func IsConflict(err error) bool {
	var target *ConflictError
	return stderrors.As(err, &target)
}

// --- Helper para o Handler (Tradução Final) ---

// MapToHTTPStatus traduz um erro para o código HTTP, categoria e mensagem.
func MapToHTTPStatus(err error) (int, string, string) {
	var appErr AppError
	if stderrors.As(err, &appErr) {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	// Erro não tipado: tratado como erro interno genérico.
	return http.StatusInternalServerError, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}
