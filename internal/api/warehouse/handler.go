package warehouse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"fulfilment/internal/domain"
	apperror "fulfilment/internal/errors"
	"fulfilment/internal/pkg/logger"
)

// WarehouseService define o contrato que o Handler espera da camada de Serviço.
type WarehouseService interface {
	List(ctx context.Context) ([]domain.Warehouse, error)
	GetByID(ctx context.Context, id int64) (domain.Warehouse, error)
	Create(ctx context.Context, candidate *domain.Warehouse) error
	Replace(ctx context.Context, successor *domain.Warehouse) error
	ArchiveByID(ctx context.Context, id int64) error
}

// WarehouseDTO é a representação de uma unidade na API. O ID trafega como string.
// @Description Unidade de armazém.
type WarehouseDTO struct {
	ID               string `json:"id,omitempty" example:"1"`
	BusinessUnitCode string `json:"businessUnitCode" example:"MWH.001"`
	Location         string `json:"location" example:"ZWOLLE-001"`
	Capacity         *int   `json:"capacity" example:"30"`
	Stock            *int   `json:"stock" example:"10"`
}

// toDTO converte o modelo de domínio para a resposta da API.
func toDTO(w domain.Warehouse) WarehouseDTO {
	dto := WarehouseDTO{
		BusinessUnitCode: w.BusinessUnitCode,
		Location:         w.Location,
		Capacity:         w.Capacity,
		Stock:            w.Stock,
	}
	if w.HasID() {
		dto.ID = strconv.FormatInt(w.ID, 10)
	}
	return dto
}

// toDomain converte o corpo da requisição. O ID enviado pelo cliente é ignorado.
func (dto WarehouseDTO) toDomain() *domain.Warehouse {
	return &domain.Warehouse{
		BusinessUnitCode: dto.BusinessUnitCode,
		Location:         dto.Location,
		Capacity:         dto.Capacity,
		Stock:            dto.Stock,
	}
}

// Handler agrupa todos os métodos de Handler de armazéns.
type Handler struct {
	Service WarehouseService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc WarehouseService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse processa erros de serviço e envia respostas padronizadas ao cliente.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		if data == nil {
			w.WriteHeader(successStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
			h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
		}
		return
	}

	// TRATAMENTO DE ERROS
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		h.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	errorResponse := domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse)
}

// decodeBody lê o corpo JSON; falhas viram ValidationError.
func decodeBody(r *http.Request) (WarehouseDTO, error) {
	var dto WarehouseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		return dto, apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	return dto, nil
}

// pathID extrai o {id} numérico da rota.
func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewValidationError(fmt.Sprintf("ID inválido: %q", raw))
	}
	return id, nil
}

// ListHandler lida com a requisição GET /warehouse.
// @Summary Lista as unidades ativas
// @Tags warehouses
// @Produce json
// @Success 200 {array} WarehouseDTO "Unidades ativas"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /warehouse [get]
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	warehouses, err := h.Service.List(r.Context())
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	dtos := make([]WarehouseDTO, 0, len(warehouses))
	for _, wh := range warehouses {
		dtos = append(dtos, toDTO(wh))
	}
	h.handleServiceResponse(w, r, dtos, nil, http.StatusOK)
}

// CreateHandler lida com a requisição POST /warehouse.
// @Summary Cria uma nova unidade
// @Description Valida a unidade e os limites da localização antes de persistir.
// @Tags warehouses
// @Accept json
// @Produce json
// @Param warehouse body WarehouseDTO true "Dados da unidade"
// @Success 201 {object} WarehouseDTO "Unidade criada"
// @Failure 400 {object} domain.ErrorResponse "Dados inválidos ou limite da localização"
// @Failure 409 {object} domain.ErrorResponse "Business unit code já ativo"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /warehouse [post]
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	dto, err := decodeBody(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	candidate := dto.toDomain()
	if err := h.Service.Create(r.Context(), candidate); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, toDTO(*candidate), nil, http.StatusCreated)
}

// GetByIDHandler lida com a requisição GET /warehouse/{id}.
// @Summary Obtém uma unidade por ID
// @Description Unidades arquivadas também são devolvidas.
// @Tags warehouses
// @Produce json
// @Param id path string true "ID da unidade"
// @Success 200 {object} WarehouseDTO "Unidade encontrada"
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Unidade não encontrada"
// @Router /warehouse/{id} [get]
func (h *Handler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	warehouse, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, toDTO(warehouse), nil, http.StatusOK)
}

// ArchiveHandler lida com a requisição DELETE /warehouse/{id}.
// @Summary Arquiva uma unidade
// @Tags warehouses
// @Param id path string true "ID da unidade"
// @Success 204 "Unidade arquivada"
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Unidade não encontrada ou já arquivada"
// @Router /warehouse/{id} [delete]
func (h *Handler) ArchiveHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	if err := h.Service.ArchiveByID(r.Context(), id); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, nil, nil, http.StatusNoContent)
}

// ReplaceHandler lida com a requisição POST /warehouse/{businessUnitCode}/replacement.
// @Summary Substitui a unidade ativa de um business unit code
// @Description Arquiva a unidade corrente e cria a sucessora numa única transação.
// @Tags warehouses
// @Accept json
// @Produce json
// @Param businessUnitCode path string true "Business unit code"
// @Param warehouse body WarehouseDTO true "Dados da unidade sucessora"
// @Success 200 {object} WarehouseDTO "Unidade sucessora"
// @Failure 400 {object} domain.ErrorResponse "Dados inválidos ou limite da localização"
// @Failure 404 {object} domain.ErrorResponse "Nenhuma unidade ativa para o código"
// @Failure 409 {object} domain.ErrorResponse "Conflito de escrita concorrente"
// @Router /warehouse/{businessUnitCode}/replacement [post]
func (h *Handler) ReplaceHandler(w http.ResponseWriter, r *http.Request) {
	dto, err := decodeBody(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	successor := dto.toDomain()
	// O código da rota prevalece sobre o do corpo.
	successor.BusinessUnitCode = r.PathValue("businessUnitCode")

	if err := h.Service.Replace(r.Context(), successor); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, toDTO(*successor), nil, http.StatusOK)
}
