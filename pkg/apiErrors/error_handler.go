package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro expostos aos clientes do dashboard
const (
	// Erros de validação
	ErrInvalidRequest   = "VAL_001" // Requisição inválida
	ErrInvalidFormat    = "VAL_003" // Formato de dados inválido
	ErrNotFound         = "VAL_004" // Rota inexistente
	ErrMethodNotAllowed = "VAL_005" // Método não suportado pela rota

	// Erros de dados
	ErrNoData = "DATA_001" // Nenhum registro para o filtro selecionado

	// Erros do modelo
	ErrModelUnavailable = "MDL_001" // Modelo não carregado
	ErrPredictionFailed = "MDL_002" // Falha ao executar a previsão

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrInvalidFormat:    http.StatusBadRequest,
	ErrNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,
	ErrNoData:           http.StatusNotFound,
	ErrModelUnavailable: http.StatusServiceUnavailable,
	ErrPredictionFailed: http.StatusInternalServerError,
	ErrInternalServer:   http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
