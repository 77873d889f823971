package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos pela API
const (
	// Erros de autenticação
	ErrMissingSecret = "AUTH_001" // Cabeçalho de segredo ausente
	ErrInvalidSecret = "AUTH_002" // Segredo do agendador inválido

	// Erros do pipeline de sincronização, expostos por entrada do relatório
	ErrFluxConfig         = "CFG_001" // Configuração de flux ausente ou inválida
	ErrPlatformAuth       = "PLT_001" // Credencial externa expirada/inválida
	ErrPlatformTransient  = "PLT_002" // Falha transitória da plataforma de anúncios
	ErrDestinationFailure = "DST_001" // Falha na escrita da planilha de destino
	ErrSyncTimeout        = "TMO_001" // Timeout do processamento de um flux
	ErrSyncAlreadyRunning = "SYN_001" // Sincronização já em andamento

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingSecret:      http.StatusUnauthorized,
	ErrInvalidSecret:      http.StatusUnauthorized,
	ErrFluxConfig:         http.StatusUnprocessableEntity,
	ErrPlatformAuth:       http.StatusBadGateway,
	ErrPlatformTransient:  http.StatusBadGateway,
	ErrDestinationFailure: http.StatusBadGateway,
	ErrSyncTimeout:        http.StatusGatewayTimeout,
	ErrSyncAlreadyRunning: http.StatusConflict,
	ErrInternalServer:     http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
