package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// APIError preserva o código numérico da plataforma para o chamador, que
// precisa distinguir sessão expirada de falha genérica
type APIError struct {
	Details ErrorDetails
}

func (e *APIError) Error() string {
	return fmt.Sprintf("meta API error (code %d, subcode %d): %s",
		e.Details.Code, e.Details.ErrorSubcode, e.Details.Message)
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *APIError) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Details.Code == 190 ||
		(e.Details.Type == "OAuthException" && (e.Details.ErrorSubcode == 460 || e.Details.ErrorSubcode == 463 || e.Details.ErrorSubcode == 467))
}

// IsInvalidParameter verifica se o erro indica uma combinação de parâmetros
// não suportada (código 100), como um breakdown rejeitado pela plataforma
func (e *APIError) IsInvalidParameter() bool {
	return e.Details.Code == 100
}

// IsRateLimited verifica se a plataforma aplicou limite de requisições
func (e *APIError) IsRateLimited() bool {
	return e.Details.Code == 4 || e.Details.Code == 17 || e.Details.Code == 32
}
