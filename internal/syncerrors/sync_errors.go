package syncerrors

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifica as falhas do pipeline de sincronização. A classificação
// decide o que aparece no relatório da execução; nenhuma dessas falhas
// interrompe o lote.
type Kind string

const (
	// KindConfig indica configuração de flux ausente ou inválida (não é retentado)
	KindConfig Kind = "ConfigError"
	// KindAuth indica credencial externa expirada ou inválida; precisa ser
	// exposta distintamente para que o tenant reconecte a conta
	KindAuth Kind = "AuthError"
	// KindTransientPlatform indica falha transitória da plataforma de anúncios
	// (limite de requisições, combinação de parâmetros não suportada)
	KindTransientPlatform Kind = "TransientPlatformError"
	// KindDestination indica falha de escrita/criação na planilha de destino
	KindDestination Kind = "DestinationError"
	// KindTimeout indica que o prazo por flux foi excedido
	KindTimeout Kind = "Timeout"
	// KindInternal cobre falhas não mapeadas (pânico capturado, banco etc.)
	KindInternal Kind = "InternalError"
)

// SyncError envolve uma falha do pipeline com sua classificação
type SyncError struct {
	Kind Kind
	Err  error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func Config(err error) *SyncError {
	return &SyncError{Kind: KindConfig, Err: err}
}

func Auth(err error) *SyncError {
	return &SyncError{Kind: KindAuth, Err: err}
}

func TransientPlatform(err error) *SyncError {
	return &SyncError{Kind: KindTransientPlatform, Err: err}
}

func Destination(err error) *SyncError {
	return &SyncError{Kind: KindDestination, Err: err}
}

func Timeout(err error) *SyncError {
	return &SyncError{Kind: KindTimeout, Err: err}
}

func Internal(err error) *SyncError {
	return &SyncError{Kind: KindInternal, Err: err}
}

// Classify extrai a classificação de um erro do pipeline. Timeouts de
// contexto contam como Timeout mesmo sem terem sido envolvidos.
func Classify(err error) Kind {
	if err == nil {
		return ""
	}

	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Kind
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}

	return KindInternal
}
