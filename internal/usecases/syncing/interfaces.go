package syncing

import (
	"context"

	"github.com/vfg2006/flux-sync-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/flux-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/flux-sync-api/internal/domain"
)

// Extractor busca as linhas brutas da plataforma de anúncios para um flux
type Extractor interface {
	// Extract busca os insights da janela atual conforme a configuração do flux
	Extract(ctx context.Context, accountID string, cfg domain.SyncConfig) (*meta.ExtractionResult, error)

	// ExtractReference busca os insights do período imediatamente anterior,
	// usados na aba de análise comparativa
	ExtractReference(ctx context.Context, accountID string, cfg domain.SyncConfig) ([]metadomain.AdInsight, error)
}

// Writer escreve as linhas normalizadas na planilha de destino do tenant
type Writer interface {
	// Write substitui o conteúdo da aba de dados pelas linhas da execução
	Write(ctx context.Context, flux *domain.Flux, breakdowns []string, rows []domain.CanonicalRow) error

	// WriteAnalysis escreve a tabela comparativa na aba de análise
	WriteAnalysis(ctx context.Context, flux *domain.Flux, current, reference domain.MetricSummary) error
}

// ExtractorFactory cria um extrator vinculado à credencial de um tenant.
// Cada flux recebe sua própria instância: nenhum estado de credencial é
// compartilhado entre tenants.
type ExtractorFactory func(accessToken string) Extractor

// WriterFactory cria um escritor vinculado à credencial de planilha de um tenant
type WriterFactory func(refreshToken string) Writer
