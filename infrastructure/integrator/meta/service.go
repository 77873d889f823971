package meta

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/flux-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/flux-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/flux-sync-api/internal/config"
	"github.com/vfg2006/flux-sync-api/internal/domain"
	"github.com/vfg2006/flux-sync-api/internal/syncerrors"
	"github.com/vfg2006/flux-sync-api/pkg/utils"
)

const (
	insightFields = "campaign_id,campaign_name,adset_id,adset_name,ad_id,ad_name," +
		"spend,impressions,clicks,ctr,cpc,cpm,actions,purchase_roas,date_start,date_stop"

	// Limite da plataforma para consultas de criativos em lote
	creativeBatchSize = 50
)

// ExtractionResult carrega as linhas brutas e os breakdowns efetivamente
// aplicados — que podem ser menos do que os configurados quando a
// plataforma rejeita a combinação e a retentativa remove o parâmetro.
type ExtractionResult struct {
	Rows              []metadomain.AdInsight
	AppliedBreakdowns []string
	BreakdownFallback bool
}

// MetaIntegrator implementa a extração de insights para um flux. Cada
// instância é vinculada à credencial de um tenant via fábrica de clientes.
type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// Extract busca as linhas brutas de insights conforme a configuração do
// flux. Um breakdown rejeitado pela plataforma dispara exatamente uma
// retentativa sem o parâmetro de breakdown.
func (s *MetaIntegrator) Extract(ctx context.Context, accountID string, cfg domain.SyncConfig) (*ExtractionResult, error) {
	params := s.buildInsightParams(cfg.Granularity, time.Now())
	applied := s.applyBreakdownParam(params, cfg.Breakdowns)

	rows, err := s.Client.GetAdInsights(ctx, accountID, params)
	if err != nil {
		var apiErr *metadomain.APIError
		if errors.As(err, &apiErr) && apiErr.IsInvalidParameter() && len(applied) > 0 {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"breakdowns": applied,
			}).Warn("insights: breakdown rejeitado pela plataforma, retentando sem breakdown")

			params.Del("breakdowns")
			rows, err = s.Client.GetAdInsights(ctx, accountID, params)
			if err != nil {
				return nil, classifyPlatformError(err)
			}

			result := &ExtractionResult{Rows: rows, BreakdownFallback: true}
			s.mergeVisuals(ctx, accountID, cfg, result)
			return result, nil
		}

		return nil, classifyPlatformError(err)
	}

	result := &ExtractionResult{Rows: rows, AppliedBreakdowns: applied}
	s.mergeVisuals(ctx, accountID, cfg, result)
	return result, nil
}

// ExtractReference busca os insights do período imediatamente anterior ao
// atual, usados como referência na aba de análise. Sem breakdowns e sem
// visuais — a análise compara apenas os agregados.
func (s *MetaIntegrator) ExtractReference(ctx context.Context, accountID string, cfg domain.SyncConfig) ([]metadomain.AdInsight, error) {
	params := s.buildReferenceParams(cfg.Granularity, time.Now())

	rows, err := s.Client.GetAdInsights(ctx, accountID, params)
	if err != nil {
		return nil, classifyPlatformError(err)
	}

	return rows, nil
}

// buildInsightParams constrói a janela de tempo a partir da granularidade.
// O mapeamento é fixo; intervalos arbitrários não são suportados.
func (s *MetaIntegrator) buildInsightParams(granularity domain.Granularity, now time.Time) url.Values {
	params := url.Values{}
	params.Set("level", "ad")
	params.Set("fields", insightFields)
	params.Set("limit", fmt.Sprintf("%d", s.cfg.Meta.PageLimit))

	switch granularity {
	case domain.GranularityHourly:
		params.Set("date_preset", "today")
		params.Set("time_increment", "hourly")
	case domain.GranularityWeekly:
		since, until := utils.WeekRangeEndingAt(now)
		params.Set("time_range", timeRangeJSON(since, until))
	default: // Daily
		params.Set("date_preset", "yesterday")
	}

	return params
}

// buildReferenceParams constrói a janela imediatamente anterior à atual
func (s *MetaIntegrator) buildReferenceParams(granularity domain.Granularity, now time.Time) url.Values {
	params := url.Values{}
	params.Set("level", "ad")
	params.Set("fields", insightFields)
	params.Set("limit", fmt.Sprintf("%d", s.cfg.Meta.PageLimit))

	switch granularity {
	case domain.GranularityHourly:
		params.Set("date_preset", "yesterday")
	case domain.GranularityWeekly:
		since, until := utils.WeekRangeEndingAt(now.AddDate(0, 0, -7))
		params.Set("time_range", timeRangeJSON(since, until))
	default: // Daily
		dayBefore := now.AddDate(0, 0, -2)
		params.Set("time_range", timeRangeJSON(dayBefore, dayBefore))
	}

	return params
}

// applyBreakdownParam envia apenas o primeiro breakdown mapeável. As regras
// combinatórias de breakdowns da plataforma não são modeladas — limitação
// documentada, não um bug silencioso. Dimensões desconhecidas e excedentes
// são registradas e ignoradas.
func (s *MetaIntegrator) applyBreakdownParam(params url.Values, breakdowns []string) []string {
	for i, name := range breakdowns {
		platformDimension, ok := domain.BreakdownDimensions[name]
		if !ok {
			logrus.WithField("breakdown", name).Warn("insights: breakdown desconhecido ignorado")
			continue
		}

		params.Set("breakdowns", platformDimension)

		if len(breakdowns) > i+1 {
			logrus.WithFields(logrus.Fields{
				"applied": name,
				"ignored": breakdowns[i+1:],
			}).Warn("insights: múltiplos breakdowns configurados, apenas o primeiro é enviado")
		}

		return []string{name}
	}

	return nil
}

// mergeVisuals executa a segunda fase da extração: resolve as miniaturas
// dos criativos em lotes e as mescla de volta nas linhas por ad_id. A falha
// de um lote é registrada e pulada — não aborta a extração.
func (s *MetaIntegrator) mergeVisuals(ctx context.Context, accountID string, cfg domain.SyncConfig, result *ExtractionResult) {
	if !cfg.EnableVisuals || len(result.Rows) == 0 {
		return
	}

	adIDs := make([]string, 0, len(result.Rows))
	seen := make(map[string]bool)
	for _, row := range result.Rows {
		if row.AdID != "" && !seen[row.AdID] {
			seen[row.AdID] = true
			adIDs = append(adIDs, row.AdID)
		}
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"total_ads":  len(adIDs),
	}).Info("insights: visuais habilitados, buscando miniaturas de criativos")

	creativeMap := make(map[string]metadomain.AdWithCreative)
	for _, batch := range utils.ChunkStrings(adIDs, creativeBatchSize) {
		creatives, err := s.Client.GetAdCreatives(ctx, batch)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"batch_size": len(batch),
				"error":      err.Error(),
			}).Warn("insights: falha ao buscar lote de criativos, pulando")
			continue
		}

		for adID, creative := range creatives {
			creativeMap[adID] = creative
		}
	}

	for i := range result.Rows {
		if details, ok := creativeMap[result.Rows[i].AdID]; ok {
			result.Rows[i].AdImage = details.Creative.ImageOrThumbnail()
			result.Rows[i].AdHeadline = details.Creative.Title
		}
	}
}

func timeRangeJSON(since, until time.Time) string {
	return fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}",
		since.Format(time.DateOnly), until.Format(time.DateOnly))
}

// classifyPlatformError converte erros da plataforma na taxonomia do
// pipeline, preservando o código numérico original na mensagem. O estouro
// do prazo do flux chega aqui envolvido pelo cliente HTTP e precisa ser
// reconhecido antes das demais classes para contar como Timeout.
func classifyPlatformError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return syncerrors.Timeout(err)
	}

	var apiErr *metadomain.APIError
	if errors.As(err, &apiErr) {
		if apiErr.IsTokenExpired() {
			return syncerrors.Auth(err)
		}
		return syncerrors.TransientPlatform(err)
	}

	return syncerrors.TransientPlatform(err)
}
