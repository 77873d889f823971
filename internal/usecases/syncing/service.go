package syncing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/flux-sync-api/infrastructure/repository"
	"github.com/vfg2006/flux-sync-api/internal/config"
	"github.com/vfg2006/flux-sync-api/internal/domain"
	"github.com/vfg2006/flux-sync-api/internal/syncerrors"
	"github.com/vfg2006/flux-sync-api/internal/usecases/normalizing"
	"github.com/vfg2006/flux-sync-api/pkg/apiErrors"
	"github.com/vfg2006/flux-sync-api/pkg/utils"
)

// Service orquestra a execução do lote de sincronização: lista os fluxes
// elegíveis e processa cada um de forma isolada. A falha de um flux nunca
// interrompe os demais.
type Service struct {
	cfg          *config.Config
	fluxRepo     repository.FluxRepository
	newExtractor ExtractorFactory
	newWriter    WriterFactory
}

func NewService(
	cfg *config.Config,
	fluxRepo repository.FluxRepository,
	newExtractor ExtractorFactory,
	newWriter WriterFactory,
) *Service {
	return &Service{
		cfg:          cfg,
		fluxRepo:     fluxRepo,
		newExtractor: newExtractor,
		newWriter:    newWriter,
	}
}

// RunBatch executa o lote completo e devolve o relatório da execução. O erro
// de retorno cobre apenas falhas anteriores ao processamento (listagem dos
// fluxes); desfechos individuais ficam no relatório.
func (s *Service) RunBatch(ctx context.Context) (*domain.RunReport, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		runID = fmt.Sprintf("run-%d", time.Now().UnixNano())
	}

	report := &domain.RunReport{
		RunID:     runID,
		StartedAt: time.Now(),
	}

	fluxes, err := s.fluxRepo.ListEligible()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar fluxes elegíveis: %w", err)
	}

	report.TotalFluxes = len(fluxes)

	logrus.WithFields(logrus.Fields{
		"run_id":       report.RunID,
		"total_fluxes": len(fluxes),
	}).Info("Iniciando lote de sincronização")

	if len(fluxes) == 0 {
		report.CompletedAt = time.Now()
		return report, nil
	}

	// Canal para controlar o número de workers concorrentes
	semaphore := make(chan struct{}, s.cfg.FluxSync.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, flux := range fluxes {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(f *domain.Flux) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			entry := s.processFlux(ctx, f)

			mu.Lock()
			report.Append(entry)
			mu.Unlock()
		}(flux)
	}

	wg.Wait()
	report.CompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"run_id":    report.RunID,
		"succeeded": report.Succeeded,
		"skipped":   report.Skipped,
		"failed":    report.Failed,
		"duration":  report.CompletedAt.Sub(report.StartedAt).String(),
	}).Info("Lote de sincronização concluído")

	return report, nil
}

// processFlux executa o pipeline de um único flux: validação, extração,
// normalização, escrita e marcação de sucesso. Pânicos são capturados e
// registrados como falha do flux, nunca do lote.
func (s *Service) processFlux(ctx context.Context, flux *domain.Flux) (entry domain.FluxReportEntry) {
	started := time.Now()

	entry = domain.FluxReportEntry{
		FluxID:   flux.ID,
		FluxName: flux.Name,
		TenantID: flux.TenantID,
	}

	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"flux_id":   flux.ID,
				"tenant_id": flux.TenantID,
				"panic":     fmt.Sprintf("%v", r),
			}).Error("Pânico capturado durante o processamento do flux")

			entry.Status = domain.FluxSyncFailed
			entry.Error = fmt.Sprintf("%s: pânico durante o processamento: %v", syncerrors.KindInternal, r)
			entry.ErrorCode = apiErrors.ErrInternalServer
		}

		entry.Duration = time.Since(started).String()
	}()

	fluxCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.FluxSync.FluxTimeoutSeconds)*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"flux_id":     flux.ID,
		"tenant_id":   flux.TenantID,
		"granularity": flux.Config.Granularity,
	}).Info("Processando flux")

	if err := flux.Validate(); err != nil {
		return failEntry(entry, syncerrors.Config(err))
	}

	extractor := s.newExtractor(flux.Credentials.MetaAccessToken)

	result, err := extractor.Extract(fluxCtx, flux.AdAccountID, flux.Config)
	if err != nil {
		return failEntry(entry, err)
	}

	// Janela sem entrega é um desfecho normal: o destino e o marcador de
	// sincronização ficam intactos
	if len(result.Rows) == 0 {
		logrus.WithField("flux_id", flux.ID).Info("Nenhuma linha na janela, flux pulado")
		entry.Status = domain.FluxSyncSkippedNoData
		return entry
	}

	rows := normalizing.NormalizeAll(result.Rows, result.AppliedBreakdowns, flux.Config.EnableVisuals)

	writer := s.newWriter(flux.Credentials.GoogleRefreshToken)

	if err := writer.Write(fluxCtx, flux, result.AppliedBreakdowns, rows); err != nil {
		return failEntry(entry, err)
	}

	if flux.Config.EnableAnalysis {
		// Aguardar antes da próxima requisição para evitar sobrecarga na API
		time.Sleep(time.Duration(s.cfg.FluxSync.RequestDelaySeconds) * time.Second)

		if err := s.writeAnalysis(fluxCtx, flux, extractor, writer, rows); err != nil {
			return failEntry(entry, err)
		}
	}

	if err := s.fluxRepo.UpdateLastSyncedAt(flux.ID, time.Now()); err != nil {
		return failEntry(entry, syncerrors.Internal(err))
	}

	entry.Status = domain.FluxSyncSucceeded
	entry.RowCount = len(rows)

	logrus.WithFields(logrus.Fields{
		"flux_id":  flux.ID,
		"rows":     len(rows),
		"duration": time.Since(started).String(),
	}).Info("Flux sincronizado com sucesso")

	return entry
}

// writeAnalysis extrai o período de referência e escreve a tabela
// comparativa na aba de análise do flux
func (s *Service) writeAnalysis(ctx context.Context, flux *domain.Flux, extractor Extractor, writer Writer, rows []domain.CanonicalRow) error {
	referenceRaw, err := extractor.ExtractReference(ctx, flux.AdAccountID, flux.Config)
	if err != nil {
		return err
	}

	current := domain.Summarize(rows)
	reference := domain.Summarize(normalizing.NormalizeAll(referenceRaw, nil, false))

	return writer.WriteAnalysis(ctx, flux, current, reference)
}

// failEntry registra a falha classificada no desfecho do flux
func failEntry(entry domain.FluxReportEntry, err error) domain.FluxReportEntry {
	entry.Status = domain.FluxSyncFailed

	var syncErr *syncerrors.SyncError
	if errors.As(err, &syncErr) {
		entry.Error = syncErr.Error()
		entry.ErrorCode = errorCodeFor(syncErr.Kind)
	} else {
		kind := syncerrors.Classify(err)
		entry.Error = fmt.Sprintf("%s: %v", kind, err)
		entry.ErrorCode = errorCodeFor(kind)
	}

	logrus.WithFields(logrus.Fields{
		"flux_id":   entry.FluxID,
		"tenant_id": entry.TenantID,
		"error":     entry.Error,
	}).Error("Falha no processamento do flux")

	return entry
}

// errorCodeFor traduz a classificação da falha para o código estável que os
// consumidores do relatório usam, em vez de dependerem do texto livre
func errorCodeFor(kind syncerrors.Kind) string {
	switch kind {
	case syncerrors.KindConfig:
		return apiErrors.ErrFluxConfig
	case syncerrors.KindAuth:
		return apiErrors.ErrPlatformAuth
	case syncerrors.KindTransientPlatform:
		return apiErrors.ErrPlatformTransient
	case syncerrors.KindDestination:
		return apiErrors.ErrDestinationFailure
	case syncerrors.KindTimeout:
		return apiErrors.ErrSyncTimeout
	default:
		return apiErrors.ErrInternalServer
	}
}
