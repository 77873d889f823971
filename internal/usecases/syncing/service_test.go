package syncing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/flux-sync-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/flux-sync-api/infrastructure/integrator/meta/domain"
	repomocks "github.com/vfg2006/flux-sync-api/infrastructure/repository/mocks"
	"github.com/vfg2006/flux-sync-api/internal/config"
	"github.com/vfg2006/flux-sync-api/internal/domain"
	"github.com/vfg2006/flux-sync-api/internal/syncerrors"
	syncmocks "github.com/vfg2006/flux-sync-api/internal/usecases/syncing/mocks"
	"github.com/vfg2006/flux-sync-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		FluxSync: config.FluxSync{
			MaxConcurrentJobs:   1,
			FluxTimeoutSeconds:  30,
			RequestDelaySeconds: 0,
		},
	}
}

func testFlux(id string) *domain.Flux {
	return &domain.Flux{
		ID:            id,
		TenantID:      "tenant-" + id,
		Name:          "Flux " + id,
		AdAccountID:   "acct-" + id,
		SpreadsheetID: "sheet-" + id,
		Config: domain.SyncConfig{
			Granularity: domain.GranularityDaily,
		},
		Credentials: domain.Credentials{
			MetaAccessToken:    "meta-token",
			GoogleRefreshToken: "google-token",
		},
	}
}

func newService(repo *repomocks.MockFluxRepository, extractor Extractor, writer Writer) *Service {
	return NewService(
		testConfig(),
		repo,
		func(string) Extractor { return extractor },
		func(string) Writer { return writer },
	)
}

func entryByFluxID(t *testing.T, report *domain.RunReport, fluxID string) domain.FluxReportEntry {
	t.Helper()
	for _, entry := range report.Entries {
		if entry.FluxID == fluxID {
			return entry
		}
	}
	t.Fatalf("flux %s não encontrado no relatório", fluxID)
	return domain.FluxReportEntry{}
}

func TestRunBatchIsolatesFluxFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockFluxRepository(ctrl)
	mockExtractor := syncmocks.NewMockExtractor(ctrl)
	mockWriter := syncmocks.NewMockWriter(ctrl)

	fluxes := []*domain.Flux{testFlux("f1"), testFlux("f2"), testFlux("f3")}

	mockRepo.EXPECT().ListEligible().Return(fluxes, nil)

	mockExtractor.EXPECT().
		Extract(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&meta.ExtractionResult{
			Rows: []metadomain.AdInsight{{Spend: "10"}},
		}, nil).
		Times(3)

	// A escrita do segundo flux falha; os demais seguem normalmente
	mockWriter.EXPECT().
		Write(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, flux *domain.Flux, _ []string, _ []domain.CanonicalRow) error {
			if flux.ID == "f2" {
				return syncerrors.Destination(errors.New("planilha indisponível"))
			}
			return nil
		}).
		Times(3)

	// O marcador de sucesso só é gravado para os fluxes que concluíram
	mockRepo.EXPECT().UpdateLastSyncedAt("f1", gomock.Any()).Return(nil)
	mockRepo.EXPECT().UpdateLastSyncedAt("f3", gomock.Any()).Return(nil)

	service := newService(mockRepo, mockExtractor, mockWriter)

	report, err := service.RunBatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, report.TotalFluxes)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.Skipped)

	failed := entryByFluxID(t, report, "f2")
	assert.Equal(t, domain.FluxSyncFailed, failed.Status)
	assert.Contains(t, failed.Error, string(syncerrors.KindDestination))
	assert.Equal(t, apiErrors.ErrDestinationFailure, failed.ErrorCode)

	succeeded := entryByFluxID(t, report, "f1")
	assert.Equal(t, domain.FluxSyncSucceeded, succeeded.Status)
	assert.Equal(t, 1, succeeded.RowCount)
	assert.Empty(t, succeeded.ErrorCode)
}

func TestRunBatchSkipsEmptyWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockFluxRepository(ctrl)
	mockExtractor := syncmocks.NewMockExtractor(ctrl)
	mockWriter := syncmocks.NewMockWriter(ctrl)

	mockRepo.EXPECT().ListEligible().Return([]*domain.Flux{testFlux("f1")}, nil)

	mockExtractor.EXPECT().
		Extract(gomock.Any(), "acct-f1", gomock.Any()).
		Return(&meta.ExtractionResult{}, nil)

	// Nenhuma escrita e nenhum marcador: o destino fica intacto

	service := newService(mockRepo, mockExtractor, mockWriter)

	report, err := service.RunBatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)

	entry := entryByFluxID(t, report, "f1")
	assert.Equal(t, domain.FluxSyncSkippedNoData, entry.Status)
	assert.Empty(t, entry.Error)
}

func TestRunBatchFailsInvalidConfigWithoutCallingPlatform(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockFluxRepository(ctrl)
	mockExtractor := syncmocks.NewMockExtractor(ctrl)
	mockWriter := syncmocks.NewMockWriter(ctrl)

	flux := testFlux("f1")
	flux.Config.Granularity = "Fortnightly"

	mockRepo.EXPECT().ListEligible().Return([]*domain.Flux{flux}, nil)

	service := newService(mockRepo, mockExtractor, mockWriter)

	report, err := service.RunBatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)

	entry := entryByFluxID(t, report, "f1")
	assert.Equal(t, domain.FluxSyncFailed, entry.Status)
	assert.Contains(t, entry.Error, string(syncerrors.KindConfig))
	assert.Equal(t, apiErrors.ErrFluxConfig, entry.ErrorCode)
}

func TestRunBatchCapturesPanics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockFluxRepository(ctrl)
	mockExtractor := syncmocks.NewMockExtractor(ctrl)
	mockWriter := syncmocks.NewMockWriter(ctrl)

	fluxes := []*domain.Flux{testFlux("f1"), testFlux("f2")}

	mockRepo.EXPECT().ListEligible().Return(fluxes, nil)

	mockExtractor.EXPECT().
		Extract(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, accountID string, _ domain.SyncConfig) (*meta.ExtractionResult, error) {
			if accountID == "acct-f1" {
				panic("estado inesperado na extração")
			}
			return &meta.ExtractionResult{Rows: []metadomain.AdInsight{{Spend: "10"}}}, nil
		}).
		Times(2)

	mockWriter.EXPECT().
		Write(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	mockRepo.EXPECT().UpdateLastSyncedAt("f2", gomock.Any()).Return(nil)

	service := newService(mockRepo, mockExtractor, mockWriter)

	report, err := service.RunBatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Succeeded)

	entry := entryByFluxID(t, report, "f1")
	assert.Equal(t, domain.FluxSyncFailed, entry.Status)
	assert.True(t, strings.Contains(entry.Error, "pânico"))
	assert.Equal(t, apiErrors.ErrInternalServer, entry.ErrorCode)
}

func TestRunBatchWritesAnalysisWhenEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockFluxRepository(ctrl)
	mockExtractor := syncmocks.NewMockExtractor(ctrl)
	mockWriter := syncmocks.NewMockWriter(ctrl)

	flux := testFlux("f1")
	flux.Config.EnableAnalysis = true
	flux.DestinationMapping = domain.DestinationMapping{
		RawDataTab:  "Dados",
		AnalysisTab: "Análise",
	}

	mockRepo.EXPECT().ListEligible().Return([]*domain.Flux{flux}, nil)

	mockExtractor.EXPECT().
		Extract(gomock.Any(), "acct-f1", gomock.Any()).
		Return(&meta.ExtractionResult{
			Rows: []metadomain.AdInsight{{Spend: "120", Impressions: "1000", Clicks: "50"}},
		}, nil)

	mockExtractor.EXPECT().
		ExtractReference(gomock.Any(), "acct-f1", gomock.Any()).
		Return([]metadomain.AdInsight{{Spend: "100", Impressions: "800", Clicks: "40"}}, nil)

	mockWriter.EXPECT().
		Write(gomock.Any(), flux, gomock.Any(), gomock.Any()).
		Return(nil)

	mockWriter.EXPECT().
		WriteAnalysis(gomock.Any(), flux, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.Flux, current, reference domain.MetricSummary) error {
			assert.Equal(t, 120.0, current.Spend)
			assert.Equal(t, 100.0, reference.Spend)
			return nil
		})

	mockRepo.EXPECT().UpdateLastSyncedAt("f1", gomock.Any()).Return(nil)

	service := newService(mockRepo, mockExtractor, mockWriter)

	report, err := service.RunBatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Succeeded)
}

func TestRunBatchClassifiesAuthFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockFluxRepository(ctrl)
	mockExtractor := syncmocks.NewMockExtractor(ctrl)
	mockWriter := syncmocks.NewMockWriter(ctrl)

	mockRepo.EXPECT().ListEligible().Return([]*domain.Flux{testFlux("f1")}, nil)

	mockExtractor.EXPECT().
		Extract(gomock.Any(), "acct-f1", gomock.Any()).
		Return(nil, syncerrors.Auth(errors.New("token expirado")))

	service := newService(mockRepo, mockExtractor, mockWriter)

	report, err := service.RunBatch(context.Background())

	require.NoError(t, err)

	entry := entryByFluxID(t, report, "f1")
	assert.Equal(t, domain.FluxSyncFailed, entry.Status)
	assert.Contains(t, entry.Error, string(syncerrors.KindAuth))
	assert.Equal(t, apiErrors.ErrPlatformAuth, entry.ErrorCode)
}

func TestRunBatchClassifiesTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockFluxRepository(ctrl)
	mockExtractor := syncmocks.NewMockExtractor(ctrl)
	mockWriter := syncmocks.NewMockWriter(ctrl)

	mockRepo.EXPECT().ListEligible().Return([]*domain.Flux{testFlux("f1")}, nil)

	// O prazo estourado chega envolvido pelo cliente HTTP, não como o
	// sentinela puro; a classificação precisa enxergar através do envelope
	mockExtractor.EXPECT().
		Extract(gomock.Any(), "acct-f1", gomock.Any()).
		Return(nil, fmt.Errorf("Get \"https://graph.test\": %w", context.DeadlineExceeded))

	service := newService(mockRepo, mockExtractor, mockWriter)

	report, err := service.RunBatch(context.Background())

	require.NoError(t, err)

	entry := entryByFluxID(t, report, "f1")
	assert.Equal(t, domain.FluxSyncFailed, entry.Status)
	assert.Contains(t, entry.Error, string(syncerrors.KindTimeout))
	assert.Equal(t, apiErrors.ErrSyncTimeout, entry.ErrorCode)
}

func TestRunBatchReturnsErrorWhenListingFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockFluxRepository(ctrl)

	mockRepo.EXPECT().ListEligible().Return(nil, errors.New("banco indisponível"))

	service := newService(mockRepo, nil, nil)

	report, err := service.RunBatch(context.Background())

	require.Error(t, err)
	assert.Nil(t, report)
}

func TestRunBatchEmptyFluxList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockFluxRepository(ctrl)

	mockRepo.EXPECT().ListEligible().Return([]*domain.Flux{}, nil)

	service := newService(mockRepo, nil, nil)

	report, err := service.RunBatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalFluxes)
	assert.NotEmpty(t, report.RunID)
	assert.False(t, report.CompletedAt.IsZero())
}
