package meta

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/flux-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/flux-sync-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/flux-sync-api/internal/config"
	"github.com/vfg2006/flux-sync-api/internal/domain"
	"github.com/vfg2006/flux-sync-api/internal/syncerrors"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Meta: config.Meta{
			URL:       "https://graph.test/v22.0",
			PageLimit: 100,
		},
	}
}

func TestBuildInsightParams(t *testing.T) {
	service := New(testConfig(), nil)
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		granularity domain.Granularity
		validate    func(t *testing.T, params url.Values)
	}{
		{
			name:        "Granularidade diária - deve usar o preset de ontem",
			granularity: domain.GranularityDaily,
			validate: func(t *testing.T, params url.Values) {
				assert.Equal(t, "yesterday", params.Get("date_preset"))
				assert.Empty(t, params.Get("time_increment"))
				assert.Empty(t, params.Get("time_range"))
			},
		},
		{
			name:        "Granularidade horária - deve usar hoje com incremento horário",
			granularity: domain.GranularityHourly,
			validate: func(t *testing.T, params url.Values) {
				assert.Equal(t, "today", params.Get("date_preset"))
				assert.Equal(t, "hourly", params.Get("time_increment"))
			},
		},
		{
			name:        "Granularidade semanal - deve usar intervalo explícito de 7 dias",
			granularity: domain.GranularityWeekly,
			validate: func(t *testing.T, params url.Values) {
				assert.Empty(t, params.Get("date_preset"))
				assert.Equal(t, `{"since":"2026-08-21","until":"2026-08-27"}`, params.Get("time_range"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := service.buildInsightParams(tt.granularity, now)

			assert.Equal(t, "ad", params.Get("level"))
			assert.Equal(t, "100", params.Get("limit"))
			tt.validate(t, params)
		})
	}
}

func TestBuildReferenceParams(t *testing.T) {
	service := New(testConfig(), nil)
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	t.Run("Diária - deve apontar para anteontem", func(t *testing.T) {
		params := service.buildReferenceParams(domain.GranularityDaily, now)
		assert.Equal(t, `{"since":"2026-08-25","until":"2026-08-25"}`, params.Get("time_range"))
	})

	t.Run("Horária - deve apontar para ontem", func(t *testing.T) {
		params := service.buildReferenceParams(domain.GranularityHourly, now)
		assert.Equal(t, "yesterday", params.Get("date_preset"))
	})

	t.Run("Semanal - deve apontar para a semana anterior", func(t *testing.T) {
		params := service.buildReferenceParams(domain.GranularityWeekly, now)
		assert.Equal(t, `{"since":"2026-08-14","until":"2026-08-20"}`, params.Get("time_range"))
	})
}

func TestApplyBreakdownParam(t *testing.T) {
	service := New(testConfig(), nil)

	tests := []struct {
		name            string
		breakdowns      []string
		expectedApplied []string
		expectedParam   string
	}{
		{
			name:            "Um breakdown mapeável - deve ser enviado",
			breakdowns:      []string{domain.BreakdownAge},
			expectedApplied: []string{domain.BreakdownAge},
			expectedParam:   "age",
		},
		{
			name:            "Múltiplos breakdowns - apenas o primeiro é enviado",
			breakdowns:      []string{domain.BreakdownGender, domain.BreakdownRegion},
			expectedApplied: []string{domain.BreakdownGender},
			expectedParam:   "gender",
		},
		{
			name:            "Primeiro desconhecido - pula para o primeiro mapeável",
			breakdowns:      []string{"Constellation", domain.BreakdownPlatform},
			expectedApplied: []string{domain.BreakdownPlatform},
			expectedParam:   "publisher_platform",
		},
		{
			name:            "Nenhum mapeável - nenhum parâmetro enviado",
			breakdowns:      []string{"Constellation"},
			expectedApplied: nil,
			expectedParam:   "",
		},
		{
			name:            "Sem breakdowns - nenhum parâmetro enviado",
			breakdowns:      nil,
			expectedApplied: nil,
			expectedParam:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := url.Values{}
			applied := service.applyBreakdownParam(params, tt.breakdowns)

			assert.Equal(t, tt.expectedApplied, applied)
			assert.Equal(t, tt.expectedParam, params.Get("breakdowns"))
		})
	}
}

func TestExtractRetriesOnceWithoutBreakdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(testConfig(), mockClient)

	invalidParam := &metadomain.APIError{Details: metadomain.ErrorDetails{
		Code:    100,
		Message: "breakdown não suportado nesta combinação",
	}}

	// Primeira chamada com breakdown falha; a retentativa sem breakdown responde
	first := mockClient.EXPECT().
		GetAdInsights(gomock.Any(), "123", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params url.Values) ([]metadomain.AdInsight, error) {
			assert.Equal(t, "age", params.Get("breakdowns"))
			return nil, invalidParam
		})

	mockClient.EXPECT().
		GetAdInsights(gomock.Any(), "123", gomock.Any()).
		After(first).
		DoAndReturn(func(_ context.Context, _ string, params url.Values) ([]metadomain.AdInsight, error) {
			assert.Empty(t, params.Get("breakdowns"))
			return []metadomain.AdInsight{{Spend: "10"}}, nil
		})

	cfg := domain.SyncConfig{
		Granularity: domain.GranularityDaily,
		Breakdowns:  []string{domain.BreakdownAge},
	}

	result, err := service.Extract(context.Background(), "123", cfg)

	require.NoError(t, err)
	assert.Len(t, result.Rows, 1)
	assert.Empty(t, result.AppliedBreakdowns)
	assert.True(t, result.BreakdownFallback)
}

func TestExtractDoesNotRetryTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(testConfig(), mockClient)

	invalidParam := &metadomain.APIError{Details: metadomain.ErrorDetails{Code: 100}}

	// Exatamente duas chamadas: a original e uma única retentativa
	mockClient.EXPECT().
		GetAdInsights(gomock.Any(), "123", gomock.Any()).
		Return(nil, invalidParam).
		Times(2)

	cfg := domain.SyncConfig{
		Granularity: domain.GranularityDaily,
		Breakdowns:  []string{domain.BreakdownAge},
	}

	_, err := service.Extract(context.Background(), "123", cfg)

	require.Error(t, err)
	assert.Equal(t, syncerrors.KindTransientPlatform, syncerrors.Classify(err))
}

func TestExtractTokenExpiredBecomesAuthError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(testConfig(), mockClient)

	expired := &metadomain.APIError{Details: metadomain.ErrorDetails{
		Code: 190,
		Type: "OAuthException",
	}}

	mockClient.EXPECT().
		GetAdInsights(gomock.Any(), "123", gomock.Any()).
		Return(nil, expired)

	_, err := service.Extract(context.Background(), "123", domain.SyncConfig{Granularity: domain.GranularityDaily})

	require.Error(t, err)
	assert.Equal(t, syncerrors.KindAuth, syncerrors.Classify(err))
}

func TestExtractClassifiesContextDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(testConfig(), mockClient)

	// O estouro do prazo do flux chega do cliente HTTP envolvido em outro
	// erro; deve contar como Timeout, não como falha da plataforma
	wrapped := fmt.Errorf("Get \"https://graph.test/v22.0\": %w", context.DeadlineExceeded)

	mockClient.EXPECT().
		GetAdInsights(gomock.Any(), "123", gomock.Any()).
		Return(nil, wrapped)

	_, err := service.Extract(context.Background(), "123", domain.SyncConfig{Granularity: domain.GranularityDaily})

	require.Error(t, err)
	assert.Equal(t, syncerrors.KindTimeout, syncerrors.Classify(err))
}

func TestExtractEmptyWindowIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(testConfig(), mockClient)

	mockClient.EXPECT().
		GetAdInsights(gomock.Any(), "123", gomock.Any()).
		Return([]metadomain.AdInsight{}, nil)

	result, err := service.Extract(context.Background(), "123", domain.SyncConfig{Granularity: domain.GranularityDaily})

	require.NoError(t, err)
	assert.Empty(t, result.Rows)
}

func TestExtractMergesCreativesAndSkipsFailedBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(testConfig(), mockClient)

	// 51 anúncios distintos geram dois lotes de criativos (50 + 1)
	rows := make([]metadomain.AdInsight, 0, 51)
	for i := 0; i < 51; i++ {
		rows = append(rows, metadomain.AdInsight{
			AdID:  fmt.Sprintf("ad_%02d", i),
			Spend: "1",
		})
	}

	mockClient.EXPECT().
		GetAdInsights(gomock.Any(), "123", gomock.Any()).
		Return(rows, nil)

	// Primeiro lote falha e é pulado; o segundo responde normalmente
	mockClient.EXPECT().
		GetAdCreatives(gomock.Any(), gomock.Len(50)).
		Return(nil, errors.New("falha transitória"))

	mockClient.EXPECT().
		GetAdCreatives(gomock.Any(), gomock.Len(1)).
		Return(map[string]metadomain.AdWithCreative{
			"ad_50": {
				ID: "ad_50",
				Creative: metadomain.Creative{
					ThumbnailURL: "https://cdn.test/thumb.png",
					Title:        "Anúncio 50",
				},
			},
		}, nil)

	cfg := domain.SyncConfig{
		Granularity:   domain.GranularityDaily,
		EnableVisuals: true,
	}

	result, err := service.Extract(context.Background(), "123", cfg)

	require.NoError(t, err)
	require.Len(t, result.Rows, 51)

	// Lote que falhou não derruba a extração; apenas fica sem visuais
	assert.Empty(t, result.Rows[0].AdImage)
	assert.Equal(t, "https://cdn.test/thumb.png", result.Rows[50].AdImage)
	assert.Equal(t, "Anúncio 50", result.Rows[50].AdHeadline)
}
