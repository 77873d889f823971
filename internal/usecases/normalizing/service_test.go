package normalizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/flux-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/flux-sync-api/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name           string
		raw            metadomain.AdInsight
		breakdowns     []string
		includeVisuals bool
		validate       func(t *testing.T, row domain.CanonicalRow)
	}{
		{
			name: "Linha completa - deve calcular imposto e extrair ROAS de compra",
			raw: metadomain.AdInsight{
				DateStart:    "2026-08-27",
				CampaignName: "Campanha Verão",
				AdsetName:    "Conjunto A",
				AdName:       "Anúncio 1",
				Spend:        "100",
				Impressions:  "10000",
				Clicks:       "250",
				CTR:          "2.5",
				CPC:          "0.40",
				CPM:          "10.0",
				PurchaseROAS: []metadomain.Action{
					{ActionType: "omni_purchase", Value: "2.50"},
				},
			},
			validate: func(t *testing.T, row domain.CanonicalRow) {
				assert.Equal(t, "2026-08-27", row.Date)
				assert.Equal(t, 100.00, row.SpendRaw)
				assert.Equal(t, 118.00, row.SpendWithTax)
				assert.Equal(t, float64(10000), row.Impressions)
				assert.Equal(t, float64(250), row.Clicks)
				assert.Equal(t, 2.50, row.ROAS)
			},
		},
		{
			name: "Valores malformados - devem virar zero sem falhar",
			raw: metadomain.AdInsight{
				DateStart:   "2026-08-27",
				Spend:       "not-a-number",
				Impressions: "",
				Clicks:      "NaN",
			},
			validate: func(t *testing.T, row domain.CanonicalRow) {
				assert.Equal(t, 0.0, row.SpendRaw)
				assert.Equal(t, 0.0, row.SpendWithTax)
				assert.Equal(t, 0.0, row.Impressions)
				assert.Equal(t, 0.0, row.Clicks)
			},
		},
		{
			name: "ROAS sem entrada de compra - deve ficar em zero",
			raw: metadomain.AdInsight{
				Spend: "50",
				PurchaseROAS: []metadomain.Action{
					{ActionType: "add_to_cart", Value: "9.99"},
				},
			},
			validate: func(t *testing.T, row domain.CanonicalRow) {
				assert.Equal(t, 0.0, row.ROAS)
			},
		},
		{
			name: "Breakdowns configurados - devem ser projetados pelo nome da dimensão",
			raw: metadomain.AdInsight{
				Spend:  "10",
				Age:    "25-34",
				Gender: "female",
			},
			breakdowns: []string{domain.BreakdownAge, domain.BreakdownGender},
			validate: func(t *testing.T, row domain.CanonicalRow) {
				assert.Equal(t, "25-34", row.Breakdowns[domain.BreakdownAge])
				assert.Equal(t, "female", row.Breakdowns[domain.BreakdownGender])
			},
		},
		{
			name: "Breakdown desconhecido - deve ser ignorado sem falhar",
			raw: metadomain.AdInsight{
				Spend: "10",
				Age:   "25-34",
			},
			breakdowns: []string{"Constellation", domain.BreakdownAge},
			validate: func(t *testing.T, row domain.CanonicalRow) {
				assert.NotContains(t, row.Breakdowns, "Constellation")
				assert.Equal(t, "25-34", row.Breakdowns[domain.BreakdownAge])
			},
		},
		{
			name: "Visuais habilitados - deve carregar imagem e título",
			raw: metadomain.AdInsight{
				Spend:      "10",
				AdImage:    "https://cdn.example.com/creative.png",
				AdHeadline: "Promoção de Verão",
			},
			includeVisuals: true,
			validate: func(t *testing.T, row domain.CanonicalRow) {
				assert.Equal(t, "https://cdn.example.com/creative.png", row.AdImage)
				assert.Equal(t, "Promoção de Verão", row.AdHeadline)
			},
		},
		{
			name: "Visuais desabilitados - campos visuais ficam vazios mesmo com dados",
			raw: metadomain.AdInsight{
				Spend:   "10",
				AdImage: "https://cdn.example.com/creative.png",
			},
			includeVisuals: false,
			validate: func(t *testing.T, row domain.CanonicalRow) {
				assert.Empty(t, row.AdImage)
				assert.Empty(t, row.AdHeadline)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := Normalize(tt.raw, tt.breakdowns, tt.includeVisuals)
			tt.validate(t, row)
		})
	}
}

func TestNormalizeTaxIsAppliedOnSpend(t *testing.T) {
	// O imposto incide sobre o investimento bruto, nunca sobre as demais métricas
	row := Normalize(metadomain.AdInsight{Spend: "200.50", CPC: "1.00"}, nil, false)

	assert.Equal(t, 200.50, row.SpendRaw)
	assert.Equal(t, 236.59, row.SpendWithTax)
	assert.Equal(t, 1.00, row.CPC)
}

func TestNormalizeAll(t *testing.T) {
	rawRows := []metadomain.AdInsight{
		{Spend: "10"},
		{Spend: "20"},
	}

	rows := NormalizeAll(rawRows, nil, false)

	assert.Len(t, rows, 2)
	assert.Equal(t, 10.0, rows[0].SpendRaw)
	assert.Equal(t, 20.0, rows[1].SpendRaw)
}
