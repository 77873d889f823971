package normalizing

import (
	metadomain "github.com/vfg2006/flux-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/flux-sync-api/internal/domain"
	"github.com/vfg2006/flux-sync-api/pkg/utils"
)

// Normalize converte uma linha bruta da plataforma na linha canônica do
// destino. Função pura: nenhum acesso externo, nenhuma mutação da entrada.
// Valores numéricos malformados viram zero em vez de derrubar a execução.
func Normalize(raw metadomain.AdInsight, breakdowns []string, includeVisuals bool) domain.CanonicalRow {
	spend := utils.SafeCurrency(raw.Spend)

	row := domain.CanonicalRow{
		Date:         raw.DateStart,
		CampaignName: raw.CampaignName,
		AdsetName:    raw.AdsetName,
		AdName:       raw.AdName,
		SpendRaw:     spend,
		SpendWithTax: utils.RoundWithTwoDecimalPlace(spend * domain.TaxMultiplier),
		Impressions:  utils.SafeCount(raw.Impressions),
		Clicks:       utils.SafeCount(raw.Clicks),
		CTR:          utils.SafeCurrency(raw.CTR),
		CPC:          utils.SafeCurrency(raw.CPC),
		CPM:          utils.SafeCurrency(raw.CPM),
		ROAS:         purchaseROAS(raw),
	}

	if len(breakdowns) > 0 {
		row.Breakdowns = make(map[string]string, len(breakdowns))
		for _, name := range breakdowns {
			dimension, ok := domain.BreakdownDimensions[name]
			if !ok {
				continue
			}
			row.Breakdowns[name] = raw.BreakdownValue(dimension)
		}
	}

	if includeVisuals {
		row.AdImage = raw.AdImage
		row.AdHeadline = raw.AdHeadline
	}

	return row
}

// NormalizeAll converte o lote inteiro de linhas brutas de uma extração
func NormalizeAll(rawRows []metadomain.AdInsight, breakdowns []string, includeVisuals bool) []domain.CanonicalRow {
	rows := make([]domain.CanonicalRow, 0, len(rawRows))
	for _, raw := range rawRows {
		rows = append(rows, Normalize(raw, breakdowns, includeVisuals))
	}
	return rows
}

// purchaseROAS extrai o retorno sobre investimento da entrada tipada de
// compra. Linhas sem conversão de compra não têm ROAS, que fica em zero.
func purchaseROAS(raw metadomain.AdInsight) float64 {
	for _, action := range raw.PurchaseROAS {
		if action.ActionType == metadomain.PurchaseActionType {
			return utils.SafeCurrency(action.Value)
		}
	}
	return 0
}
