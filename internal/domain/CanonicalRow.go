package domain

import "github.com/vfg2006/flux-sync-api/pkg/utils"

// TaxMultiplier é o multiplicador fixo de imposto sobre o investimento
// (regra de negócio, não um valor da plataforma)
const TaxMultiplier = 1.18

// CanonicalRow é a linha normalizada escrita no destino. O conjunto de
// campos preenchidos é determinado inteiramente pela configuração do flux,
// portanto todas as linhas de uma execução têm o mesmo formato.
type CanonicalRow struct {
	Date         string
	CampaignName string
	AdsetName    string
	AdName       string
	SpendRaw     float64
	SpendWithTax float64
	Impressions  float64
	Clicks       float64
	CTR          float64
	CPC          float64
	CPM          float64
	ROAS         float64

	// Valores de breakdown indexados pelo nome da dimensão configurada
	Breakdowns map[string]string

	// Campos visuais, preenchidos apenas quando habilitados
	AdImage    string
	AdHeadline string
}

// MetricSummary agrega as métricas de um conjunto de linhas canônicas,
// usado na aba de análise comparativa
type MetricSummary struct {
	Spend       float64
	Impressions float64
	Clicks      float64
	CPM         float64
	CTR         float64
	AvgROAS     float64
}

// Summarize calcula o agregado de métricas de uma execução
func Summarize(rows []CanonicalRow) MetricSummary {
	summary := MetricSummary{}

	for _, row := range rows {
		summary.Spend += row.SpendRaw
		summary.Impressions += row.Impressions
		summary.Clicks += row.Clicks
		summary.AvgROAS += row.ROAS
	}

	if summary.Impressions > 0 {
		summary.CPM = utils.RoundWithTwoDecimalPlace(summary.Spend / summary.Impressions * 1000)
		summary.CTR = utils.RoundWithTwoDecimalPlace(summary.Clicks / summary.Impressions * 100)
	}

	if len(rows) > 0 {
		summary.AvgROAS = utils.RoundWithTwoDecimalPlace(summary.AvgROAS / float64(len(rows)))
	}

	summary.Spend = utils.RoundWithTwoDecimalPlace(summary.Spend)

	return summary
}
