package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/flux-sync-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/flux-sync-api/internal/config"
	"github.com/vfg2006/flux-sync-api/internal/domain"
	"github.com/vfg2006/flux-sync-api/internal/syncerrors"
	"github.com/vfg2006/flux-sync-api/pkg/utils"
)

// Altura das linhas de dados quando a aba contém miniaturas de criativos
const visualRowHeightPixels = 100

// ColumnSpec define uma coluna da aba de dados: o cabeçalho e a projeção da
// linha canônica. Cabeçalho e valores saem da mesma lista, portanto nunca
// ficam desalinhados.
type ColumnSpec struct {
	Header string
	Value  func(row domain.CanonicalRow) interface{}
}

// Service escreve os dados normalizados na planilha do tenant. Cada
// instância é vinculada à credencial de um tenant via fábrica de clientes.
type Service struct {
	cfg    *config.Config
	Client sheetsclient.Client
}

func New(cfg *config.Config, client sheetsclient.Client) *Service {
	return &Service{
		cfg:    cfg,
		Client: client,
	}
}

// EnsureTab garante que a aba exista na planilha e retorna seu identificador
// numérico. Idempotente: criar uma aba que já existe não é erro.
func (s *Service) EnsureTab(ctx context.Context, spreadsheetID, tab string) (int64, error) {
	spreadsheet, err := s.Client.GetSpreadsheet(ctx, spreadsheetID)
	if err != nil {
		return 0, classifyDestinationError(err)
	}

	if properties, ok := spreadsheet.SheetByTitle(tab); ok {
		return properties.SheetID, nil
	}

	logrus.WithFields(logrus.Fields{
		"spreadsheet_id": spreadsheetID,
		"tab":            tab,
	}).Info("Aba não encontrada na planilha, criando")

	if err := s.Client.AddSheet(ctx, spreadsheetID, tab); err != nil {
		return 0, classifyDestinationError(err)
	}

	spreadsheet, err = s.Client.GetSpreadsheet(ctx, spreadsheetID)
	if err != nil {
		return 0, classifyDestinationError(err)
	}

	properties, ok := spreadsheet.SheetByTitle(tab)
	if !ok {
		return 0, syncerrors.Destination(fmt.Errorf("aba %q não encontrada após a criação", tab))
	}

	return properties.SheetID, nil
}

// BuildColumns monta o esquema da aba de dados a partir da configuração do
// flux. A ordem é fixa: métricas base, breakdowns na ordem configurada,
// campos visuais quando habilitados e o carimbo da sincronização por último.
func (s *Service) BuildColumns(cfg domain.SyncConfig, breakdowns []string, syncedAt time.Time) []ColumnSpec {
	columns := []ColumnSpec{
		{"Date", func(r domain.CanonicalRow) interface{} { return r.Date }},
		{"Campaign Name", func(r domain.CanonicalRow) interface{} { return r.CampaignName }},
		{"Ad Set Name", func(r domain.CanonicalRow) interface{} { return r.AdsetName }},
		{"Ad Name", func(r domain.CanonicalRow) interface{} { return r.AdName }},
		{"Spend", func(r domain.CanonicalRow) interface{} { return r.SpendRaw }},
		{"Spend with Tax", func(r domain.CanonicalRow) interface{} { return r.SpendWithTax }},
		{"Impressions", func(r domain.CanonicalRow) interface{} { return r.Impressions }},
		{"Clicks", func(r domain.CanonicalRow) interface{} { return r.Clicks }},
		{"CTR", func(r domain.CanonicalRow) interface{} { return r.CTR }},
		{"CPC", func(r domain.CanonicalRow) interface{} { return r.CPC }},
		{"CPM", func(r domain.CanonicalRow) interface{} { return r.CPM }},
		{"ROAS", func(r domain.CanonicalRow) interface{} { return r.ROAS }},
	}

	for _, name := range breakdowns {
		dimension := name
		columns = append(columns, ColumnSpec{
			Header: dimension,
			Value:  func(r domain.CanonicalRow) interface{} { return r.Breakdowns[dimension] },
		})
	}

	if cfg.EnableVisuals {
		columns = append(columns,
			ColumnSpec{"Creative Preview", func(r domain.CanonicalRow) interface{} {
				if r.AdImage == "" {
					return ""
				}
				return fmt.Sprintf("=IMAGE(%q, 4, %d, %d)", r.AdImage, visualRowHeightPixels, visualRowHeightPixels)
			}},
			ColumnSpec{"Ad Headline", func(r domain.CanonicalRow) interface{} { return r.AdHeadline }},
		)
	}

	timestamp := syncedAt.Format(time.RFC3339)
	columns = append(columns, ColumnSpec{
		Header: "Synced At",
		Value:  func(r domain.CanonicalRow) interface{} { return timestamp },
	})

	return columns
}

// Write substitui todo o conteúdo da aba de dados pelas linhas da execução
// atual. A aba é limpa antes da escrita, então reexecutar produz o mesmo
// estado final em vez de duplicar linhas.
func (s *Service) Write(ctx context.Context, flux *domain.Flux, breakdowns []string, rows []domain.CanonicalRow) error {
	tab := flux.DestinationMapping.RawTabOrDefault()

	sheetID, err := s.EnsureTab(ctx, flux.SpreadsheetID, tab)
	if err != nil {
		return err
	}

	// Limpeza e escrita endereçam o mesmo intervalo A1 entre aspas; títulos
	// com espaço quebrariam a limpeza se a aba fosse enviada sem aspas
	if err := s.Client.ClearValues(ctx, flux.SpreadsheetID, rangeForTab(tab)); err != nil {
		return classifyDestinationError(err)
	}

	columns := s.BuildColumns(flux.Config, breakdowns, time.Now())

	values := make([][]interface{}, 0, len(rows)+1)
	header := make([]interface{}, len(columns))
	for i, column := range columns {
		header[i] = column.Header
	}
	values = append(values, header)

	for _, row := range rows {
		cells := make([]interface{}, len(columns))
		for i, column := range columns {
			cells[i] = column.Value(row)
		}
		values = append(values, cells)
	}

	if err := s.Client.UpdateValues(ctx, flux.SpreadsheetID, rangeForTab(tab), values); err != nil {
		return classifyDestinationError(err)
	}

	if flux.Config.EnableVisuals && len(rows) > 0 {
		if err := s.Client.ResizeRows(ctx, flux.SpreadsheetID, sheetID, len(rows), visualRowHeightPixels); err != nil {
			// A altura das linhas é cosmética; os dados já foram escritos
			logrus.WithFields(logrus.Fields{
				"spreadsheet_id": flux.SpreadsheetID,
				"tab":            tab,
				"error":          err.Error(),
			}).Warn("Falha ao ajustar a altura das linhas, seguindo")
		}
	}

	logrus.WithFields(logrus.Fields{
		"spreadsheet_id": flux.SpreadsheetID,
		"tab":            tab,
		"rows":           len(rows),
		"columns":        len(columns),
	}).Info("Aba de dados escrita com sucesso")

	return nil
}

// WriteAnalysis escreve a tabela comparativa entre o período atual e o
// período de referência na aba de análise do flux
func (s *Service) WriteAnalysis(ctx context.Context, flux *domain.Flux, current, reference domain.MetricSummary) error {
	tab := flux.DestinationMapping.AnalysisTab

	if _, err := s.EnsureTab(ctx, flux.SpreadsheetID, tab); err != nil {
		return err
	}

	if err := s.Client.ClearValues(ctx, flux.SpreadsheetID, rangeForTab(tab)); err != nil {
		return classifyDestinationError(err)
	}

	values := [][]interface{}{
		{"Metric", "Current", "Reference", "Change"},
		{"Spend", current.Spend, reference.Spend, changeCell(current.Spend, reference.Spend)},
		{"Impressions", current.Impressions, reference.Impressions, changeCell(current.Impressions, reference.Impressions)},
		{"Clicks", current.Clicks, reference.Clicks, changeCell(current.Clicks, reference.Clicks)},
		{"CPM", current.CPM, reference.CPM, changeCell(current.CPM, reference.CPM)},
		{"CTR", current.CTR, reference.CTR, changeCell(current.CTR, reference.CTR)},
		{"Average ROAS", current.AvgROAS, reference.AvgROAS, changeCell(current.AvgROAS, reference.AvgROAS)},
	}

	if err := s.Client.UpdateValues(ctx, flux.SpreadsheetID, rangeForTab(tab), values); err != nil {
		return classifyDestinationError(err)
	}

	logrus.WithFields(logrus.Fields{
		"spreadsheet_id": flux.SpreadsheetID,
		"tab":            tab,
	}).Info("Aba de análise escrita com sucesso")

	return nil
}

// changeCell calcula a variação percentual entre o período atual e o de
// referência. Referência zero não tem variação definida, então a célula
// recebe "N/A" em vez de uma divisão por zero.
func changeCell(current, reference float64) interface{} {
	if reference == 0 {
		return "N/A"
	}

	change := utils.RoundWithTwoDecimalPlace((current - reference) / reference * 100)
	return fmt.Sprintf("%+.2f%%", change)
}

// rangeForTab monta a referência A1 da aba inteira, com aspas simples para
// suportar títulos com espaços
func rangeForTab(tab string) string {
	return "'" + strings.ReplaceAll(tab, "'", "''") + "'"
}

// classifyDestinationError converte erros da API de planilhas na taxonomia
// do pipeline: prazo estourado vira Timeout, credencial rejeitada vira
// AuthError, o resto DestinationError
func classifyDestinationError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return syncerrors.Timeout(err)
	}

	var apiErr *sheetsclient.APIError
	if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
		return syncerrors.Auth(err)
	}

	return syncerrors.Destination(err)
}
