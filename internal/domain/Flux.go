package domain

import (
	"fmt"
	"time"
)

// Granularity define a janela de tempo da extração de um flux
type Granularity string

const (
	GranularityDaily  Granularity = "Daily"
	GranularityHourly Granularity = "Hourly"
	GranularityWeekly Granularity = "Weekly"
)

// Dimensões de breakdown aceitas na configuração de um flux
const (
	BreakdownAge      = "Age"
	BreakdownGender   = "Gender"
	BreakdownPlatform = "Platform"
	BreakdownRegion   = "Region"
)

// BreakdownDimensions mapeia o nome da dimensão configurada para o campo
// bruto correspondente da plataforma. Nomes sem entrada nesta tabela são
// ignorados silenciosamente (permissividade intencional: a validação do
// flux apenas registra o aviso, sem falhar a execução).
var BreakdownDimensions = map[string]string{
	BreakdownAge:      "age",
	BreakdownGender:   "gender",
	BreakdownPlatform: "publisher_platform",
	BreakdownRegion:   "region",
}

// SyncConfig é a configuração de extração de um flux, definida pelo tenant
type SyncConfig struct {
	Granularity    Granularity `json:"granularity"`
	Breakdowns     []string    `json:"breakdowns"`
	EnableVisuals  bool        `json:"enable_visuals"`
	EnableAnalysis bool        `json:"analysis_logic"`
}

// DestinationMapping indica as abas de destino na planilha do tenant
type DestinationMapping struct {
	RawDataTab  string `json:"raw_data_tab"`
	AnalysisTab string `json:"analysis_tab,omitempty"`
}

// Credentials carrega as credenciais externas de um tenant. Somente leitura
// para o pipeline; nunca são persistidas nem registradas em log.
type Credentials struct {
	MetaAccessToken    string `json:"-"`
	GoogleRefreshToken string `json:"-"`
}

// Flux representa um pipeline de sincronização configurado por um tenant:
// uma conta de anúncios de origem ligada a uma planilha de destino.
type Flux struct {
	ID                 string
	TenantID           string
	Name               string
	AdAccountID        string
	SpreadsheetID      string
	Config             SyncConfig
	DestinationMapping DestinationMapping
	Credentials        Credentials
	LastSyncedAt       *time.Time
}

// Validate verifica os invariantes da configuração antes da execução
func (f *Flux) Validate() error {
	if f.AdAccountID == "" {
		return fmt.Errorf("flux %s: conta de anúncios não configurada", f.ID)
	}

	if f.SpreadsheetID == "" {
		return fmt.Errorf("flux %s: planilha de destino não configurada", f.ID)
	}

	if f.Credentials.MetaAccessToken == "" {
		return fmt.Errorf("flux %s: credencial da plataforma de anúncios ausente", f.ID)
	}

	if f.Credentials.GoogleRefreshToken == "" {
		return fmt.Errorf("flux %s: credencial da planilha ausente", f.ID)
	}

	switch f.Config.Granularity {
	case GranularityDaily, GranularityHourly, GranularityWeekly:
	default:
		return fmt.Errorf("flux %s: granularidade inválida %q", f.ID, f.Config.Granularity)
	}

	if f.Config.EnableAnalysis {
		if f.DestinationMapping.AnalysisTab == "" {
			return fmt.Errorf("flux %s: aba de análise obrigatória quando a análise está habilitada", f.ID)
		}
		if f.DestinationMapping.AnalysisTab == f.DestinationMapping.RawDataTab {
			return fmt.Errorf("flux %s: abas de dados e de análise devem ser diferentes", f.ID)
		}
	}

	return nil
}

// RawTabOrDefault retorna a aba de dados brutos, com fallback para fluxes
// criados antes da coluna de mapeamento existir
func (m DestinationMapping) RawTabOrDefault() string {
	if m.RawDataTab == "" {
		return "Sheet1"
	}
	return m.RawDataTab
}
