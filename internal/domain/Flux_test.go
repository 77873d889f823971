package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validFlux() *Flux {
	return &Flux{
		ID:            "f1",
		TenantID:      "t1",
		AdAccountID:   "acct-1",
		SpreadsheetID: "sheet-1",
		Config: SyncConfig{
			Granularity: GranularityDaily,
		},
		Credentials: Credentials{
			MetaAccessToken:    "meta-token",
			GoogleRefreshToken: "google-token",
		},
	}
}

func TestFluxValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *Flux)
		wantErr string
	}{
		{
			name:   "Flux completo - deve passar",
			mutate: func(f *Flux) {},
		},
		{
			name:    "Sem conta de anúncios - deve falhar",
			mutate:  func(f *Flux) { f.AdAccountID = "" },
			wantErr: "conta de anúncios",
		},
		{
			name:    "Sem planilha - deve falhar",
			mutate:  func(f *Flux) { f.SpreadsheetID = "" },
			wantErr: "planilha de destino",
		},
		{
			name:    "Sem credencial da plataforma - deve falhar",
			mutate:  func(f *Flux) { f.Credentials.MetaAccessToken = "" },
			wantErr: "credencial da plataforma",
		},
		{
			name:    "Sem credencial da planilha - deve falhar",
			mutate:  func(f *Flux) { f.Credentials.GoogleRefreshToken = "" },
			wantErr: "credencial da planilha",
		},
		{
			name:    "Granularidade desconhecida - deve falhar",
			mutate:  func(f *Flux) { f.Config.Granularity = "Fortnightly" },
			wantErr: "granularidade inválida",
		},
		{
			name: "Análise sem aba de análise - deve falhar",
			mutate: func(f *Flux) {
				f.Config.EnableAnalysis = true
				f.DestinationMapping = DestinationMapping{RawDataTab: "Dados"}
			},
			wantErr: "aba de análise obrigatória",
		},
		{
			name: "Análise na mesma aba dos dados - deve falhar",
			mutate: func(f *Flux) {
				f.Config.EnableAnalysis = true
				f.DestinationMapping = DestinationMapping{RawDataTab: "Dados", AnalysisTab: "Dados"}
			},
			wantErr: "devem ser diferentes",
		},
		{
			name: "Análise com abas distintas - deve passar",
			mutate: func(f *Flux) {
				f.Config.EnableAnalysis = true
				f.DestinationMapping = DestinationMapping{RawDataTab: "Dados", AnalysisTab: "Análise"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flux := validFlux()
			tt.mutate(flux)

			err := flux.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestRawTabOrDefault(t *testing.T) {
	assert.Equal(t, "Sheet1", DestinationMapping{}.RawTabOrDefault())
	assert.Equal(t, "Dados", DestinationMapping{RawDataTab: "Dados"}.RawTabOrDefault())
}
