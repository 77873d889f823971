package domain

import "time"

// FluxSyncStatus é o estado terminal do processamento de um flux
type FluxSyncStatus string

const (
	FluxSyncSucceeded     FluxSyncStatus = "Success"
	FluxSyncSkippedNoData FluxSyncStatus = "SkippedNoData"
	FluxSyncFailed        FluxSyncStatus = "Failed"
)

// FluxReportEntry registra o desfecho do processamento de um flux
type FluxReportEntry struct {
	FluxID   string         `json:"flux_id"`
	FluxName string         `json:"flux_name,omitempty"`
	TenantID string         `json:"tenant_id"`
	Status    FluxSyncStatus `json:"status"`
	RowCount  int            `json:"row_count"`
	Error     string         `json:"error,omitempty"`
	ErrorCode string         `json:"error_code,omitempty"`
	Duration  string         `json:"duration,omitempty"`
}

// RunReport é o resumo de uma execução do lote de sincronização.
// Construído a cada execução; nunca persistido além da própria resposta.
type RunReport struct {
	RunID       string            `json:"run_id"`
	StartedAt   time.Time         `json:"started_at"`
	CompletedAt time.Time         `json:"completed_at"`
	TotalFluxes int               `json:"total_fluxes"`
	Succeeded   int               `json:"succeeded"`
	Skipped     int               `json:"skipped"`
	Failed      int               `json:"failed"`
	Entries     []FluxReportEntry `json:"details"`
}

// Append registra o desfecho de um flux e atualiza os contadores
func (r *RunReport) Append(entry FluxReportEntry) {
	switch entry.Status {
	case FluxSyncSucceeded:
		r.Succeeded++
	case FluxSyncSkippedNoData:
		r.Skipped++
	case FluxSyncFailed:
		r.Failed++
	}

	r.Entries = append(r.Entries, entry)
}
