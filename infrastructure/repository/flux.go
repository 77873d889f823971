package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/flux-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/flux-sync-api/internal/domain"
)

const (
	fluxesTable = "fluxes f"
)

// FluxRepository lê os fluxes elegíveis para sincronização e grava o
// marcador de sucesso. O pipeline não altera mais nada no registro.
type FluxRepository interface {
	ListEligible() ([]*domain.Flux, error)
	UpdateLastSyncedAt(fluxID string, syncedAt time.Time) error
}

type fluxRepository struct {
	conn *postgres.Connection
}

func NewFluxRepository(conn *postgres.Connection) FluxRepository {
	return &fluxRepository{
		conn: conn,
	}
}

// ListEligible retorna os fluxes com credenciais e destino ativos.
// Fluxes sem token da plataforma ou sem planilha não entram no lote.
func (r *fluxRepository) ListEligible() ([]*domain.Flux, error) {
	query, args, err := squirrel.
		Select(
			"f.id, f.tenant_id, f.name, f.ad_account_id, f.spreadsheet_id",
			"f.config, f.destination_mapping, f.last_synced_at",
			"t.fb_exchange_token, t.google_refresh_token",
		).
		From(fluxesTable).
		Join("tenants t ON t.id = f.tenant_id").
		Where(squirrel.NotEq{"t.fb_exchange_token": nil}).
		Where(squirrel.NotEq{"t.google_refresh_token": nil}).
		Where(squirrel.NotEq{"f.ad_account_id": ""}).
		Where(squirrel.NotEq{"f.spreadsheet_id": ""}).
		OrderBy("f.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	fluxes := make([]*domain.Flux, 0)
	for rows.Next() {
		flux, err := r.scanFlux(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear flux: %w", err)
		}
		fluxes = append(fluxes, flux)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return fluxes, nil
}

// UpdateLastSyncedAt grava o marcador de sucesso de um único flux
func (r *fluxRepository) UpdateLastSyncedAt(fluxID string, syncedAt time.Time) error {
	query, args, err := squirrel.
		Update("fluxes").
		Set("last_synced_at", syncedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": fluxID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("flux %s não encontrado para atualizar last_synced_at", fluxID)
	}

	return nil
}

func (r *fluxRepository) scanFlux(rows *sql.Rows) (*domain.Flux, error) {
	flux := &domain.Flux{}
	var configJSON, mappingJSON []byte
	var lastSyncedAt sql.NullTime
	var metaToken, googleToken sql.NullString

	err := rows.Scan(
		&flux.ID,
		&flux.TenantID,
		&flux.Name,
		&flux.AdAccountID,
		&flux.SpreadsheetID,
		&configJSON,
		&mappingJSON,
		&lastSyncedAt,
		&metaToken,
		&googleToken,
	)
	if err != nil {
		return nil, err
	}

	if configJSON != nil {
		if err := json.Unmarshal(configJSON, &flux.Config); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de config: %w", err)
		}
	}

	if mappingJSON != nil {
		if err := json.Unmarshal(mappingJSON, &flux.DestinationMapping); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de destination_mapping: %w", err)
		}
	}

	if lastSyncedAt.Valid {
		flux.LastSyncedAt = &lastSyncedAt.Time
	}

	flux.Credentials = domain.Credentials{
		MetaAccessToken:    metaToken.String,
		GoogleRefreshToken: googleToken.String,
	}

	return flux, nil
}
