package sheetsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/flux-sync-api/internal/config"
)

type Client interface {
	GetSpreadsheet(ctx context.Context, spreadsheetID string) (*Spreadsheet, error)
	AddSheet(ctx context.Context, spreadsheetID, title string) error
	ClearValues(ctx context.Context, spreadsheetID, rangeA1 string) error
	UpdateValues(ctx context.Context, spreadsheetID, rangeA1 string, values [][]interface{}) error
	ResizeRows(ctx context.Context, spreadsheetID string, sheetID int64, rowCount, pixelSize int) error
}

// SheetsClient é um cliente da API de planilhas vinculado à credencial de um
// único tenant. O refresh token nunca sai da instância: ele é trocado por um
// access token de curta duração sob demanda, mantido apenas em memória.
type SheetsClient struct {
	cfg          *config.Config
	refreshToken string
	httpClient   *http.Client

	mu             sync.Mutex
	accessToken    string
	tokenExpiresAt time.Time
}

// APIError preserva o status HTTP da API de planilhas para que o chamador
// distinga credencial inválida de falha genérica de escrita
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sheets API error (status %d): %s", e.StatusCode, e.Body)
}

// IsUnauthorized verifica se a credencial foi rejeitada pela API
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

func NewClient(cfg *config.Config, refreshToken string) Client {
	return &SheetsClient{
		cfg:          cfg,
		refreshToken: refreshToken,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// ensureAccessToken troca o refresh token por um access token quando não há
// token válido em cache. O formato do corpo segue o fluxo refresh_token do
// OAuth 2.0 (RFC 6749).
func (c *SheetsClient) ensureAccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiresAt) {
		return c.accessToken, nil
	}

	formData := url.Values{}
	formData.Set("client_id", c.cfg.Google.ClientID)
	formData.Set("client_secret", c.cfg.Google.ClientSecret)
	formData.Set("refresh_token", c.refreshToken)
	formData.Set("grant_type", "refresh_token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Google.TokenURL, strings.NewReader(formData.Encode()))
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição de token: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao trocar o refresh token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		// A troca de token falha com 400 invalid_grant quando o tenant
		// revogou o acesso; reportar como credencial rejeitada
		return "", &APIError{StatusCode: http.StatusUnauthorized, Body: string(body)}
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("erro ao decodificar a resposta de token: %w", err)
	}

	c.accessToken = token.AccessToken
	// Renovar um pouco antes de expirar para não usar token no limite
	c.tokenExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn-60) * time.Second)

	logrus.WithField("expires_in", token.ExpiresIn).Debug("Access token da planilha renovado")

	return c.accessToken, nil
}

// doRequest executa uma requisição autenticada e devolve o corpo da resposta
func (c *SheetsClient) doRequest(ctx context.Context, method, requestURL string, payload io.Reader) ([]byte, error) {
	accessToken, err := c.ensureAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
