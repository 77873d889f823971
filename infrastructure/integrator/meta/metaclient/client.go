package metaclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	metadomain "github.com/vfg2006/flux-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/flux-sync-api/internal/config"
)

type Client interface {
	GetAdInsights(ctx context.Context, accountID string, params url.Values) ([]metadomain.AdInsight, error)
	GetAdCreatives(ctx context.Context, adIDs []string) (map[string]metadomain.AdWithCreative, error)
}

// MetaClient é um cliente da Graph API vinculado à credencial de um único
// tenant. Cada flux recebe sua própria instância — nenhum estado de
// credencial é compartilhado ou mutado entre tenants.
type MetaClient struct {
	cfg         *config.Config
	accessToken string
	httpClient  *http.Client
}

func NewClient(cfg *config.Config, accessToken string) Client {
	return &MetaClient{
		cfg:         cfg,
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// HandleResponse manipula a resposta HTTP e converte erros da plataforma,
// preservando o código numérico para o chamador
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Code == 0 {
		return nil, &metadomain.APIError{Details: metadomain.ErrorDetails{
			Message: string(body),
			Code:    resp.StatusCode,
		}}
	}

	return nil, &metadomain.APIError{Details: errResp.Error}
}
