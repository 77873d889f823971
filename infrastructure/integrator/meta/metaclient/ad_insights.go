package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/flux-sync-api/infrastructure/integrator/meta/domain"
)

type responseAdInsights struct {
	Data   []metadomain.AdInsight `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

// maxInsightPages limita a paginação para evitar laço infinito em contas
// com volume anormal; a execução seguinte cobre o restante
const maxInsightPages = 20

// GetAdInsights busca as linhas de insights no nível de anúncio, seguindo a
// paginação da plataforma. Zero linhas é um resultado normal, não um erro.
func (c *MetaClient) GetAdInsights(ctx context.Context, accountID string, params url.Values) ([]metadomain.AdInsight, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.cfg.Meta.URL, accountID)

	query := url.Values{}
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	query.Set("access_token", c.accessToken)

	requestURL := baseURL + "?" + query.Encode()
	insights := make([]metadomain.AdInsight, 0)

	for page := 0; requestURL != "" && page < maxInsightPages; page++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar a requisição de insights")
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			logrus.WithError(err).Error("Erro ao fazer a requisição de insights")
			return nil, err
		}

		body, err := c.HandleResponse(resp)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}

		var response responseAdInsights
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON de insights")
			return nil, err
		}

		insights = append(insights, response.Data...)
		requestURL = response.Paging.Next
	}

	return insights, nil
}
