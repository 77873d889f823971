package metaclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/flux-sync-api/infrastructure/integrator/meta/domain"
)

// GetAdCreatives busca os metadados visuais de um lote de anúncios,
// indexados pelo ID do anúncio. O chamador é responsável por respeitar o
// limite de IDs por requisição da plataforma.
func (c *MetaClient) GetAdCreatives(ctx context.Context, adIDs []string) (map[string]metadomain.AdWithCreative, error) {
	params := url.Values{}
	params.Set("ids", strings.Join(adIDs, ","))
	params.Set("fields", "creative{thumbnail_url,image_url,title}")
	params.Set("access_token", c.accessToken)

	requestURL := c.cfg.Meta.URL + "/?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição de criativos")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição de criativos")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		return nil, err
	}

	creatives := make(map[string]metadomain.AdWithCreative)
	if err := json.Unmarshal(body, &creatives); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON de criativos")
		return nil, err
	}

	return creatives, nil
}
