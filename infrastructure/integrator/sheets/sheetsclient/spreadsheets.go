package sheetsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// Spreadsheet são os metadados da planilha necessários para localizar abas
type Spreadsheet struct {
	SpreadsheetID string  `json:"spreadsheetId"`
	Sheets        []Sheet `json:"sheets"`
}

type Sheet struct {
	Properties SheetProperties `json:"properties"`
}

type SheetProperties struct {
	SheetID int64  `json:"sheetId"`
	Title   string `json:"title"`
}

// SheetByTitle localiza uma aba pelo título
func (s *Spreadsheet) SheetByTitle(title string) (SheetProperties, bool) {
	for _, sheet := range s.Sheets {
		if sheet.Properties.Title == title {
			return sheet.Properties, true
		}
	}
	return SheetProperties{}, false
}

// GetSpreadsheet busca os metadados da planilha, incluindo a lista de abas
func (c *SheetsClient) GetSpreadsheet(ctx context.Context, spreadsheetID string) (*Spreadsheet, error) {
	requestURL := fmt.Sprintf("%s/%s?fields=spreadsheetId,sheets.properties(sheetId,title)",
		c.cfg.Sheets.URL, spreadsheetID)

	body, err := c.doRequest(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	spreadsheet := &Spreadsheet{}
	if err := json.Unmarshal(body, spreadsheet); err != nil {
		return nil, fmt.Errorf("erro ao decodificar metadados da planilha: %w", err)
	}

	return spreadsheet, nil
}

// AddSheet cria uma aba com o título informado. A operação é idempotente:
// uma aba já existente não é tratada como erro.
func (c *SheetsClient) AddSheet(ctx context.Context, spreadsheetID, title string) error {
	payload := map[string]interface{}{
		"requests": []map[string]interface{}{
			{
				"addSheet": map[string]interface{}{
					"properties": map[string]interface{}{
						"title": title,
					},
				},
			},
		},
	}

	requestURL := fmt.Sprintf("%s/%s:batchUpdate", c.cfg.Sheets.URL, spreadsheetID)

	_, err := c.batchUpdate(ctx, requestURL, payload)
	if err != nil {
		apiErr, ok := err.(*APIError)
		if ok && apiErr.StatusCode == http.StatusBadRequest && strings.Contains(apiErr.Body, "already exists") {
			logrus.WithField("tab", title).Debug("Aba já existe na planilha, seguindo")
			return nil
		}
		return err
	}

	return nil
}

// ResizeRows fixa a altura em pixels das linhas de dados de uma aba,
// necessária para que as miniaturas de criativos fiquem visíveis
func (c *SheetsClient) ResizeRows(ctx context.Context, spreadsheetID string, sheetID int64, rowCount, pixelSize int) error {
	payload := map[string]interface{}{
		"requests": []map[string]interface{}{
			{
				"updateDimensionProperties": map[string]interface{}{
					"range": map[string]interface{}{
						"sheetId":   sheetID,
						"dimension": "ROWS",
						// A primeira linha é o cabeçalho e mantém a altura padrão
						"startIndex": 1,
						"endIndex":   rowCount + 1,
					},
					"properties": map[string]interface{}{
						"pixelSize": pixelSize,
					},
					"fields": "pixelSize",
				},
			},
		},
	}

	requestURL := fmt.Sprintf("%s/%s:batchUpdate", c.cfg.Sheets.URL, spreadsheetID)

	_, err := c.batchUpdate(ctx, requestURL, payload)
	return err
}

func (c *SheetsClient) batchUpdate(ctx context.Context, requestURL string, payload map[string]interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	return c.doRequest(ctx, http.MethodPost, requestURL, bytes.NewReader(body))
}
