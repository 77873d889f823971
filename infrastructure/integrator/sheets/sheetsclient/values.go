package sheetsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ClearValues apaga todos os valores do intervalo informado. A formatação
// das células é preservada; apenas o conteúdo é removido.
func (c *SheetsClient) ClearValues(ctx context.Context, spreadsheetID, rangeA1 string) error {
	requestURL := fmt.Sprintf("%s/%s/values/%s:clear",
		c.cfg.Sheets.URL, spreadsheetID, url.PathEscape(rangeA1))

	_, err := c.doRequest(ctx, http.MethodPost, requestURL, nil)
	return err
}

// UpdateValues grava a matriz de valores a partir do canto superior esquerdo
// do intervalo, com interpretação USER_ENTERED para que fórmulas como
// =IMAGE() sejam avaliadas pela planilha
func (c *SheetsClient) UpdateValues(ctx context.Context, spreadsheetID, rangeA1 string, values [][]interface{}) error {
	payload := map[string]interface{}{
		"range":          rangeA1,
		"majorDimension": "ROWS",
		"values":         values,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar os valores: %w", err)
	}

	requestURL := fmt.Sprintf("%s/%s/values/%s?valueInputOption=USER_ENTERED",
		c.cfg.Sheets.URL, spreadsheetID, url.PathEscape(rangeA1))

	_, err = c.doRequest(ctx, http.MethodPut, requestURL, bytes.NewReader(body))
	return err
}
