package bitrix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"relaxan/app/config"

	"github.com/samber/do"
	"github.com/samber/oops"
)

// Lead is a CRM lead built from the collected contact details and the
// product the user was looking at.
type Lead struct {
	LastName     string
	FirstName    string
	MiddleName   string
	Phone        string
	City         string
	ProductName  string
	ProductColor string
	ProductSize  string
}

type Client struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(di *do.Injector) (*Client, error) {
	return &Client{
		cfg: do.MustInvoke[*config.Config](di),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// SendLead posts the lead to the configured webhook. Any status other than
// 200 is an error; there are no retries.
func (c *Client) SendLead(ctx context.Context, lead Lead) error {
	payload := map[string]any{
		"fields": map[string]any{
			"TITLE":       fmt.Sprintf("Заявка от клиента: %s %s %s", lead.LastName, lead.FirstName, lead.MiddleName),
			"NAME":        lead.FirstName,
			"LAST_NAME":   lead.LastName,
			"SECOND_NAME": lead.MiddleName,
			"PHONE": []map[string]string{
				{"VALUE": lead.Phone, "VALUE_TYPE": "WORK"},
			},
			"CITY": lead.City,
			"COMMENTS": fmt.Sprintf(
				"ФИО: %s %s %s\nНазвание товара: %s\nЦвет товара: %s\nРазмер товара: %s\nТелефон: %s\nГород: %s",
				lead.LastName, lead.FirstName, lead.MiddleName,
				lead.ProductName, lead.ProductColor, lead.ProductSize,
				lead.Phone, lead.City,
			),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return oops.Errorf("failed to marshal lead payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Bitrix.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return oops.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return oops.Errorf("failed to send lead to webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return oops.Errorf("unexpected webhook status: %d", resp.StatusCode)
	}

	return nil
}
