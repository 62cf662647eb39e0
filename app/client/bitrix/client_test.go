package bitrix

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"relaxan/app/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLead() Lead {
	return Lead{
		LastName:     "Иванов",
		FirstName:    "Сергей",
		MiddleName:   "Андреевич",
		Phone:        "+375257903263",
		City:         "Минск",
		ProductName:  "гольфы",
		ProductColor: "черный",
		ProductSize:  "4",
	}
}

func newTestClient(url string) *Client {
	return &Client{
		cfg: &config.Config{
			Bitrix: config.Bitrix{WebhookURL: url},
		},
		httpClient: http.DefaultClient,
	}
}

func TestSendLead(t *testing.T) {
	var captured map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).SendLead(context.Background(), testLead())
	require.NoError(t, err)

	fields, ok := captured["fields"].(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "Заявка от клиента: Иванов Сергей Андреевич", fields["TITLE"])
	assert.Equal(t, "Сергей", fields["NAME"])
	assert.Equal(t, "Иванов", fields["LAST_NAME"])
	assert.Equal(t, "Андреевич", fields["SECOND_NAME"])
	assert.Equal(t, "Минск", fields["CITY"])

	phones, ok := fields["PHONE"].([]any)
	require.True(t, ok)
	require.Len(t, phones, 1)
	phone := phones[0].(map[string]any)
	assert.Equal(t, "+375257903263", phone["VALUE"])
	assert.Equal(t, "WORK", phone["VALUE_TYPE"])

	comments, ok := fields["COMMENTS"].(string)
	require.True(t, ok)
	assert.Contains(t, comments, "Название товара: гольфы")
	assert.Contains(t, comments, "Цвет товара: черный")
	assert.Contains(t, comments, "Размер товара: 4")
}

func TestSendLeadNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).SendLead(context.Background(), testLead())
	assert.Error(t, err)
}

func TestSendLeadConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close()

	err := newTestClient(srv.URL).SendLead(context.Background(), testLead())
	assert.Error(t, err)
}
