package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-loyalty-admin/internal/service"
)

func newRateApp() *fiber.App {
	rateHandler := NewRateHandler(service.NewRateService(2.5, 0))
	app := fiber.New()
	app.Get("/dashboard/merchant/contribution-rate", rateHandler.GetRate)
	app.Put("/dashboard/merchant/contribution-rate", rateHandler.SaveRate)
	return app
}

func putRate(t *testing.T, app *fiber.App, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/dashboard/merchant/contribution-rate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	return resp, payload
}

func TestContributionRate(t *testing.T) {
	t.Run("Default rate", func(t *testing.T) {
		app := newRateApp()
		req := httptest.NewRequest(http.MethodGet, "/dashboard/merchant/contribution-rate", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		var payload map[string]float64
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, 2.5, payload["rate"])
	})

	t.Run("Valid save commits", func(t *testing.T) {
		app := newRateApp()
		resp, payload := putRate(t, app, `{"rate":4.2}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 4.2, payload["rate"])
	})

	t.Run("Out-of-range save returns an inline error and keeps the committed rate", func(t *testing.T) {
		app := newRateApp()

		resp, payload := putRate(t, app, `{"rate":12}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.NotEmpty(t, payload["error"])
		assert.Equal(t, 2.5, payload["rate"])

		req := httptest.NewRequest(http.MethodGet, "/dashboard/merchant/contribution-rate", nil)
		getResp, err := app.Test(req)
		require.NoError(t, err)
		var current map[string]float64
		require.NoError(t, json.NewDecoder(getResp.Body).Decode(&current))
		assert.Equal(t, 2.5, current["rate"])
	})
}
