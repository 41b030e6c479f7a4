package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

func newTestGeneratorHandler() *GeneratorHandler {
	return NewGeneratorHandler(service.NewGeneratorService(service.Limits{MaxLength: 128, MaxCount: 10}, nil))
}

func TestHandleGenerate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCount  int
		wantLength int
	}{
		{"empty body uses defaults", "", http.StatusOK, 1, 16},
		{"empty object uses defaults", "{}", http.StatusOK, 1, 16},
		{"custom", `{"length": 24, "count": 3, "special": false}`, http.StatusOK, 3, 24},
		{"length too short", `{"length": 3}`, http.StatusBadRequest, 0, 0},
		{"length too long", `{"length": 129}`, http.StatusBadRequest, 0, 0},
		{"count too large", `{"count": 11}`, http.StatusBadRequest, 0, 0},
		{"minimums exceed length", `{"length": 4, "min_digits": 3}`, http.StatusBadRequest, 0, 0},
		{
			"no classes",
			`{"lowercase": false, "uppercase": false, "digits": false, "special": false}`,
			http.StatusBadRequest, 0, 0,
		},
		{"malformed json", `{"length":`, http.StatusBadRequest, 0, 0},
	}

	h := newTestGeneratorHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.HandleGenerate(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.wantStatus != http.StatusOK {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.NotEmpty(t, body["error"])
				return
			}

			var resp model.GenerateResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCount, resp.Count)
			assert.Len(t, resp.Passwords, tt.wantCount)
			for _, pw := range resp.Passwords {
				assert.Len(t, pw, tt.wantLength)
			}
		})
	}
}

func TestHandleGenerate_ConfigurationMessage(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(`{"length": 4, "min_digits": 3}`))
	rec := httptest.NewRecorder()
	newTestGeneratorHandler().HandleGenerate(rec, req)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "minimum character requirements exceed password length")
}

func TestHandleGenerate_BodyTooLarge(t *testing.T) {
	big := `{"custom_chars": "` + strings.Repeat("x", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(big))
	rec := httptest.NewRecorder()
	newTestGeneratorHandler().HandleGenerate(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandleGenerate_ShowStrength(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(`{"count": 2, "show_strength": true}`))
	rec := httptest.NewRecorder()
	newTestGeneratorHandler().HandleGenerate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Strength, 2)
	assert.Equal(t, 16, resp.Strength[0].Length)
}

func TestHandleAnalyze(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(`{"password": "abcdefgh"}`))
	rec := httptest.NewRecorder()
	newTestGeneratorHandler().HandleAnalyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, "Weak", raw["strength"])
	assert.EqualValues(t, 26, raw["pool_size"])
	assert.EqualValues(t, 3, raw["score"])

	var report crypto.StrengthReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, crypto.Weak, report.Strength)
	assert.InDelta(t, 37.6, report.Entropy, 0.05)
}

func TestHandleAnalyze_EmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", nil)
	rec := httptest.NewRecorder()
	newTestGeneratorHandler().HandleAnalyze(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
