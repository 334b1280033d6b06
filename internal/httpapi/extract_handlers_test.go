package httpapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCompany(t *testing.T) {
	h := ExtractHandler{}

	body := `{"text":"Jane Doe","html":"<html><head><meta property=\"og:site_name\" content=\"Initech\"></head><body></body></html>"}`
	rec := postJSON(t, h.Company, body)

	require.Equal(t, http.StatusOK, rec.Code)
	_, data, _ := decodeEnvelope(t, rec)

	var res struct {
		Company string `json:"company"`
	}
	require.NoError(t, json.Unmarshal(data, &res))
	assert.Equal(t, "Initech", res.Company)
}

func TestExtractCompanyRequiresHTML(t *testing.T) {
	h := ExtractHandler{}
	rec := postJSON(t, h.Company, `{"text":"Jane Doe"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
