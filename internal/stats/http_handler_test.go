package stats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubRepo struct {
	counts Counts
	err    error
}

func (s stubRepo) Counts(ctx context.Context) (Counts, error) {
	return s.counts, s.err
}

func TestHTTPHandler_Get(t *testing.T) {
	h := NewHTTPHandler(stubRepo{counts: Counts{
		NumBooks:              12,
		NumInstances:          30,
		NumInstancesAvailable: 18,
		NumAuthors:            7,
		NumGenres:             5,
	}})

	w := httptest.NewRecorder()
	h.Get(w, httptest.NewRequest(http.MethodGet, "/stats", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool   `json:"success"`
		Data    Counts `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 18, resp.Data.NumInstancesAvailable)
}

func TestHTTPHandler_Get_Error(t *testing.T) {
	h := NewHTTPHandler(stubRepo{err: errors.New("connection reset")})

	w := httptest.NewRecorder()
	h.Get(w, httptest.NewRequest(http.MethodGet, "/stats", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
