package stats

import (
	"net/http"

	"github.com/Huntitude/locallibrary/internal/httpx"
)

type HTTPHandler struct {
	repo Repository
}

func NewHTTPHandler(repo Repository) *HTTPHandler {
	return &HTTPHandler{repo: repo}
}

// Get handles GET /stats
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	counts, err := h.repo.Counts(r.Context())
	if err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, counts, nil)
}
