package author

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Huntitude/locallibrary/internal/catalog"
	"github.com/Huntitude/locallibrary/internal/httpx"
)

// now is a seam for tests.
var now = time.Now

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /authors
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	authors, total, err := h.service.List(r.Context(), pageSize, (page-1)*pageSize)
	if err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}

	httpx.JSONSuccess(r, w, authors, map[string]any{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	})
}

// Get handles GET /authors/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}

	meta := map[string]any{}
	if age, err := a.AgeOn(now()); err == nil {
		meta["age"] = age
	}
	httpx.JSONSuccess(r, w, a, meta)
}

type authorReq struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	DateOfBirth *string `json:"date_of_birth"`
	DateOfDeath *string `json:"date_of_death"`
}

// apply copies the provided fields onto the author. An explicit empty
// string clears an optional date.
func (req authorReq) apply(a *catalog.Author) error {
	if req.FirstName != nil {
		a.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		a.LastName = *req.LastName
	}
	if req.DateOfBirth != nil {
		if *req.DateOfBirth == "" {
			a.DateOfBirth = nil
		} else {
			t, err := catalog.ParseDate("date_of_birth", *req.DateOfBirth)
			if err != nil {
				return err
			}
			a.DateOfBirth = &t
		}
	}
	if req.DateOfDeath != nil {
		if *req.DateOfDeath == "" {
			a.DateOfDeath = nil
		} else {
			t, err := catalog.ParseDate("date_of_death", *req.DateOfDeath)
			if err != nil {
				return err
			}
			a.DateOfDeath = &t
		}
	}
	return nil
}

// Create handles POST /authors
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req authorReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	var a catalog.Author
	if err := req.apply(&a); err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	if err := h.service.Create(r.Context(), &a); err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONCreated(r, w, a)
}

// Update handles PATCH /authors/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req authorReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	a, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	if err := req.apply(&a); err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	if err := h.service.Update(r.Context(), &a); err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, a, nil)
}

// Delete handles DELETE /authors/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONNoContent(w)
}
