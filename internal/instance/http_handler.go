package instance

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

// instanceView decorates an instance with the overdue flag and a readable
// status label.
type instanceView struct {
	catalog.BookInstance
	StatusLabel string `json:"status_label"`
	IsOverdue   bool   `json:"is_overdue"`
}

func viewOf(bi catalog.BookInstance, today time.Time) instanceView {
	return instanceView{
		BookInstance: bi,
		StatusLabel:  bi.Status.Label(),
		IsOverdue:    bi.IsOverdue(today),
	}
}

// List handles GET /instances with optional status and borrower filters.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var q Query
	if code := query.Get("status"); code != "" {
		status, err := catalog.ParseStatus(code)
		if err != nil {
			httpx.JSONDomainError(r, w, err)
			return
		}
		q.Status = &status
	}
	if borrower := query.Get("borrower"); borrower != "" {
		q.BorrowerID = &borrower
	}

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	q.Limit = pageSize
	q.Offset = (page - 1) * pageSize

	instances, total, err := h.service.List(r.Context(), q)
	if err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}

	today := now()
	views := make([]instanceView, 0, len(instances))
	for _, bi := range instances {
		views = append(views, viewOf(bi, today))
	}

	httpx.JSONSuccess(r, w, views, map[string]any{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	})
}

// Get handles GET /instances/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	bi, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, viewOf(bi, now()), nil)
}

type instanceReq struct {
	BookID     *string `json:"book_id"`
	BorrowerID *string `json:"borrower_id"`
	Imprint    *string `json:"imprint"`
	DueBack    *string `json:"due_back"`
	Status     *string `json:"status"`
}

func (req instanceReq) apply(bi *catalog.BookInstance) error {
	if req.BookID != nil {
		if *req.BookID == "" {
			bi.BookID = nil
		} else {
			bi.BookID = req.BookID
		}
	}
	if req.BorrowerID != nil {
		if *req.BorrowerID == "" {
			bi.BorrowerID = nil
		} else {
			bi.BorrowerID = req.BorrowerID
		}
	}
	if req.Imprint != nil {
		bi.Imprint = *req.Imprint
	}
	if req.DueBack != nil {
		if *req.DueBack == "" {
			bi.DueBack = nil
		} else {
			t, err := catalog.ParseDate("due_back", *req.DueBack)
			if err != nil {
				return err
			}
			bi.DueBack = &t
		}
	}
	if req.Status != nil {
		status, err := catalog.ParseStatus(*req.Status)
		if err != nil {
			return err
		}
		bi.Status = status
	}
	return nil
}

// Create handles POST /instances
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req instanceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	var bi catalog.BookInstance
	if err := req.apply(&bi); err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	if err := h.service.Create(r.Context(), &bi); err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONCreated(r, w, viewOf(bi, now()))
}

// Update handles PATCH /instances/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req instanceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	bi, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	if err := req.apply(&bi); err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	if err := h.service.Update(r.Context(), &bi); err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, viewOf(bi, now()), nil)
}

// Delete handles DELETE /instances/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONNoContent(w)
}
