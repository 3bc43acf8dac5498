package loan

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Huntitude/locallibrary/internal/catalog"
	"github.com/Huntitude/locallibrary/internal/httpx"
	"github.com/Huntitude/locallibrary/internal/user"
)

// now is a seam for tests.
var now = time.Now

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type loanView struct {
	catalog.BookInstance
	StatusLabel string `json:"status_label"`
	IsOverdue   bool   `json:"is_overdue"`
}

func loanViews(instances []catalog.BookInstance, today time.Time) []loanView {
	views := make([]loanView, 0, len(instances))
	for _, bi := range instances {
		views = append(views, loanView{
			BookInstance: bi,
			StatusLabel:  bi.Status.Label(),
			IsOverdue:    bi.IsOverdue(today),
		})
	}
	return views
}

func pageParams(r *http.Request) (page, pageSize int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

func pageMeta(page, pageSize, total int) map[string]any {
	return map[string]any{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	}
}

func requireLibrarian(w http.ResponseWriter, r *http.Request) bool {
	if !user.CanMarkReturned(httpx.RoleFrom(r)) {
		httpx.JSONDomainError(r, w, catalog.ErrPermission)
		return false
	}
	return true
}

// Mine handles GET /loans/mine, the current user's borrowed instances.
func (h *HTTPHandler) Mine(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid credentials", nil)
		return
	}

	page, pageSize := pageParams(r)
	instances, total, err := h.service.ListBorrowedBy(r.Context(), userID, pageSize, (page-1)*pageSize)
	if err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, loanViews(instances, now()), pageMeta(page, pageSize, total))
}

// All handles GET /loans/all, the librarian's view of every loan.
func (h *HTTPHandler) All(w http.ResponseWriter, r *http.Request) {
	if !requireLibrarian(w, r) {
		return
	}

	page, pageSize := pageParams(r)
	instances, total, err := h.service.ListAllOnLoan(r.Context(), pageSize, (page-1)*pageSize)
	if err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, loanViews(instances, now()), pageMeta(page, pageSize, total))
}

// RenewForm handles GET /instances/{id}/renew: the instance plus the
// proposed default due date for pre-filling the form.
func (h *HTTPHandler) RenewForm(w http.ResponseWriter, r *http.Request) {
	if !requireLibrarian(w, r) {
		return
	}

	bi, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}

	today := now()
	httpx.JSONSuccess(r, w, loanViews([]catalog.BookInstance{bi}, today)[0], map[string]any{
		"proposed_due_back": ProposedRenewalDate(today).Format(catalog.DateLayout),
	})
}

type renewReq struct {
	DueBack string `json:"due_back" validate:"required"`
}

// Renew handles POST /instances/{id}/renew
func (h *HTTPHandler) Renew(w http.ResponseWriter, r *http.Request) {
	if !requireLibrarian(w, r) {
		return
	}

	var req renewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if err := catalog.Validate(req); err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	dueBack, err := catalog.ParseDate("due_back", req.DueBack)
	if err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}

	bi, err := h.service.Renew(r.Context(), r.PathValue("id"), dueBack)
	if err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, loanViews([]catalog.BookInstance{bi}, now())[0], nil)
}

// Return handles POST /instances/{id}/return
func (h *HTTPHandler) Return(w http.ResponseWriter, r *http.Request) {
	if !requireLibrarian(w, r) {
		return
	}

	bi, err := h.service.MarkReturned(r.Context(), r.PathValue("id"))
	if err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, loanViews([]catalog.BookInstance{bi}, now())[0], nil)
}
