package book

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Huntitude/locallibrary/internal/catalog"
	"github.com/Huntitude/locallibrary/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// bookView decorates a book with its genre preview for list and detail
// responses.
type bookView struct {
	catalog.Book
	DisplayGenre string `json:"display_genre"`
}

func viewOf(b catalog.Book) bookView {
	return bookView{Book: b, DisplayGenre: b.DisplayGenre()}
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	books, total, err := h.service.List(r.Context(), pageSize, (page-1)*pageSize)
	if err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}

	views := make([]bookView, 0, len(books))
	for _, b := range books {
		views = append(views, viewOf(b))
	}

	httpx.JSONSuccess(r, w, views, map[string]any{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	})
}

// Get handles GET /books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, viewOf(b), nil)
}

type bookReq struct {
	Title      *string   `json:"title"`
	AuthorID   *string   `json:"author_id"`
	Summary    *string   `json:"summary"`
	ISBN       *string   `json:"isbn"`
	LanguageID *string   `json:"language_id"`
	GenreIDs   *[]string `json:"genre_ids"`
	BookAdded  *string   `json:"book_added"`
}

func (req bookReq) apply(b *catalog.Book) error {
	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.AuthorID != nil {
		if *req.AuthorID == "" {
			b.AuthorID = nil
		} else {
			b.AuthorID = req.AuthorID
		}
	}
	if req.Summary != nil {
		b.Summary = *req.Summary
	}
	if req.ISBN != nil {
		b.ISBN = *req.ISBN
	}
	if req.LanguageID != nil {
		if *req.LanguageID == "" {
			b.LanguageID = nil
		} else {
			b.LanguageID = req.LanguageID
		}
	}
	if req.BookAdded != nil {
		if *req.BookAdded == "" {
			b.BookAdded = nil
		} else {
			t, err := catalog.ParseDate("book_added", *req.BookAdded)
			if err != nil {
				return err
			}
			b.BookAdded = &t
		}
	}
	return nil
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	var b catalog.Book
	if err := req.apply(&b); err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	var genreIDs []string
	if req.GenreIDs != nil {
		genreIDs = *req.GenreIDs
	}
	if err := h.service.Create(r.Context(), &b, genreIDs); err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONCreated(r, w, viewOf(b))
}

// Update handles PATCH /books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req bookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	b, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	if err := req.apply(&b); err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	var genreIDs []string
	if req.GenreIDs != nil {
		genreIDs = *req.GenreIDs
	}
	updated, err := h.service.Update(r.Context(), &b, genreIDs)
	if err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, viewOf(updated), nil)
}

// Delete handles DELETE /books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONNoContent(w)
}

type nameReq struct {
	Name string `json:"name"`
}

// ListGenres handles GET /genres
func (h *HTTPHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.ListGenres(r.Context())
	if err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, genres, nil)
}

// CreateGenre handles POST /genres
func (h *HTTPHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req nameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	g := catalog.Genre{Name: req.Name}
	if err := h.service.CreateGenre(r.Context(), &g); err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONCreated(r, w, g)
}

// UpdateGenre handles PATCH /genres/{id}
func (h *HTTPHandler) UpdateGenre(w http.ResponseWriter, r *http.Request) {
	var req nameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	g := catalog.Genre{ID: r.PathValue("id"), Name: req.Name}
	if err := h.service.UpdateGenre(r.Context(), &g); err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, g, nil)
}

// DeleteGenre handles DELETE /genres/{id}
func (h *HTTPHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteGenre(r.Context(), r.PathValue("id")); err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONNoContent(w)
}

// ListLanguages handles GET /languages
func (h *HTTPHandler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	languages, err := h.service.ListLanguages(r.Context())
	if err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, languages, nil)
}

// CreateLanguage handles POST /languages
func (h *HTTPHandler) CreateLanguage(w http.ResponseWriter, r *http.Request) {
	var req nameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	l := catalog.Language{Name: req.Name}
	if err := h.service.CreateLanguage(r.Context(), &l); err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONCreated(r, w, l)
}

// UpdateLanguage handles PATCH /languages/{id}
func (h *HTTPHandler) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	var req nameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	l := catalog.Language{ID: r.PathValue("id"), Name: req.Name}
	if err := h.service.UpdateLanguage(r.Context(), &l); err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, l, nil)
}

// DeleteLanguage handles DELETE /languages/{id}
func (h *HTTPHandler) DeleteLanguage(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteLanguage(r.Context(), r.PathValue("id")); err != nil {
		httpx.JSONDomainError(r, w, err)
		return
	}
	httpx.JSONNoContent(w)
}
