package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/lostfound/internal/client/models"
	"github.com/dmitrijs2005/lostfound/internal/client/query"
	"github.com/dmitrijs2005/lostfound/internal/client/services"
	"github.com/dmitrijs2005/lostfound/internal/logging"
)

// maxBodyBytes caps a create request, embedded image included.
const maxBodyBytes = 16 << 20

// listParams maps query-string parameters onto filter dimensions.
var listParams = []struct {
	name string
	dim  query.Dimension
}{
	{"tab", query.DimensionTab},
	{"q", query.DimensionQuery},
	{"category", query.DimensionCategory},
	{"status", query.DimensionStatus},
	{"location", query.DimensionLocation},
	{"from", query.DimensionDateFrom},
	{"to", query.DimensionDateTo},
}

type handler struct {
	mu      sync.Mutex
	catalog *services.Catalog
	log     logging.Logger
}

func newHandler(catalog *services.Catalog, log logging.Logger) *handler {
	return &handler{catalog: catalog, log: log.With("component", "api_handler")}
}

type criteriaJSON struct {
	Tab      string `json:"tab"`
	Query    string `json:"q,omitempty"`
	Category string `json:"category,omitempty"`
	Status   string `json:"status,omitempty"`
	Location string `json:"location,omitempty"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
}

type listResponse struct {
	Items      []models.Entry `json:"items"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
	Total      int            `json:"total"`
	Criteria   criteriaJSON   `json:"criteria"`
}

type errorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Missing []string `json:"missing,omitempty"`
	Invalid []string `json:"invalid,omitempty"`
}

// withCatalog runs fn with exclusive access to the catalog. The lock is
// released even if fn panics.
func (h *handler) withCatalog(fn func(c *services.Catalog)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn(h.catalog)
}

func (h *handler) healthLive(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) listEntries(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	var deltas []query.Delta
	for _, p := range listParams {
		if values.Has(p.name) {
			deltas = append(deltas, query.Set(p.dim, values.Get(p.name)))
		}
	}
	crit, err := query.Criteria{}.Apply(deltas...)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_CRITERION", err.Error())
		return
	}

	page := 1
	if raw := values.Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			writeError(w, http.StatusBadRequest, "INVALID_PAGE", "page must be a positive integer")
			return
		}
	}

	var (
		view services.PageView
		size int
	)
	h.withCatalog(func(c *services.Catalog) {
		view = c.Query(crit, page)
		size = c.PageSize()
	})

	items := view.Items
	if items == nil {
		items = []models.Entry{}
	}
	writeJSON(w, http.StatusOK, listResponse{
		Items:      items,
		Page:       view.Page,
		PageSize:   size,
		TotalPages: view.TotalPages,
		Total:      view.Total,
		Criteria: criteriaJSON{
			Tab:      crit.Tab(),
			Query:    crit.Query,
			Category: string(crit.Category),
			Status:   string(crit.Status),
			Location: string(crit.Location),
			From:     crit.DateFrom,
			To:       crit.DateTo,
		},
	})
}

func (h *handler) getEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var (
		e  models.Entry
		ok bool
	)
	h.withCatalog(func(c *services.Catalog) { e, ok = c.Get(id) })

	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "entry "+id+" not found")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *handler) createEntry(w http.ResponseWriter, r *http.Request) {
	var p models.Payload
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&p); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "TOO_LARGE", err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "malformed JSON body: "+err.Error())
		return
	}

	var (
		e   models.Entry
		err error
	)
	h.withCatalog(func(c *services.Catalog) { e, err = c.Create(r.Context(), p) })

	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			resp := errorResponse{Code: "VALIDATION_FAILED", Message: err.Error(), Missing: verr.Missing}
			for _, ie := range verr.Invalid {
				resp.Invalid = append(resp.Invalid, ie.Error())
			}
			writeJSON(w, http.StatusBadRequest, resp)
			return
		}
		h.log.Error(r.Context(), "create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "could not create entry")
		return
	}

	w.Header().Set("Location", "/api/v1/entries/"+e.ID)
	writeJSON(w, http.StatusCreated, e)
}

func (h *handler) toggleEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var (
		e  models.Entry
		ok bool
	)
	h.withCatalog(func(c *services.Catalog) { e, ok = c.ToggleStatus(r.Context(), id) })

	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "entry "+id+" not found")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
