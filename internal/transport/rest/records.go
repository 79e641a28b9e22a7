package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/healthtrack-backend/internal/coerce"
	"github.com/heartmarshall/healthtrack-backend/internal/domain"
)

// DefaultMaxBodyBytes caps request bodies when no limit is configured.
const DefaultMaxBodyBytes int64 = 1 << 20

// recordService is the CRUD surface of one entity's service.
type recordService[T any] interface {
	List(ctx context.Context) ([]T, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, in coerce.Input) (*T, error)
	Update(ctx context.Context, id int64, in coerce.Input) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// Options configures a RecordHandler.
type Options struct {
	// MaxBodyBytes limits the size of create and update bodies.
	MaxBodyBytes int64
	// ShowErrorDetails adds the internal error text to 500 responses.
	ShowErrorDetails bool
}

// RecordHandler serves the JSON endpoints of one entity.
type RecordHandler[T any] struct {
	svc     recordService[T]
	errs    errorWriter
	maxBody int64
}

// NewRecordHandler creates a RecordHandler named after the resource it serves.
func NewRecordHandler[T any](svc recordService[T], logger *slog.Logger, name string, opts Options) *RecordHandler[T] {
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	return &RecordHandler[T]{
		svc: svc,
		errs: errorWriter{
			log:         logger.With("handler", name),
			showDetails: opts.ShowErrorDetails,
		},
		maxBody: maxBody,
	}
}

// Register mounts the handler's routes under base. The by-owner listing is
// only mounted when byOwner is set.
func (h *RecordHandler[T]) Register(mux *http.ServeMux, base string, byOwner bool) {
	mux.HandleFunc("GET "+base, h.List)
	mux.HandleFunc("POST "+base, h.Create)
	mux.HandleFunc("GET "+base+"/{id}", h.Get)
	mux.HandleFunc("PUT "+base+"/{id}", h.Update)
	mux.HandleFunc("PATCH "+base+"/{id}", h.Update)
	mux.HandleFunc("DELETE "+base+"/{id}", h.Delete)
	if byOwner {
		mux.HandleFunc("GET "+base+"/user/{userId}", h.ListByOwner)
	}
}

// List handles GET base.
func (h *RecordHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		h.errs.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// ListByOwner handles GET base/user/{userId}.
func (h *RecordHandler[T]) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	items, err := h.svc.ListByOwner(r.Context(), ownerID)
	if err != nil {
		h.errs.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get handles GET base/{id}.
func (h *RecordHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.errs.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Create handles POST base.
func (h *RecordHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Create(r.Context(), in)
	if err != nil {
		h.errs.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// Update handles PUT and PATCH base/{id}. Both are partial.
func (h *RecordHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	in, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		h.errs.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE base/{id}.
func (h *RecordHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.errs.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeInput reads a JSON object body, keeping null and absent keys apart.
func (h *RecordHandler[T]) decodeInput(w http.ResponseWriter, r *http.Request) (coerce.Input, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}

	var in coerce.Input
	if err := json.Unmarshal(body, &in); err != nil || in == nil {
		writeError(w, http.StatusBadRequest, "request body must be a JSON object")
		return nil, false
	}
	return in, true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Fields: []domain.FieldError{{Field: name, Message: "must be an integer"}},
		})
		return 0, false
	}
	return id, true
}
