package exports

import (
	"allbooks/internal/httpx"
	"errors"
	"net/http"
)

type HTTPHandler struct {
	module *Module
}

func NewHTTPHandler(module *Module) *HTTPHandler {
	return &HTTPHandler{module: module}
}

type exportInfo struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// List handles GET /v1/exports
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	names := h.module.Names()
	out := make([]exportInfo, 0, len(names))
	for _, name := range names {
		kind, err := h.module.Kind(name)
		if err != nil {
			continue
		}
		out = append(out, exportInfo{Name: name, Kind: kind})
	}
	httpx.JSONSuccess(w, r, out, nil)
}

// Get handles GET /v1/exports/{name}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	v, err := h.module.Get(r.PathValue("name"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, v, nil)
}

// Call handles POST /v1/exports/{name}/call
func (h *HTTPHandler) Call(w http.ResponseWriter, r *http.Request) {
	v, err := h.module.Call(r.Context(), r.PathValue("name"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, v, nil)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrUnknownExport):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Export not found", nil)
	case errors.Is(err, ErrNotCallable):
		httpx.JSONError(w, r, http.StatusBadRequest, "NOT_CALLABLE", "Export is not a function", nil)
	case errors.Is(err, ErrNotValue):
		httpx.JSONError(w, r, http.StatusBadRequest, "NOT_A_VALUE", "Export is a function, use /call", nil)
	default:
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
