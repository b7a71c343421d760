package api

import (
	"net/http"

	"voltrent/internal/auth"
	"voltrent/internal/service"
)

// maxDocumentSize caps driver document uploads at 10 MB.
const maxDocumentSize = 10 << 20

type DocumentHandler struct {
	Service *service.DocumentService
}

func NewDocumentHandler(s *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{Service: s}
}

// Upload accepts a multipart form with a "file" part and a "kind" field
// (e.g. drivers_license). The document stays pending until staff approve it.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentSize)
	if err := r.ParseMultipartForm(maxDocumentSize); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	kind := r.FormValue("kind")
	if kind == "" {
		http.Error(w, "kind field is required", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file part is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	doc, err := h.Service.Upload(auth.AccountID(r), kind, header.Filename, file)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.Service.List(auth.AccountID(r))
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"documents": docs})
}
