package api

import (
	"io"
	"net/http"
)

// maxFileBytes caps request bodies on the file endpoints.
const maxFileBytes = 5 << 20

// FilesHandler handles the file inspection endpoints. Content is counted or
// named, never stored.
type FilesHandler struct{}

// Size handles GET /files/size. It reports the byte length of the raw body.
func (h *FilesHandler) Size(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFileBytes)
	defer r.Body.Close()

	data, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or unreadable")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]int{"file_size": len(data)})
}

// Upload handles PUT /files/upload. Only the declared filename is echoed;
// the content is not inspected.
func (h *FilesHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFileBytes)

	if err := r.ParseMultipartForm(maxFileBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "file field required")
		return
	}
	file.Close()

	jsonResponse(w, http.StatusOK, map[string]string{"file_name": header.Filename})
}
