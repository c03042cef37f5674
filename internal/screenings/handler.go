package screenings

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cv-screener/internal/extract"
	"cv-screener/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches screening routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/screenings", h.screen)
}

func (h *Handler) screen(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.bodyLimit())

	form, err := c.MultipartForm()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid multipart request", nil)
		return
	}

	jobDescription := strings.TrimSpace(firstValue(form.Value["job_description"]))
	if jobDescription == "" {
		fh := firstFile(form.File["job_description_file"])
		if fh == nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "job_description or job_description_file is required", nil)
			return
		}
		data, readErr := readPart(fh)
		if readErr != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read job description file", nil)
			return
		}
		text, extractErr := extract.Text(c.Request.Context(), data, fh.Header.Get("Content-Type"), fh.Filename)
		if extractErr != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read job description file", nil)
			return
		}
		jobDescription = text
	}

	mustHave := splitSkills(form.Value["must_have_skills"])

	uploads := make([]CandidateUpload, 0, len(form.File["cvs"]))
	for _, fh := range form.File["cvs"] {
		data, readErr := readPart(fh)
		if readErr != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read cv file "+fh.Filename, nil)
			return
		}
		uploads = append(uploads, CandidateUpload{
			FileName: fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Data:     data,
		})
	}

	result, err := h.Svc.Screen(c.Request.Context(), jobDescription, mustHave, uploads)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrTooManyCandidates):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to run screening", nil)
		}
		return
	}

	respond.OK(c, result)
}

// bodyLimit caps the whole multipart body: every allowed CV at full size,
// one job description file, and slack for the text fields.
func (h *Handler) bodyLimit() int64 {
	perFile := h.Svc.MaxUploadBytes
	if perFile <= 0 {
		perFile = 10 << 20
	}
	files := int64(h.Svc.MaxCandidates)
	if files <= 0 {
		files = 1
	}
	return perFile*(files+1) + 1<<20
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func firstFile(files []*multipart.FileHeader) *multipart.FileHeader {
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func splitSkills(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
