package handle

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/abhyasttechno/awagen-api/internal/gen"
)

const maxUploadMemory = 32 << 20

type generateRequest struct {
	PostType            string `json:"postType"`
	InputLanguage       string `json:"inputLanguage"`
	OutputLanguage      string `json:"outputLanguage"`
	UserContext         string `json:"userContext"`
	ImagesSelectedCount int    `json:"imagesSelectedCount"`
}

type generateResponse struct {
	Facebook  string `json:"facebook"`
	X         string `json:"x"`
	Instagram string `json:"instagram"`
}

// GeneratePost handles POST /generate-post. It accepts either a JSON
// body (text-only mode) or a multipart form with file parts under
// "images", makes one model call, and returns the three platform
// sections.
func (h *Handle) GeneratePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	var (
		req  generateRequest
		atts []gen.Attachment
	)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
			return
		}
		req = generateRequest{
			PostType:       r.FormValue("postType"),
			InputLanguage:  r.FormValue("inputLanguage"),
			OutputLanguage: r.FormValue("outputLanguage"),
			UserContext:    r.FormValue("userContext"),
		}
		atts = h.collectImages(r)
		req.ImagesSelectedCount = len(atts)
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
	}

	userContext := strings.TrimSpace(req.UserContext)
	if userContext == "" {
		writeError(w, http.StatusBadRequest, "User context is required")
		return
	}

	in := gen.PromptInput{
		PostType:       defaultIfBlank(req.PostType, "General"),
		InputLanguage:  defaultIfBlank(req.InputLanguage, "English"),
		OutputLanguage: defaultIfBlank(req.OutputLanguage, "English"),
		UserContext:    userContext,
		ImageCount:     req.ImagesSelectedCount,
	}
	h.log.Infow("generate-post request",
		"postType", in.PostType,
		"outputLanguage", in.OutputLanguage,
		"context", truncate(userContext, 50),
		"images", in.ImageCount,
	)

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	raw, err := h.engine.Generate(ctx, gen.Request{
		Prompt:      gen.BuildPrompt(in),
		Attachments: atts,
	})
	if err != nil {
		h.log.Errorw("generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, classifyProviderError(err))
		return
	}
	if strings.TrimSpace(raw) == "" {
		h.log.Error("model returned empty response")
		writeError(w, http.StatusInternalServerError, "Failed to generate content from the AI model. The response was empty.")
		return
	}

	s := gen.SplitSections(raw)
	writeJSON(w, http.StatusOK, generateResponse{
		Facebook:  s.Facebook,
		X:         s.X,
		Instagram: s.Instagram,
	})
}

// collectImages reads the "images" file parts, keeping only parts with
// a filename and a declared image/* content type. Invalid parts are
// logged and skipped, never a request failure.
func (h *Handle) collectImages(r *http.Request) []gen.Attachment {
	if r.MultipartForm == nil {
		return nil
	}
	var atts []gen.Attachment
	for _, fh := range r.MultipartForm.File["images"] {
		declared := fh.Header.Get("Content-Type")
		if fh.Filename == "" || !strings.HasPrefix(declared, "image/") {
			h.log.Warnw("skipping non-image upload", "filename", fh.Filename, "contentType", declared)
			continue
		}
		f, err := fh.Open()
		if err != nil {
			h.log.Warnw("skipping unreadable upload", "filename", fh.Filename, "error", err)
			continue
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			h.log.Warnw("skipping unreadable upload", "filename", fh.Filename, "error", err)
			continue
		}
		atts = append(atts, gen.Attachment{
			Filename: fh.Filename,
			MIMEType: declared,
			Data:     data,
		})
	}
	return atts
}

func defaultIfBlank(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
