package gemini

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/abhyasttechno/awagen-api/internal/config"
	"github.com/abhyasttechno/awagen-api/internal/gen"
)

// Engine talks to the Gemini API. A fresh client is created per call
// and closed when the call returns.
type Engine struct {
	apiKey string
	model  string
	mode   string
	log    *zap.SugaredLogger
}

func New(apiKey, model, mode string, log *zap.SugaredLogger) *Engine {
	return &Engine{
		apiKey: strings.TrimSpace(apiKey),
		model:  strings.TrimSpace(model),
		mode:   mode,
		log:    log,
	}
}

func (e *Engine) Generate(ctx context.Context, req gen.Request) (string, error) {
	if e.apiKey == "" {
		return "", gen.ErrNotConfigured
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.apiKey))
	if err != nil {
		return "", fmt.Errorf("gemini: new client: %w", err)
	}
	defer cl.Close()

	parts := []genai.Part{genai.Text(req.Prompt)}
	if e.mode == config.ModeUpload {
		staged, cleanup := e.stage(ctx, clientFiles{cl}, req.Attachments)
		defer cleanup()
		parts = append(parts, staged...)
	} else {
		for _, att := range req.Attachments {
			parts = append(parts, genai.Blob{MIMEType: att.MIMEType, Data: att.Data})
		}
	}

	resp, err := cl.GenerativeModel(e.model).GenerateContent(ctx, parts...)
	if err != nil {
		return "", err
	}
	return joinText(resp), nil
}

// fileAPI is the slice of the Gemini File API the staging loop needs.
// Tests swap it out.
type fileAPI interface {
	Upload(ctx context.Context, path string, opts *genai.UploadFileOptions) (*genai.File, error)
	Delete(ctx context.Context, name string) error
}

type clientFiles struct{ cl *genai.Client }

func (c clientFiles) Upload(ctx context.Context, path string, opts *genai.UploadFileOptions) (*genai.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return c.cl.UploadFile(ctx, "", f, opts)
}

func (c clientFiles) Delete(ctx context.Context, name string) error {
	return c.cl.DeleteFile(ctx, name)
}

// stage writes each attachment to a scratch file and pushes it through
// the File API, turning it into a URI-referenced part. A staging
// failure drops that one attachment only. The returned cleanup removes
// every scratch file and provider file and must run on every exit path.
func (e *Engine) stage(ctx context.Context, files fileAPI, atts []gen.Attachment) ([]genai.Part, func()) {
	var (
		parts       []genai.Part
		scratch     []string
		remoteNames []string
	)
	cleanup := func() {
		for _, p := range scratch {
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				e.log.Warnw("failed to remove scratch file", "path", p, "error", err)
			}
		}
		for _, name := range remoteNames {
			if err := files.Delete(ctx, name); err != nil {
				e.log.Warnw("failed to delete provider file", "name", name, "error", err)
			}
		}
	}

	for _, att := range atts {
		tmp, err := os.CreateTemp("", "awagen-upload-*")
		if err != nil {
			e.log.Warnw("skipping attachment: scratch file", "filename", att.Filename, "error", err)
			continue
		}
		scratch = append(scratch, tmp.Name())
		_, werr := tmp.Write(att.Data)
		cerr := tmp.Close()
		if werr != nil || cerr != nil {
			e.log.Warnw("skipping attachment: scratch write", "filename", att.Filename, "writeError", werr, "closeError", cerr)
			continue
		}

		f, err := files.Upload(ctx, tmp.Name(), &genai.UploadFileOptions{
			DisplayName: att.Filename,
			MIMEType:    att.MIMEType,
		})
		if err != nil {
			e.log.Warnw("skipping attachment: upload failed", "filename", att.Filename, "error", err)
			continue
		}
		remoteNames = append(remoteNames, f.Name)
		e.log.Infow("uploaded attachment", "filename", att.Filename, "uri", f.URI)
		parts = append(parts, genai.FileData{MIMEType: f.MIMEType, URI: f.URI})
	}
	return parts, cleanup
}

func joinText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}
