package ingest

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/lawtools/actlens/internal/model"
)

// OCR recovers text from image-only pages by rendering the page with
// pdftoppm and recognizing it with tesseract. Both are bounded synchronous
// subprocess calls; a shared rate limiter keeps concurrent batch workers
// from stampeding the CPU with renders.
type OCR struct {
	pdftoppm  string
	tesseract string
	cfg       model.OCRConfig
	limiter   *rate.Limiter
}

// NewOCR locates the helper binaries. An incomplete toolchain is reported
// as an error so the caller can degrade instead of failing per page.
func NewOCR(cfg model.OCRConfig) (*OCR, error) {
	pdftoppm, err := exec.LookPath("pdftoppm")
	if err != nil {
		return nil, fmt.Errorf("pdftoppm not found: %w", err)
	}
	tesseract, err := exec.LookPath("tesseract")
	if err != nil {
		return nil, fmt.Errorf("tesseract not found: %w", err)
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &OCR{
		pdftoppm:  pdftoppm,
		tesseract: tesseract,
		cfg:       cfg,
		limiter:   rate.NewLimiter(rate.Limit(cfg.PerSecond), burst),
	}, nil
}

// PageText renders and recognizes a single page.
func (o *OCR) PageText(ctx context.Context, pdfPath string, page int) (string, error) {
	if err := o.limiter.Wait(ctx); err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, o.cfg.PageTimeout)
	defer cancel()

	tmp, err := os.MkdirTemp("", "actlens-ocr-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	prefix := filepath.Join(tmp, "page")
	render := exec.CommandContext(ctx, o.pdftoppm,
		"-png",
		"-singlefile",
		"-r", strconv.Itoa(o.cfg.DPI),
		"-f", strconv.Itoa(page),
		"-l", strconv.Itoa(page),
		pdfPath, prefix)
	if out, err := render.CombinedOutput(); err != nil {
		return "", fmt.Errorf("render page %d: %v (%s)", page, err, out)
	}

	recognize := exec.CommandContext(ctx, o.tesseract, prefix+".png", "stdout")
	out, err := recognize.Output()
	if err != nil {
		return "", fmt.Errorf("recognize page %d: %w", page, err)
	}
	return string(out), nil
}
