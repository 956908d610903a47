// Package ingest turns an input file into ordered raw pages. PDF text
// layers are read directly; blank pages fall back to OCR; saved HTML copies
// of legislation pages are reduced to their visible text. Extraction is the
// only stage allowed to touch the filesystem or spawn processes.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lawtools/actlens/internal/cache"
	"github.com/lawtools/actlens/internal/model"
)

// Extractor reads input files into pages, consulting the page cache first.
type Extractor struct {
	cache cache.Cache // nil disables caching
	ocr   *OCR        // nil disables the OCR fallback
	cfg   *model.Config
}

// NewExtractor creates an extractor. The OCR fallback is attached only when
// it is enabled and its helper binaries exist; a missing toolchain degrades
// pages to the failed tag instead of aborting runs.
func NewExtractor(cfg *model.Config, pageCache cache.Cache) *Extractor {
	e := &Extractor{cache: pageCache, cfg: cfg}
	if cfg.OCR.Enabled {
		ocr, err := NewOCR(cfg.OCR)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: OCR fallback unavailable: %v\n", err)
		} else {
			e.ocr = ocr
		}
	}
	return e
}

// Extract returns the ordered pages of the given file. The only fatal
// condition is an input that yields no pages at all.
func (e *Extractor) Extract(ctx context.Context, path string) ([]model.Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	key := cache.Key(data)
	if e.cache != nil {
		if payload, found := e.cache.Get(key); found {
			var pages []model.Page
			if err := json.Unmarshal(payload, &pages); err == nil && len(pages) > 0 && !hasFailedPages(pages) {
				return pages, nil
			}
		}
	}

	var pages []model.Page
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		pages, err = ExtractHTML(data)
	default:
		pages, err = e.extractPDF(ctx, path, data)
	}
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages extracted from %s", path)
	}

	if e.cache != nil && !hasFailedPages(pages) {
		if payload, err := json.Marshal(pages); err == nil {
			_ = e.cache.Set(key, payload, 0)
		}
	}
	return pages, nil
}

// hasFailedPages reports whether any page carries the failed tag. Failed
// pages depend on transient conditions (OCR disabled, toolchain missing),
// so such extractions are neither cached nor served from the cache: a later
// run with OCR available must retry, not inherit the gap.
func hasFailedPages(pages []model.Page) bool {
	for _, p := range pages {
		if p.Method == model.MethodFailed {
			return true
		}
	}
	return false
}
