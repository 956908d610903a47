package ingest

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/lawtools/actlens/internal/model"
)

// extractPDF reads every page of the PDF text layer. A page with no usable
// text goes through the OCR fallback when one is attached; if that also
// fails the page is kept with the failed tag and empty text so the pipeline
// continues.
func (e *Extractor) extractPDF(ctx context.Context, path string, data []byte) ([]model.Page, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	total := reader.NumPage()
	pages := make([]model.Page, 0, total)
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text := ""
		p := reader.Page(i)
		if !p.V.IsNull() {
			// Some pages carry images only; extraction errors there are
			// expected and handled by the fallback.
			if t, err := p.GetPlainText(nil); err == nil {
				text = t
			}
		}
		if strings.TrimSpace(text) != "" {
			pages = append(pages, model.Page{Number: i, Text: text, Method: model.MethodDirect})
			continue
		}

		pages = append(pages, e.ocrPage(ctx, path, i))
	}
	return pages, nil
}

// ocrPage attempts the OCR fallback for one blank page. Every failure mode
// tags the page failed; none aborts the run.
func (e *Extractor) ocrPage(ctx context.Context, path string, number int) model.Page {
	page := model.Page{Number: number, Method: model.MethodFailed}
	if e.ocr == nil {
		return page
	}

	text, err := e.ocr.PageText(ctx, path, number)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: OCR failed for page %d: %v\n", number, err)
		return page
	}
	if strings.TrimSpace(text) == "" {
		return page
	}

	page.Text = text
	page.Method = model.MethodOCR
	return page
}
