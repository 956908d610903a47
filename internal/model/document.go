package model

// ExtractionMethod records how a page's text was obtained
type ExtractionMethod string

const (
	MethodDirect ExtractionMethod = "direct" // Read from the PDF text layer
	MethodOCR    ExtractionMethod = "ocr"    // Recovered by the OCR fallback
	MethodFailed ExtractionMethod = "failed" // No text layer and OCR failed or disabled
)

// Page is one page of raw extracted text
type Page struct {
	Number int              `json:"number"` // 1-based page number
	Text   string           `json:"text"`
	Method ExtractionMethod `json:"method"`
}

// Document is the full text of one act. Immutable once built: every later
// stage consumes it and produces new values.
type Document struct {
	Pages       []Page
	RawText     string // Pages concatenated in order, before cleanup
	Text        string // Normalized text that all analysis operates on
	RawLength   int
	CleanLength int
}

// PageCounts returns how many pages were extracted by each method.
func (d *Document) PageCounts() (direct, ocr, failed int) {
	for _, p := range d.Pages {
		switch p.Method {
		case MethodDirect:
			direct++
		case MethodOCR:
			ocr++
		case MethodFailed:
			failed++
		}
	}
	return direct, ocr, failed
}

// Keyword is a normalized token with its document frequency
type Keyword struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// Sentence is a scored span of document text. Ephemeral: created during
// summarization only.
type Sentence struct {
	Text         string
	Position     int // Index in document sentence order
	Score        int
	KeywordHits  int
	LegalHits    int
	HasNumber    bool
	IsDefinition bool
}
