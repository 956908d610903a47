package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lawtools/actlens/internal/model"
)

// Artifact file names inside the output directory.
const (
	FileRawText    = "extracted_text_raw.txt"
	FileCleanText  = "extracted_text.txt"
	FileSummary    = "summary.json"
	FileSections   = "sections.json"
	FileRuleChecks = "rulechecks.json"
)

// Renderer writes the analysis artifacts and the stdout run report.
type Renderer struct {
	verbose bool
}

// NewRenderer creates a renderer.
func NewRenderer(verbose bool) *Renderer {
	return &Renderer{verbose: verbose}
}

// WriteArtifacts writes all five artifacts into outDir and returns their
// recorded paths and sizes, in a fixed order.
func (r *Renderer) WriteArtifacts(result *Result, outDir string) ([]model.Artifact, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var artifacts []model.Artifact
	write := func(name string, data []byte) error {
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		artifacts = append(artifacts, model.Artifact{Path: path, Bytes: int64(len(data))})
		if r.verbose {
			fmt.Printf("✓ Wrote %s (%d bytes)\n", path, len(data))
		}
		return nil
	}

	if err := write(FileRawText, []byte(result.Document.RawText)); err != nil {
		return nil, err
	}
	if err := write(FileCleanText, []byte(result.Document.Text)); err != nil {
		return nil, err
	}

	summary, err := marshalJSON(result.Summary)
	if err != nil {
		return nil, err
	}
	if err := write(FileSummary, summary); err != nil {
		return nil, err
	}

	sections, err := marshalJSON(result.Sections.Snippets())
	if err != nil {
		return nil, err
	}
	if err := write(FileSections, sections); err != nil {
		return nil, err
	}

	checks, err := marshalJSON(result.Rules)
	if err != nil {
		return nil, err
	}
	if err := write(FileRuleChecks, checks); err != nil {
		return nil, err
	}

	return artifacts, nil
}

// RenderRunReport prints the diagnostic run report to stdout. It is always
// printed, including the explicit warnings for weak rules and missing
// sections.
func (r *Renderer) RenderRunReport(report *model.RunReport) {
	fmt.Printf("\n")
	fmt.Printf("═══════════════════════════════════════════════════════════\n")
	fmt.Printf("  Run Report: %s\n", report.Source)
	fmt.Printf("═══════════════════════════════════════════════════════════\n")
	fmt.Printf("\n")
	fmt.Printf("  Pages:        %d total (%d direct, %d ocr, %d failed)\n",
		report.TotalPages, report.DirectPages, report.OCRPages, report.FailedPages)
	fmt.Printf("  Text:         %d chars raw, %d chars cleaned\n",
		report.RawLength, report.CleanLength)
	fmt.Printf("\n")

	if len(report.Artifacts) > 0 {
		fmt.Printf("  Artifacts:\n")
		for _, a := range report.Artifacts {
			fmt.Printf("    %-28s %d bytes\n", filepath.Base(a.Path), a.Bytes)
		}
		fmt.Printf("\n")
	}

	fmt.Printf("  Sections:\n")
	for _, s := range report.Sections {
		if s.Found {
			fmt.Printf("    ✓ %-18s %d chars\n", s.Category, s.Length)
		} else {
			fmt.Printf("    ✗ %-18s not found\n", s.Category)
		}
	}
	fmt.Printf("\n")

	fmt.Printf("  Rules:\n")
	for _, rs := range report.Rules {
		mark := "✓"
		if rs.Status == model.StatusFail {
			mark = "✗"
		}
		fmt.Printf("    %s %-18s %-4s confidence %d (matches: %d)\n",
			mark, rs.Rule, rs.Status, rs.Confidence, rs.Matches)
	}
	fmt.Printf("\n")

	if len(report.LowConfidence) > 0 {
		fmt.Printf("  Warning: low-confidence rules: %v\n", report.LowConfidence)
	}
	if len(report.MissingSections) > 0 {
		fmt.Printf("  Warning: sections not found: %v\n", report.MissingSections)
	}
	if len(report.LowConfidence) > 0 || len(report.MissingSections) > 0 {
		fmt.Printf("\n")
	}
}

func marshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return append(data, '\n'), nil
}
