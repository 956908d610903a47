package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lawtools/actlens/internal/model"
)

func testPipeline() *Pipeline {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.OCR.Enabled = false
	return New(cfg)
}

func samplePages() []model.Page {
	return []model.Page{
		{
			Number: 1,
			Method: model.MethodDirect,
			Text: `In this Act "qualifying person" means a person who has attained the age of 66.
The Secretary of State must pay a winter fuel payment to every qualifying person.
A person is entitled to a payment if the conditions in section 2 are satisfied.`,
		},
		{
			Number: 2,
			Method: model.MethodDirect,
			Text: `A person who fails to comply with these Regulations is liable to a penalty in respect of each failure.
The Secretary of State must keep a record of every payment made under this Act.
Records relating to payments must be retained for a period of six years.`,
		},
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	p := testPipeline()

	first, err := json.Marshal(p.Analyze(samplePages()))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := json.Marshal(p.Analyze(samplePages()))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if string(first) != string(second) {
		t.Error("Expected identical output for identical input across runs")
	}
}

func TestAnalyze_SummaryExtractiveAndOrdered(t *testing.T) {
	p := testPipeline()
	result := p.Analyze(samplePages())

	bullets := result.Summary.Bullets
	if len(bullets) == 0 {
		t.Fatal("Expected summary bullets for a substantive document")
	}
	if len(bullets) > p.cfg.Analyze.SummaryMax {
		t.Errorf("Expected at most %d bullets, got %d", p.cfg.Analyze.SummaryMax, len(bullets))
	}

	prev := -1
	for _, b := range bullets {
		idx := strings.Index(result.Document.Text, b)
		if idx < 0 {
			t.Errorf("Bullet is not a verbatim substring of the cleaned text: %q", b)
			continue
		}
		if idx < prev {
			t.Errorf("Bullets are not in document order at %q", b)
		}
		prev = idx
	}
}

func TestAnalyze_SectionsCompleteAndExtractive(t *testing.T) {
	p := testPipeline()
	result := p.Analyze(samplePages())

	cats := model.Categories()
	if len(result.Sections) != len(cats) {
		t.Fatalf("Expected %d sections, got %d", len(cats), len(result.Sections))
	}

	for _, cat := range cats {
		sec, ok := result.Sections[cat]
		if !ok {
			t.Fatalf("Missing section for category %s", cat)
		}
		if !sec.Found {
			if sec.Snippet != model.SectionSentinel {
				t.Errorf("Category %s: expected sentinel, got %q", cat, sec.Snippet)
			}
			continue
		}
		for _, part := range strings.Split(sec.Snippet, "\n\n") {
			if !strings.Contains(result.Document.Text, part) {
				t.Errorf("Category %s: snippet part is not verbatim: %q", cat, part)
			}
		}
	}

	if !result.Sections[model.CategoryDefinitions].Found {
		t.Error("Expected the definitions section to be found")
	}
	if !result.Sections[model.CategoryPenalties].Found {
		t.Error("Expected the penalties section to be found")
	}
}

func TestAnalyze_RuleOrderAndReportConsistency(t *testing.T) {
	p := testPipeline()
	result := p.Analyze(samplePages())

	if len(result.Rules) != 6 {
		t.Fatalf("Expected 6 rule results, got %d", len(result.Rules))
	}
	if len(result.Report.Rules) != 6 {
		t.Fatalf("Expected 6 rule stats in the report, got %d", len(result.Report.Rules))
	}

	for i, r := range result.Rules {
		stat := result.Report.Rules[i]
		if stat.Rule != r.Rule || stat.Status != r.Status || stat.Confidence != r.Confidence {
			t.Errorf("Report stat %d disagrees with rule result: %+v vs %+v", i, stat, r)
		}
		low := r.Confidence < p.cfg.Rules.PassThreshold
		if stat.LowConfidence != low {
			t.Errorf("Rule %q: expected low_confidence=%v at confidence %d", r.Rule, low, r.Confidence)
		}
	}

	for _, name := range result.Report.LowConfidence {
		found := false
		for _, stat := range result.Report.Rules {
			if stat.Rule == name && stat.LowConfidence {
				found = true
			}
		}
		if !found {
			t.Errorf("Warning list names %q but no stat marks it low confidence", name)
		}
	}
}

func TestAnalyze_PageAccounting(t *testing.T) {
	p := testPipeline()
	pages := samplePages()
	pages = append(pages, model.Page{Number: 3, Method: model.MethodOCR, Text: "Scanned appendix listing payment rates and records."})
	pages = append(pages, model.Page{Number: 4, Method: model.MethodFailed})

	report := p.Analyze(pages).Report
	if report.TotalPages != 4 {
		t.Errorf("Expected 4 total pages, got %d", report.TotalPages)
	}
	if report.DirectPages != 2 || report.OCRPages != 1 || report.FailedPages != 1 {
		t.Errorf("Unexpected page accounting: %d direct, %d ocr, %d failed",
			report.DirectPages, report.OCRPages, report.FailedPages)
	}
	if report.CleanLength == 0 || report.RawLength < report.CleanLength {
		t.Errorf("Unexpected lengths: raw %d, clean %d", report.RawLength, report.CleanLength)
	}
}

func TestBuildDocument_RawConcatenation(t *testing.T) {
	pages := []model.Page{
		{Number: 1, Text: "First page text.", Method: model.MethodDirect},
		{Number: 2, Text: "Second page text.", Method: model.MethodDirect},
	}

	doc := buildDocument(pages)
	want := "First page text.\nSecond page text."
	if doc.RawText != want {
		t.Errorf("Expected pages joined by a single line break, got %q", doc.RawText)
	}
	if doc.RawLength != len(want) {
		t.Errorf("Expected raw length %d, got %d", len(want), doc.RawLength)
	}
	if doc.CleanLength != len(doc.Text) {
		t.Errorf("Expected clean length %d, got %d", len(doc.Text), doc.CleanLength)
	}
}

func TestAnalyze_EmptyPages(t *testing.T) {
	p := testPipeline()
	result := p.Analyze([]model.Page{{Number: 1, Method: model.MethodFailed}})

	if len(result.Summary.Bullets) != 0 {
		t.Errorf("Expected no bullets for an empty document, got %d", len(result.Summary.Bullets))
	}
	for _, cat := range model.Categories() {
		if result.Sections[cat].Snippet != model.SectionSentinel {
			t.Errorf("Category %s: expected sentinel for empty document", cat)
		}
	}
	for _, r := range result.Rules {
		if r.Status != model.StatusFail || r.Confidence != 0 || r.Evidence != model.EvidenceSentinel {
			t.Errorf("Rule %q: expected fail/0/sentinel for empty document, got %+v", r.Rule, r)
		}
	}
	if len(result.Report.MissingSections) != 7 {
		t.Errorf("Expected all 7 sections missing, got %d", len(result.Report.MissingSections))
	}
	if len(result.Report.LowConfidence) != 6 {
		t.Errorf("Expected all 6 rules low confidence, got %d", len(result.Report.LowConfidence))
	}
}

func TestWriteArtifacts(t *testing.T) {
	p := testPipeline()
	result := p.Analyze(samplePages())

	outDir := t.TempDir()
	if err := p.Render(result, outDir); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	names := []string{FileRawText, FileCleanText, FileSummary, FileSections, FileRuleChecks}
	if len(result.Report.Artifacts) != len(names) {
		t.Fatalf("Expected %d artifacts, got %d", len(names), len(result.Report.Artifacts))
	}
	for i, name := range names {
		a := result.Report.Artifacts[i]
		if filepath.Base(a.Path) != name {
			t.Errorf("Artifact %d: expected %s, got %s", i, name, a.Path)
		}
		info, err := os.Stat(a.Path)
		if err != nil {
			t.Fatalf("Artifact %s was not written: %v", name, err)
		}
		if info.Size() != a.Bytes {
			t.Errorf("Artifact %s: recorded %d bytes, file has %d", name, a.Bytes, info.Size())
		}
	}

	clean, err := os.ReadFile(filepath.Join(outDir, FileCleanText))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(clean) != result.Document.Text {
		t.Error("Cleaned text artifact does not match the document text")
	}

	var sections map[string]string
	data, err := os.ReadFile(filepath.Join(outDir, FileSections))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := json.Unmarshal(data, &sections); err != nil {
		t.Fatalf("sections.json is not valid JSON: %v", err)
	}
	if len(sections) != 7 {
		t.Errorf("Expected 7 keys in sections.json, got %d", len(sections))
	}

	var checks []map[string]any
	data, err = os.ReadFile(filepath.Join(outDir, FileRuleChecks))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := json.Unmarshal(data, &checks); err != nil {
		t.Fatalf("rulechecks.json is not valid JSON: %v", err)
	}
	if len(checks) != 6 {
		t.Fatalf("Expected 6 entries in rulechecks.json, got %d", len(checks))
	}
	for _, entry := range checks {
		for _, key := range []string{"rule", "status", "evidence", "confidence"} {
			if _, ok := entry[key]; !ok {
				t.Errorf("rulechecks.json entry missing %q: %v", key, entry)
			}
		}
		if _, ok := entry["matches"]; ok {
			t.Error("rulechecks.json must not expose raw match counts")
		}
	}
}
