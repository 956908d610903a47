// Package pipeline orchestrates the complete offline analysis: ingest,
// normalize, keyword ranking, summary, section extraction, rule checks,
// artifact rendering.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/lawtools/actlens/internal/analyze"
	"github.com/lawtools/actlens/internal/cache"
	"github.com/lawtools/actlens/internal/ingest"
	"github.com/lawtools/actlens/internal/model"
	"github.com/lawtools/actlens/internal/normalize"
	"github.com/lawtools/actlens/internal/rules"
	"github.com/lawtools/actlens/internal/sections"
)

// Pipeline runs the analysis for one document at a time. Every stage after
// ingestion is a pure function over immutable values, so a single Pipeline
// is safe to share across batch workers.
type Pipeline struct {
	extractor *ingest.Extractor
	sections  *sections.Extractor
	checker   *rules.Checker
	renderer  *Renderer
	cfg       *model.Config
}

// New creates a pipeline from the configuration.
func New(cfg *model.Config) *Pipeline {
	var pageCache cache.Cache
	if cfg.Cache.Enabled {
		pageCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}
	return &Pipeline{
		extractor: ingest.NewExtractor(cfg, pageCache),
		sections:  sections.NewExtractor(cfg),
		checker:   rules.NewChecker(cfg),
		renderer:  NewRenderer(cfg.Output.Verbose),
		cfg:       cfg,
	}
}

// Result bundles everything produced for one document
type Result struct {
	Document *model.Document
	Keywords []model.Keyword
	Summary  model.Summary
	Sections model.SectionSet
	Rules    []model.RuleResult
	Report   *model.RunReport
}

// Run ingests the file and analyzes it. The only error after ingestion is
// none: every analysis stage degrades to sentinel output instead.
func (p *Pipeline) Run(ctx context.Context, path string) (*Result, error) {
	pages, err := p.extractor.Extract(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	result := p.Analyze(pages)
	result.Report.Source = path
	return result, nil
}

// Analyze runs the pure stages over already-extracted pages. Split from Run
// so the deterministic part of the pipeline is testable without files.
func (p *Pipeline) Analyze(pages []model.Page) *Result {
	doc := buildDocument(pages)
	keywords := analyze.ExtractKeywords(doc.Text, p.cfg)
	bullets := analyze.Summarize(doc.Text, keywords, p.cfg)
	sectionSet := p.sections.Extract(doc.Text)
	ruleResults := p.checker.Check(doc, sectionSet)

	return &Result{
		Document: doc,
		Keywords: keywords,
		Summary:  model.Summary{Bullets: bullets},
		Sections: sectionSet,
		Rules:    ruleResults,
		Report:   buildRunReport(doc, sectionSet, ruleResults, p.cfg),
	}
}

// AnalyzeFile runs the pipeline, renders all artifacts for one document and
// prints the run report. Both the run command and batch workers call this.
func (p *Pipeline) AnalyzeFile(ctx context.Context, path, outDir string) (*Result, error) {
	result, err := p.Run(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := p.Render(result, outDir); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	p.renderer.RenderRunReport(result.Report)
	return result, nil
}

// Render writes the artifacts and records their sizes in the run report.
func (p *Pipeline) Render(result *Result, outDir string) error {
	artifacts, err := p.renderer.WriteArtifacts(result, outDir)
	if err != nil {
		return err
	}
	result.Report.Artifacts = artifacts
	return nil
}

// buildDocument concatenates pages in order, one line break between pages,
// and normalizes the result. The normalizer decides whether a page boundary
// is a paragraph break or a mid-sentence wrap.
func buildDocument(pages []model.Page) *model.Document {
	parts := make([]string, len(pages))
	for i, page := range pages {
		parts[i] = page.Text
	}
	raw := strings.Join(parts, "\n")
	text := normalize.Clean(raw)

	return &model.Document{
		Pages:       pages,
		RawText:     raw,
		Text:        text,
		RawLength:   len(raw),
		CleanLength: len(text),
	}
}

// buildRunReport assembles the diagnostic summary, including the explicit
// lists of missing sections and low-confidence rules.
func buildRunReport(doc *model.Document, sectionSet model.SectionSet, ruleResults []model.RuleResult, cfg *model.Config) *model.RunReport {
	direct, ocr, failed := doc.PageCounts()
	report := &model.RunReport{
		TotalPages:  len(doc.Pages),
		DirectPages: direct,
		OCRPages:    ocr,
		FailedPages: failed,
		RawLength:   doc.RawLength,
		CleanLength: doc.CleanLength,
	}

	for _, cat := range model.Categories() {
		sec := sectionSet[cat]
		stat := model.SectionStat{Category: cat, Found: sec.Found}
		if sec.Found {
			stat.Length = len(sec.Snippet)
		} else {
			report.MissingSections = append(report.MissingSections, cat)
		}
		report.Sections = append(report.Sections, stat)
	}

	for _, r := range ruleResults {
		low := r.Confidence < cfg.Rules.PassThreshold
		report.Rules = append(report.Rules, model.RuleStat{
			Rule:          r.Rule,
			Status:        r.Status,
			Confidence:    r.Confidence,
			Matches:       r.Matches,
			LowConfidence: low,
		})
		if low {
			report.LowConfidence = append(report.LowConfidence, r.Rule)
		}
	}

	return report
}
