package model

import "time"

// Config carries every tunable constant for a run. It is built once and
// passed explicitly into each stage; no stage holds mutable shared state, so
// parallel runs with different configurations cannot interfere.
type Config struct {
	Analyze  AnalyzeConfig  `yaml:"analyze" mapstructure:"analyze"`
	Sections SectionsConfig `yaml:"sections" mapstructure:"sections"`
	Rules    RulesConfig    `yaml:"rules" mapstructure:"rules"`
	OCR      OCRConfig      `yaml:"ocr" mapstructure:"ocr"`
	Cache    CacheConfig    `yaml:"cache" mapstructure:"cache"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
}

// AnalyzeConfig tunes keyword ranking and summarization
type AnalyzeConfig struct {
	MinTokenLen    int      `yaml:"min_token_len" mapstructure:"min_token_len"`
	TopKeywords    int      `yaml:"top_keywords" mapstructure:"top_keywords"`
	StopWords      []string `yaml:"stop_words" mapstructure:"stop_words"`
	LegalTerms     []string `yaml:"legal_terms" mapstructure:"legal_terms"`
	MinSentenceLen int      `yaml:"min_sentence_len" mapstructure:"min_sentence_len"`
	SummaryMin     int      `yaml:"summary_min" mapstructure:"summary_min"`
	SummaryMax     int      `yaml:"summary_max" mapstructure:"summary_max"`
	DedupOverlap   float64  `yaml:"dedup_overlap" mapstructure:"dedup_overlap"` // Jaccard token overlap treated as duplicate
}

// SectionsConfig tunes the pattern-table section extractor
type SectionsConfig struct {
	ContextChars  int `yaml:"context_chars" mapstructure:"context_chars"`     // Search distance for the nearest sentence boundary
	MaxMatches    int `yaml:"max_matches" mapstructure:"max_matches"`         // Non-overlapping matches kept per category
	MaxSnippetLen int `yaml:"max_snippet_len" mapstructure:"max_snippet_len"` // Per-match cap in characters
}

// RulesConfig tunes the compliance rule checker
type RulesConfig struct {
	Saturation         int `yaml:"saturation" mapstructure:"saturation"`                     // Match count at which confidence reaches 100
	PassThreshold      int `yaml:"pass_threshold" mapstructure:"pass_threshold"`             // Minimum confidence for status=pass
	FallbackScopeChars int `yaml:"fallback_scope_chars" mapstructure:"fallback_scope_chars"` // Whole-document scope cap when a section is missing
	EvidenceWindow     int `yaml:"evidence_window" mapstructure:"evidence_window"`           // Characters kept on each side of the first match
}

// OCRConfig tunes the per-page OCR fallback
type OCRConfig struct {
	Enabled     bool          `yaml:"enabled" mapstructure:"enabled"`
	DPI         int           `yaml:"dpi" mapstructure:"dpi"`
	PageTimeout time.Duration `yaml:"page_timeout" mapstructure:"page_timeout"`
	PerSecond   float64       `yaml:"per_second" mapstructure:"per_second"` // OCR invocation rate shared across workers
	Burst       int           `yaml:"burst" mapstructure:"burst"`
}

// CacheConfig tunes the extracted-page cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// OutputConfig tunes artifact writing
type OutputConfig struct {
	Dir     string `yaml:"dir" mapstructure:"dir"`
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the standard configuration. Every constant the
// pipeline uses lives here.
func DefaultConfig() *Config {
	return &Config{
		Analyze: AnalyzeConfig{
			MinTokenLen: 3,
			TopKeywords: 30,
			StopWords: []string{
				"the", "a", "an", "and", "or", "but", "in", "on", "at", "to",
				"for", "of", "with", "by", "from", "as", "is", "was", "are",
				"were", "be", "been", "being", "have", "has", "had", "do",
				"does", "did", "will", "would", "should", "could", "may",
				"might", "must", "can", "this", "that", "these", "those",
				"it", "its", "not", "any", "all", "such", "under",
			},
			LegalTerms: []string{
				"shall", "must", "entitled", "secretary of state",
				"regulations", "act", "section", "subsection", "provision",
				"entitlement", "payment", "penalty", "obligation",
				"responsibility",
			},
			MinSentenceLen: 20,
			SummaryMin:     5,
			SummaryMax:     10,
			DedupOverlap:   0.80,
		},
		Sections: SectionsConfig{
			ContextChars:  200,
			MaxMatches:    10,
			MaxSnippetLen: 500,
		},
		Rules: RulesConfig{
			Saturation:         8,
			PassThreshold:      50,
			FallbackScopeChars: 5000,
			EvidenceWindow:     100,
		},
		OCR: OCRConfig{
			Enabled:     true,
			DPI:         300,
			PageTimeout: 30 * time.Second,
			PerSecond:   2,
			Burst:       2,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   7 * 24 * time.Hour,
		},
		Output: OutputConfig{
			Dir: "./actlens-output",
		},
	}
}
