package model

// Summary is the extractive summary artifact
type Summary struct {
	Bullets []string `json:"summary_bullets"`
}

// Artifact records one written output file
type Artifact struct {
	Path  string `json:"path"`
	Bytes int64  `json:"bytes"`
}

// SectionStat summarizes one section's fill status for the run report
type SectionStat struct {
	Category Category `json:"category"`
	Found    bool     `json:"found"`
	Length   int      `json:"length"` // Snippet length in characters (0 for sentinel)
}

// RuleStat summarizes one rule check for the run report
type RuleStat struct {
	Rule          string     `json:"rule"`
	Status        RuleStatus `json:"status"`
	Confidence    int        `json:"confidence"`
	Matches       int        `json:"matches"`
	LowConfidence bool       `json:"low_confidence"`
}

// RunReport is the per-run diagnostic summary. It always lists which rules
// and sections were weak or missing, surfacing uncertainty rather than
// hiding it.
type RunReport struct {
	Source          string        `json:"source"`
	TotalPages      int           `json:"total_pages"`
	DirectPages     int           `json:"direct_pages"`
	OCRPages        int           `json:"ocr_pages"`
	FailedPages     int           `json:"failed_pages"`
	RawLength       int           `json:"raw_length"`
	CleanLength     int           `json:"clean_length"`
	Artifacts       []Artifact    `json:"artifacts,omitempty"`
	Sections        []SectionStat `json:"sections"`
	Rules           []RuleStat    `json:"rules"`
	MissingSections []Category    `json:"missing_sections,omitempty"`
	LowConfidence   []string      `json:"low_confidence_rules,omitempty"`
}
