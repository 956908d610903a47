package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lawtools/actlens/internal/pipeline"
)

var (
	outDir     string
	runTimeout time.Duration
	noCache    bool
	noOCR      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Analyze a single act document",
	Long: `Run analyzes one legal act document (PDF or saved HTML):
- Extract the text layer page by page, with OCR fallback for scanned pages
- Normalize the text (de-hyphenation, line re-joining, whitespace)
- Rank keywords and build an extractive summary
- Locate the seven standard sections with pattern tables
- Evaluate the six compliance rules with verbatim evidence

Artifacts are written to the output directory; the run report is printed
to stdout.

Example:
  actlens run act.pdf
  actlens run act.pdf --out-dir ./reports --no-ocr
  actlens run saved-page.html --no-cache`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&outDir, "out-dir", "", "output directory for artifacts (default from config)")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 10*time.Minute, "overall analysis timeout (OCR of large scans is slow)")
	runCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the extracted-page cache")
	runCmd.Flags().BoolVar(&noOCR, "no-ocr", false, "disable the OCR fallback for scanned pages")
}

func runRun(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	// Build configuration from file, environment and flags
	cfg := loadConfig()
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	cfg.OCR.Enabled = cfg.OCR.Enabled && !noOCR
	cfg.Output.Verbose = verbose
	if outDir != "" {
		cfg.Output.Dir = outDir
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", file)
		fmt.Fprintf(os.Stderr, "Output:    %s\n", cfg.Output.Dir)
		fmt.Fprintf(os.Stderr, "Cache:     %v\n", cfg.Cache.Enabled)
		fmt.Fprintf(os.Stderr, "OCR:       %v\n", cfg.OCR.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.New(cfg)
	if _, err := p.AnalyzeFile(ctx, file, cfg.Output.Dir); err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}
	return nil
}
