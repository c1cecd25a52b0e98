package protein_profile

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"prot_buddy_go/config"
	"prot_buddy_go/logger"
	"prot_buddy_go/protparam"
)

// Run is the entry point of the protparam tool.
func Run(args []string) {
	if code := run(args, os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "Error loading configuration:", err)
		return 1
	}

	fs := flag.NewFlagSet("protparam", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var seqs MultiSeqFlag
	fs.Var(&seqs, "seq", "Protein sequence as [name=]SEQUENCE (repeatable)")
	inFile := fs.String("in_file", "", "Input protein FASTA file (plain or gzip)")
	idMotif := fs.String("id_motif", "", "Only analyze FASTA records whose headers contain this substring")
	format := fs.String("format", settings.Format, "Output format: text, csv or json")
	outFile := fs.String("out_file", "", "Write the report here instead of stdout")
	workers := fs.Int("workers", settings.Workers, "Worker goroutines (<= 0 uses one per CPU)")
	summary := fs.Bool("summary", false, "Append batch summary statistics")

	if err := fs.Parse(args); err != nil { // Parse inputs
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if len(fs.Args()) > 0 {
		fmt.Fprintf(stderr, "Unrecognized arguments: %v\n", fs.Args())
		fmt.Fprintln(stderr, "Use -h to view valid flags.")
		return 1
	}

	switch *format {
	case "text", "csv", "json":
	default:
		fmt.Fprintf(stderr, "Unsupported format: %s\n", *format)
		return 1
	}

	records := []Record(seqs)
	if *inFile != "" {
		fromFile, skipped, err := ReadFastaRecords(*inFile, *idMotif)
		if err != nil {
			fmt.Fprintln(stderr, "Failed to read FASTA:", err)
			return 1
		}
		logger.Info("Loaded FASTA records",
			zap.String("file", *inFile),
			zap.Int("records", len(fromFile)),
			zap.Int("skipped_by_motif", skipped))
		records = append(records, fromFile...)
	}
	if len(records) == 0 {
		fmt.Fprintln(stderr, "Error: provide at least one -seq or an -in_file")
		fs.Usage()
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	analyzer := protparam.NewAnalyzer(protparam.StandardTable, protparam.StandardDipeptides)
	outcomes := AnalyzeRecords(ctx, analyzer, records, *workers)
	report := NewReport(outcomes, *summary)

	failed := Failed(outcomes)
	for _, o := range outcomes {
		if o.Err != nil {
			logger.Warn("Skipping invalid sequence", zap.String("id", o.Record.ID), zap.Error(o.Err))
		}
	}
	logger.Info("Analysis finished",
		zap.String("run_id", report.RunID),
		zap.Int("records", len(outcomes)),
		zap.Int("failed", failed))

	out := stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fmt.Fprintln(stderr, "Error creating file:", err)
			return 1
		}
		defer f.Close()
		out = f
	}
	if err := Write(out, *format, report); err != nil {
		fmt.Fprintln(stderr, "Failed to write report:", err)
		return 1
	}
	if *outFile != "" {
		fmt.Fprintf(stdout, "Wrote %s report to %s\n", *format, *outFile)
	}

	if failed == len(outcomes) {
		return 1
	}
	return 0
}
