// movecodec is a diagnostics tool for the packed move and castling-state codecs.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/lgbarn/movecodec-go/internal/config"
	"github.com/lgbarn/movecodec-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("movecodec version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	var w output.RecordWriter
	if *singleRecord && cfg.Output.JSONFormat {
		w = output.NewJSONWriterSingle(cfg.OutputFile, cfg)
	} else {
		w = output.NewWriter(cfg.OutputFile, cfg)
	}

	// An interrupt cancels a running census instead of killing the process mid-write.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	m := selectedMode()
	tally, err := run(ctx, m, w, cfg, os.Stdin, flag.Args())
	stop()
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Verbosity > 0 && (m == modeDecode || m == modeCastle) {
		reportStatistics(cfg.LogFile, tally)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// inputTokens returns the positional arguments, or the whitespace separated words of
// stdin when there are none.
func inputTokens(stdin io.Reader, args []string) []string {
	if len(args) > 0 {
		return args
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
		return nil
	}
	return strings.Fields(string(data))
}

// reportStatistics prints the input summary to the log.
func reportStatistics(log io.Writer, t tally) {
	fmt.Fprintf(log, "%d input(s): %d valid, %d rejected.\n", t.inputs, t.valid, t.inputs-t.valid)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: movecodec [options] [values...]\n\n")
	fmt.Fprintf(os.Stderr, "Decodes packed chess move integers and castling-state bytes.\n")
	fmt.Fprintf(os.Stderr, "Values are read from the arguments, or from stdin when none are given,\n")
	fmt.Fprintf(os.Stderr, "and may be decimal, hexadecimal (0x...) or binary (0b...).\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes:\n")
	fmt.Fprintf(os.Stderr, "  -decode         raw move integers (default)\n")
	fmt.Fprintf(os.Stderr, "  -castle         castling-state bytes\n")
	fmt.Fprintf(os.Stderr, "  -census         classify a range of raw move integers\n")
	fmt.Fprintf(os.Stderr, "  -census-castle  classify all castling-state bytes\n")
	fmt.Fprintf(os.Stderr, "  -fen <fen>      legal moves of a position as codec moves\n")
}
