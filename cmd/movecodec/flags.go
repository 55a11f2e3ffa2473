// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/movecodec-go/internal/config"
)

var (
	// Modes
	decodeMode   = flag.Bool("decode", false, "Decode raw move integers (default mode)")
	castleMode   = flag.Bool("castle", false, "Validate castling-state bytes instead of moves")
	censusMode   = flag.Bool("census", false, "Classify every raw move integer in [-start, -end)")
	censusCastle = flag.Bool("census-castle", false, "Classify all 256 castling-state bytes")
	fenInput     = flag.String("fen", "", "List the legal moves of a FEN position as codec moves")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	showFields   = flag.Bool("fields", false, "Include the raw packed sub-fields of each move")
	validOnly    = flag.Bool("valid", false, "Skip rejected inputs instead of listing their errors")
	lineLength   = flag.Int("w", 80, "Maximum line length of castle byte listings")
	singleRecord = flag.Bool("stream", false, "Write each JSON record as it is produced")

	// Census options
	workers   = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	chunkSize = flag.Uint64("chunk", 1<<16, "Raw integers per census work item")
	rangeLo   = flag.Uint64("start", 0, "First raw integer of the census")
	rangeHi   = flag.Uint64("end", 1<<27, "One past the last raw integer of the census")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("verbose", 1, "Diagnostics level: 0=nothing, 1=summary, 2=progress")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyCensusFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyOutputFlags configures output settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowFields = *showFields
	cfg.Output.ShowRejected = !*validOnly
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
}

// applyCensusFlags configures the census range and worker pool.
func applyCensusFlags(cfg *config.Config) {
	if *workers > 0 {
		cfg.Census.Workers = *workers
	}
	cfg.Census.ChunkSize = *chunkSize
	cfg.Census.Start = *rangeLo
	cfg.Census.End = *rangeHi
}

// selectedMode returns the mode chosen on the command line. An explicit -decode wins,
// then -fen, -census, -census-castle and -castle in that order.
func selectedMode() mode {
	switch {
	case *decodeMode:
		return modeDecode
	case *fenInput != "":
		return modeFEN
	case *censusMode:
		return modeCensus
	case *censusCastle:
		return modeCensusCastle
	case *castleMode:
		return modeCastle
	default:
		return modeDecode
	}
}
