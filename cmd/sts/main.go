// Command sts assesses a bit sequence with the statistical test battery,
// or serves the battery over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/briandowns/spinner"
	"github.com/rs/zerolog"

	algosts "github.com/cwbudde/algo-sts"
	"github.com/cwbudde/algo-sts/bitstream"
	"github.com/cwbudde/algo-sts/internal/server"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		inputPath = flag.String("input", "", "input file; reads stdin when empty")
		ascii     = flag.Bool("ascii", false, "interpret input as ASCII '0'/'1' text")
		maxBits   = flag.Int("bits", 0, "truncate the sequence to this many bits (0 = all)")
		alpha     = flag.Float64("alpha", algosts.DefaultAlpha, "significance level")
		workers   = flag.Int("workers", 0, "concurrent detectors (0 = one per CPU)")
		serveAddr = flag.String("serve", "", "serve HTTP on this address instead of assessing once")
		quiet     = flag.Bool("q", false, "suppress the progress spinner")
		verbose   = flag.Bool("v", false, "debug logging")
	)

	flag.Parse()

	logger := newLogger(*verbose)

	var opts []algosts.Option
	opts = append(opts, algosts.WithAlpha(*alpha))

	if *workers > 0 {
		opts = append(opts, algosts.WithWorkers(*workers))
	}

	battery := algosts.New(opts...)

	if *serveAddr != "" {
		return serveMode(*serveAddr, battery, logger)
	}

	bits, err := loadBits(*inputPath, *ascii, *maxBits)
	if err != nil {
		logger.Error().Err(err).Msg("loading input")
		return 2
	}

	logger.Debug().Int("bits", len(bits)).Msg("sequence loaded")

	var spin *spinner.Spinner
	if !*quiet {
		spin = spinner.New(spinner.CharSets[11], 100*time.Millisecond,
			spinner.WithWriter(os.Stderr), spinner.WithSuffix(" assessing"))
		spin.Start()
	}

	results := battery.Run(context.Background(), bits)

	if spin != nil {
		spin.Stop()
	}

	return report(results, len(bits), *alpha)
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func loadBits(path string, ascii bool, maxBits int) ([]uint8, error) {
	if path != "" {
		return bitstream.ReadFile(path, ascii, maxBits)
	}

	if ascii {
		bits, err := bitstream.FromASCII(os.Stdin)
		if err != nil {
			return nil, err
		}

		if maxBits > 0 && len(bits) > maxBits {
			bits = bits[:maxBits]
		}

		return bits, nil
	}

	return bitstream.FromReader(os.Stdin, maxBits)
}

func report(results []algosts.Result, bits int, alpha float64) int {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "DETECTOR\tP-VALUE\tVERDICT\n")

	failed := 0

	for _, res := range results {
		switch {
		case res.Err != nil:
			fmt.Fprintf(w, "%s\t-\terror: %v\n", res.Detector, res.Err)

			failed++
		case res.Passed:
			fmt.Fprintf(w, "%s\t%.6f\tpass\n", res.Detector, res.PValue)
		default:
			fmt.Fprintf(w, "%s\t%.6f\tFAIL\n", res.Detector, res.PValue)

			failed++
		}
	}

	w.Flush()

	fmt.Printf("\n%d bits, alpha %g: %d/%d detectors passed\n",
		bits, alpha, len(results)-failed, len(results))

	if failed > 0 {
		return 1
	}

	return 0
}

func serveMode(addr string, battery *algosts.Battery, logger zerolog.Logger) int {
	srv := server.New(server.Options{
		Addr:    addr,
		Battery: battery,
		Logger:  logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error().Err(err).Msg("server failed")
			return 1
		}
	case <-ctx.Done():
		logger.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown failed")
			return 1
		}
	}

	return 0
}
