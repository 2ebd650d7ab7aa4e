package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/viranchils96/titlecase/config"
	"github.com/viranchils96/titlecase/constants/zapkey"
	"github.com/viranchils96/titlecase/log"
	"github.com/viranchils96/titlecase/titlecase"
)

var logger = log.Logger.Named("main")

func main() {
	os.Exit(realMain())
}

// realMain runs the CLI and returns the process exit code, so deferred
// cleanup such as flushing the logger always runs.
func realMain() int {
	defer log.Logger.Sync()

	var (
		path, text string
		workers    int
		nfc        bool
		verbose    bool
	)
	flag.StringVar(&path, "p", "-", "input path, - for stdin, .gz is decompressed")
	flag.StringVar(&text, "t", "", "text to titlecase instead of reading input")
	flag.IntVar(&workers, "w", 0, "number of concurrent workers")
	flag.BoolVar(&nfc, "nfc", false, "apply Unicode NFC normalization first")
	flag.BoolVar(&verbose, "v", false, "verbose logs")
	flag.Parse()

	var opts []config.Option
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			opts = append(opts, config.WithPath(path))
		case "t":
			opts = append(opts, config.WithText(text))
		case "w":
			opts = append(opts, config.WithWorkers(workers))
		case "nfc":
			opts = append(opts, config.WithNFC(nfc))
		case "v":
			opts = append(opts, config.WithVerbose(verbose))
		}
	})

	cfg, err := config.NewConfig(opts...)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		logger.Error("Invalid configuration", zap.Error(err))
		return 1
	}
	log.SetVerbose(cfg.Verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		logger.Error("Titlecase failed", zap.Error(err), zap.String(zapkey.Path, cfg.Path))
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg *config.Config, w io.Writer) (err error) {
	out := bufio.NewWriter(w)
	defer func() {
		if flushErr := out.Flush(); err == nil {
			err = flushErr
		}
	}()

	if cfg.Text != "" {
		_, err = out.WriteString(titlecase.Titlecase(normalize(cfg, cfg.Text)) + "\n")
		return err
	}

	start := time.Now()
	docs, err := titlecase.LoadDocuments(ctx, cfg.Path)
	if err != nil {
		return err
	}
	logger.Debug("Loaded documents", zap.Int(zapkey.Count, len(docs)), zap.Duration(zapkey.Duration, time.Since(start)))

	if cfg.NFC {
		for i := range docs {
			docs[i].Text = normalize(cfg, docs[i].Text)
		}
	}

	start = time.Now()
	docs = titlecase.TitlecaseAll(ctx, docs, cfg.Workers)
	logger.Debug("Titlecased documents",
		zap.Int(zapkey.Count, len(docs)),
		zap.Int(zapkey.Workers, cfg.Workers),
		zap.Bool(zapkey.NFC, cfg.NFC),
		zap.Duration(zapkey.Duration, time.Since(start)))
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := make([]string, len(docs))
	for i, doc := range docs {
		lines[i] = doc.Text
	}
	if len(lines) > 0 {
		_, err = out.WriteString(strings.Join(lines, "\n") + "\n")
	}
	return err
}

func normalize(cfg *config.Config, s string) string {
	if !cfg.NFC {
		return s
	}
	return norm.NFC.String(s)
}
