package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"targetcheck/internal/common"
	"targetcheck/internal/entity"
	"targetcheck/internal/export"
	"targetcheck/internal/reconcile"
	"targetcheck/internal/validation"
	"targetcheck/internal/verifier/openai"
)

// validate runs one document through the pipeline from the command line:
//
//	validate -doc page.txt -expected record.json [-report out.xlsx]
//
// -doc may repeat for multi-page documents.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	var docs docList
	flag.Var(&docs, "doc", "path to a page-text file (repeatable)")
	expectedPath := flag.String("expected", "", "path to the expected-record JSON file")
	reportPath := flag.String("report", "", "optional path for an XLSX report")
	flag.Parse()

	if len(docs) == 0 || *expectedPath == "" {
		logger.Error("usage: validate -doc <page.txt> [-doc <page2.txt>] -expected <record.json> [-report <out.xlsx>]")
		os.Exit(2)
	}

	pages := make([]string, 0, len(docs))
	for _, p := range docs {
		b, err := os.ReadFile(p)
		if err != nil {
			logger.Error("read page text", "path", p, "error", err)
			os.Exit(2)
		}
		pages = append(pages, string(b))
	}

	var expected entity.ExpectedRecord
	b, err := os.ReadFile(*expectedPath)
	if err != nil {
		logger.Error("read expected record", "path", *expectedPath, "error", err)
		os.Exit(2)
	}
	if err := json.Unmarshal(b, &expected); err != nil {
		logger.Error("decode expected record", "path", *expectedPath, "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	client := openai.NewClient(openai.Config{
		APIKey:      cfg.Verifier.APIKey,
		BaseURL:     cfg.Verifier.BaseURL,
		Model:       cfg.Verifier.Model,
		Temperature: cfg.Verifier.Temperature,
		Timeout:     cfg.Verifier.Timeout,
	}, logger)
	engine := reconcile.NewEngine(logger, cfg.Reconcile.NumericTolerance)
	svc := validation.NewService(logger, client, engine)

	ctx := common.WithRequestID(context.Background(), uuid.New().String())
	ctx = common.WithDocument(ctx, filepath.Base(docs[0]))
	ctx, cancel := common.WithTimeout(ctx, cfg.Verifier.Timeout)
	defer cancel()
	result, err := svc.ValidateDocument(ctx, validation.Request{Pages: pages, Expected: expected})
	if err != nil {
		logger.Error("validation failed", "error", err)
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(result, "", "  ")
	os.Stdout.Write(append(out, '\n'))

	if *reportPath != "" {
		xls, err := export.NewService(logger).ReportXLSX([]export.Row{
			{Document: filepath.Base(docs[0]), Result: result},
		})
		if err != nil {
			logger.Error("build report", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*reportPath, xls, 0o644); err != nil {
			logger.Error("write report", "path", *reportPath, "error", err)
			os.Exit(1)
		}
		logger.Info("report written", "path", *reportPath)
	}

	if !result.Valid {
		os.Exit(3)
	}
}

type docList []string

func (d *docList) String() string { return "" }

func (d *docList) Set(v string) error {
	*d = append(*d, v)
	return nil
}
