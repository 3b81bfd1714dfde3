package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"invoice-extractor/constants"
	"invoice-extractor/internal/common"
	"invoice-extractor/internal/export"
	"invoice-extractor/internal/extract"
	"invoice-extractor/internal/llm"
	"invoice-extractor/internal/llm/openai"
)

func main() {
	app := &cli.App{
		Name:  "invoicectl",
		Usage: "extract structured data from an invoice image and export it",
		Commands: []*cli.Command{
			{
				Name:   "extract",
				Usage:  "run one extraction against a local image file",
				Action: extractAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "image", Usage: "path to a JPEG/PNG invoice image", Required: true},
					&cli.StringFlag{Name: "mode", Usage: "auto or question", Value: "auto"},
					&cli.StringFlag{Name: "question", Usage: "question text (question mode)"},
					&cli.StringSliceFlag{Name: "format", Usage: "export format: txt, json, csv, xlsx (repeatable)", Value: cli.NewStringSlice("txt")},
					&cli.StringFlag{Name: "out", Usage: "output directory", Value: "."},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func extractAction(c *cli.Context) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}
	cfg := common.LoadConfig()

	imagePath := c.String("image")
	image, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	mode, err := llm.ParseMode(c.String("mode"))
	if err != nil {
		return err
	}

	formats := make([]export.Format, 0, len(c.StringSlice("format")))
	for _, raw := range c.StringSlice("format") {
		f, err := export.ParseFormat(raw)
		if err != nil {
			return err
		}
		formats = append(formats, f)
	}

	client := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	svc := extract.NewService(client, logger)

	res, err := svc.Process(c.Context, extract.Request{
		Image:    image,
		MIMEType: constants.MIMEForExt(filepath.Ext(imagePath)),
		Mode:     mode,
		Question: c.String("question"),
	})
	if err != nil {
		return err
	}

	renderer := export.NewRenderer(cfg.Export.FilenamePrefix, logger)
	artifacts, exportErrs := renderer.Render(res, formats, time.Now())
	for _, e := range exportErrs {
		fmt.Fprintln(os.Stderr, "export error:", e)
	}

	outDir := c.String("out")
	for _, a := range artifacts {
		path := filepath.Join(outDir, a.Filename)
		if err := os.WriteFile(path, a.Data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Println(path)
	}
	return nil
}
