// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/docqa"
	"github.com/poiesic/docqa/config"
	"github.com/poiesic/docqa/core"
	"github.com/poiesic/docqa/loader"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "docqa",
		Usage: "Ask questions about a document using local language models",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
				Value:   "docqa.yaml",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "ask",
				Usage:  "Answer one or more questions about a document",
				Action: askCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the document (PDF or plain text)",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:     "question",
						Aliases:  []string{"q"},
						Usage:    "Question to answer (repeatable)",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "show-context",
						Usage: "Print the retrieved context under each answer",
					},
					&cli.StringFlag{
						Name:  "cache",
						Usage: "Path to the embedding cache directory (overrides config)",
					},
				},
			},
			{
				Name:   "chunks",
				Usage:  "Show how a document would be split into chunks",
				Action: chunksCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the document (PDF or plain text)",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func askCommand(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if cachePath := c.String("cache"); cachePath != "" {
		cfg.Storage.CachePath = cachePath
	}

	engine, err := docqa.NewEngine(cfg)
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx := c.Context
	count, err := engine.ProcessFile(ctx, c.String("file"))
	if err != nil {
		return fmt.Errorf("processing document: %w", err)
	}
	fmt.Printf("Document processed into %d chunks.\n\n", count)

	for _, question := range c.StringSlice("question") {
		ans, err := engine.Ask(ctx, question)
		if err != nil {
			return fmt.Errorf("answering %q: %w", question, err)
		}
		printAnswer(question, ans, c.Bool("show-context"))
	}

	return nil
}

func printAnswer(question string, ans *core.Answer, showContext bool) {
	fmt.Printf("Q: %s\n", question)
	fmt.Printf("A: %s\n", ans.Text)
	fmt.Printf("Confidence: %s (%.2f)\n", ans.Label, ans.Score)
	if showContext {
		fmt.Printf("Context:\n%s\n", ans.Context)
	}
	fmt.Println()
}

func chunksCommand(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	text, err := loader.NewLoader().Load(c.String("file"))
	if err != nil {
		return err
	}

	docChunker, err := docqa.NewChunker(cfg)
	if err != nil {
		return err
	}

	chunks, err := docChunker.Chunk(text)
	if err != nil {
		return err
	}

	fmt.Printf("Strategy: %s\n", cfg.Chunking.Strategy)
	fmt.Printf("Chunks: %d\n\n", len(chunks))
	for _, chunk := range chunks {
		preview := chunk.Text
		if len(preview) > 80 {
			preview = preview[:80] + "..."
		}
		preview = strings.ReplaceAll(preview, "\n", " ")
		fmt.Printf("%4d  %5d chars  %s\n", chunk.Index, len(chunk.Text), preview)
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
