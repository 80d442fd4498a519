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
	"time"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "db",
		Aliases: []string{"d"},
		Usage:   "Path to BadgerDB database directory (or db in the config file)",
	}
}

func poolSizeFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "pool-size",
		Usage: "Number of documents processed at once (0 uses the number of CPUs)",
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "resumatch",
		Usage: "Rank resumes against job requirements",
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
				Usage:   "Path to a YAML config file",
			},
			&cli.StringFlag{
				Name:  "embedding-host",
				Usage: "Embedding service host URL",
			},
			&cli.StringFlag{
				Name:  "embedding-model",
				Usage: "Embedding model name",
			},
			&cli.BoolFlag{
				Name:  "no-embeddings",
				Usage: "Use lexical similarity only and never contact the embedding service",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Extract, analyze and store resumes",
				ArgsUsage: "FILE...",
				Action:    ingestCommand,
				Flags:     []cli.Flag{dbFlag(), poolSizeFlag()},
			},
			{
				Name:   "screen",
				Usage:  "Score stored resumes against a job and store the results",
				Action: screenCommand,
				Flags: []cli.Flag{
					dbFlag(),
					poolSizeFlag(),
					&cli.StringFlag{
						Name:    "job",
						Aliases: []string{"j"},
						Usage:   "Path to a job requirement YAML file",
					},
					&cli.StringFlag{
						Name:  "job-id",
						Usage: "ID of a job saved by an earlier screen",
					},
					&cli.StringSliceFlag{
						Name:    "resume",
						Aliases: []string{"r"},
						Usage:   "Resume ID to screen (repeatable, default all)",
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "Show only the N best results (0 shows all)",
					},
				},
			},
			{
				Name:   "results",
				Usage:  "List stored screening results for a job",
				Action: resultsCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.StringFlag{
						Name:     "job-id",
						Usage:    "Job ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort by score or name",
						Value: "score",
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "Show only the first N results (0 shows all)",
					},
				},
			},
			{
				Name:   "jobs",
				Usage:  "List saved job requirements",
				Action: jobsCommand,
				Flags:  []cli.Flag{dbFlag()},
			},
			{
				Name:   "reprocess",
				Usage:  "Recompute normalized text, skills and category of every stored resume",
				Action: reprocessCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of resumes to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N resumes",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
			{
				Name:      "categorize",
				Usage:     "Show the category and skills of a document without storing it",
				ArgsUsage: "FILE",
				Action:    categorizeCommand,
			},
		},
	}
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
