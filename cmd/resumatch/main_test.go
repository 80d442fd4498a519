package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/resumatch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// run executes the app with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	err := app.Run(append([]string{"resumatch", "--log-level", "error"}, args...))
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSetupLogger(t *testing.T) {
	newLoggerApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Value:   "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "WaRn"} {
			t.Run(level, func(t *testing.T) {
				require.NoError(t, newLoggerApp().Run([]string{"test", "--log-level", level}))
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newLoggerApp().Run([]string{"test", "-l", "verbose"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "resumatch.yaml", `
db: /data/resumes
pool-size: 4
top: 10
embedding:
  host: http://ollama:11434
  model: nomic-embed-text
`)

	capture := func(args ...string) *settings {
		t.Helper()
		var got *settings
		app := newApp()
		app.Commands = []*cli.Command{{
			Name:  "probe",
			Flags: []cli.Flag{dbFlag(), poolSizeFlag(), &cli.IntFlag{Name: "top"}},
			Action: func(c *cli.Context) error {
				var err error
				got, err = loadSettings(c)
				return err
			},
		}}
		require.NoError(t, app.Run(append([]string{"resumatch"}, args...)))
		return got
	}

	t.Run("defaults", func(t *testing.T) {
		s := capture("probe")
		assert.Empty(t, s.DB)
		assert.Equal(t, "http://localhost:11434/v1", s.Embedding.Host)
		assert.Equal(t, "all-minilm", s.Embedding.Model)
		assert.False(t, s.Embedding.Disabled)
	})

	t.Run("config file", func(t *testing.T) {
		s := capture("--config", config, "probe")
		assert.Equal(t, "/data/resumes", s.DB)
		assert.Equal(t, 4, s.PoolSize)
		assert.Equal(t, 10, s.Top)
		assert.Equal(t, "http://ollama:11434", s.Embedding.Host)
		assert.Equal(t, "nomic-embed-text", s.Embedding.Model)
	})

	t.Run("flags override config file", func(t *testing.T) {
		s := capture("--config", config, "--embedding-model", "all-minilm", "--no-embeddings",
			"probe", "--db", "/tmp/other", "--top", "3")
		assert.Equal(t, "/tmp/other", s.DB)
		assert.Equal(t, 3, s.Top)
		assert.Equal(t, 4, s.PoolSize)
		assert.Equal(t, "all-minilm", s.Embedding.Model)
		assert.True(t, s.Embedding.Disabled)
	})

	t.Run("missing config file", func(t *testing.T) {
		app := newApp()
		app.Commands = []*cli.Command{{
			Name: "probe",
			Action: func(c *cli.Context) error {
				_, err := loadSettings(c)
				return err
			},
		}}
		err := app.Run([]string{"resumatch", "--config", filepath.Join(dir, "missing.yaml"), "probe"})
		assert.Error(t, err)
	})
}

func TestLoadJob(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid job", func(t *testing.T) {
		path := writeFile(t, dir, "job.yaml", `
id: py-1
title: Backend Engineer
description: Senior Python developer
required_skills:
  - Python
  - SQL
experience: 3-5
department: engineering
`)
		job, err := loadJob(path)
		require.NoError(t, err)
		assert.Equal(t, core.JobRequirement{
			ID:             "py-1",
			Title:          "Backend Engineer",
			Description:    "Senior Python developer",
			RequiredSkills: []string{"Python", "SQL"},
			Experience:     "3-5",
			Department:     "engineering",
		}, job)
	})

	t.Run("invalid experience", func(t *testing.T) {
		path := writeFile(t, dir, "bad.yaml", "id: x\nexperience: lots\n")
		_, err := loadJob(path)
		assert.ErrorIs(t, err, core.ErrInvalidExperienceSpec)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadJob(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"1", " 42 "})
	require.NoError(t, err)
	assert.Equal(t, []core.ID{1, 42}, ids)

	_, err = parseIDs([]string{"abc"})
	assert.Error(t, err)
}

func TestCommands_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "db")

	alice := writeFile(t, dir, "alice.txt",
		"Senior Python developer. 4 years of experience with SQL and Docker in engineering teams.")
	bob := writeFile(t, dir, "bob.txt", "Registered nurse with patient care experience.")
	empty := writeFile(t, dir, "empty.txt", "   ")
	job := writeFile(t, dir, "job.yaml", `
id: py-1
title: Backend Engineer
description: Senior Python developer
required_skills: [Python, SQL]
experience: 3-5
department: engineering
`)

	t.Run("ingest", func(t *testing.T) {
		stdout, stderr, err := run(t, "--no-embeddings", "ingest", "--db", db, alice, bob, empty)
		require.NoError(t, err)
		assert.Contains(t, stdout, "alice.txt")
		assert.Contains(t, stdout, "Tech")
		assert.Contains(t, stdout, "Healthcare")
		assert.Contains(t, stderr, "skipped "+empty)
	})

	t.Run("screen from job file", func(t *testing.T) {
		stdout, stderr, err := run(t, "--no-embeddings", "screen", "--db", db, "--job", job)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[1], "alice.txt")
		assert.Contains(t, lines[1], "python, sql")
		assert.Contains(t, lines[2], "bob.txt")
		assert.Contains(t, stderr, "similarity: degraded")
	})

	t.Run("screen saved job with top", func(t *testing.T) {
		stdout, _, err := run(t, "--no-embeddings", "screen", "--db", db, "--job-id", "py-1", "--top", "1")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[1], "alice.txt")
	})

	t.Run("jobs", func(t *testing.T) {
		stdout, _, err := run(t, "jobs", "--db", db)
		require.NoError(t, err)
		assert.Contains(t, stdout, "py-1")
		assert.Contains(t, stdout, "Backend Engineer")
	})

	t.Run("results sorted by score", func(t *testing.T) {
		stdout, _, err := run(t, "results", "--db", db, "--job-id", "py-1")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		require.Len(t, lines, 4, "two screenings of alice and one of bob")
		assert.Contains(t, lines[1], "alice.txt")
		assert.Contains(t, lines[3], "bob.txt")
	})

	t.Run("results sorted by name", func(t *testing.T) {
		stdout, _, err := run(t, "results", "--db", db, "--job-id", "py-1", "--sort", "name", "--top", "2")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[1], "alice.txt")
		assert.Contains(t, lines[2], "alice.txt")
	})

	t.Run("results with invalid sort", func(t *testing.T) {
		_, _, err := run(t, "results", "--db", db, "--job-id", "py-1", "--sort", "date")
		assert.ErrorContains(t, err, "invalid sort")
	})

	t.Run("reprocess", func(t *testing.T) {
		_, stderr, err := run(t, "--no-embeddings", "reprocess", "--db", db, "--batch-size", "1", "--report-interval", "1")
		require.NoError(t, err)
		assert.Contains(t, stderr, "2/2")
		assert.Contains(t, stderr, "Reprocessing complete")
	})

	t.Run("reprocess rejects zero batch size", func(t *testing.T) {
		_, _, err := run(t, "reprocess", "--db", db, "--batch-size", "0")
		assert.ErrorContains(t, err, "batch-size")
	})
}

func TestCommands_Errors(t *testing.T) {
	dir := t.TempDir()
	job := writeFile(t, dir, "job.yaml", "id: j\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"ingest without files", []string{"ingest", "--db", dir}, "at least one resume file"},
		{"ingest without db", []string{"ingest", job}, "database path is required"},
		{"screen without job", []string{"screen", "--db", dir}, "exactly one of --job or --job-id"},
		{"screen with both jobs", []string{"screen", "--db", dir, "--job", job, "--job-id", "j"}, "exactly one of --job or --job-id"},
		{"screen with bad resume id", []string{"screen", "--db", dir, "--job", job, "--resume", "x"}, "invalid resume id"},
		{"categorize without file", []string{"categorize"}, "exactly one file"},
		{"categorize unsupported file", []string{"categorize", job}, "no text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCategorizeCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "carol.txt", "Registered nurse with ICU and patient care experience.")

	stdout, _, err := run(t, "categorize", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Category: Healthcare")
}
