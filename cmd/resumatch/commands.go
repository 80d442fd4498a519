package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/extract"
	"github.com/poiesic/resumatch/ingestion"
	"github.com/poiesic/resumatch/reprocess"
	"github.com/poiesic/resumatch/screening"
	"github.com/urfave/cli/v2"
)

func ingestCommand(c *cli.Context) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return errors.New("at least one resume file is required")
	}

	db, s, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	var opts []ingestion.Option
	if s.PoolSize > 0 {
		opts = append(opts, ingestion.WithPoolSize(s.PoolSize))
	}
	pipeline, err := db.NewIngestionPipeline(opts...)
	if err != nil {
		return fmt.Errorf("failed to create ingestion pipeline: %w", err)
	}
	defer pipeline.Release()

	report, err := pipeline.IngestFiles(c.Context, paths...)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFILE\tCATEGORY\tSKILLS")
	for _, r := range report.Records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.ID, r.Filename, r.Category, strings.Join(r.Skills, ", "))
	}
	w.Flush()

	for _, f := range report.Failures {
		fmt.Fprintf(c.App.ErrWriter, "skipped %s: %v\n", f.Filename, f.Err)
	}

	if len(report.Records) == 0 {
		return errors.New("no resumes ingested")
	}
	return nil
}

func screenCommand(c *cli.Context) error {
	jobPath, jobID := c.String("job"), c.String("job-id")
	if (jobPath == "") == (jobID == "") {
		return errors.New("exactly one of --job or --job-id is required")
	}

	ids, err := parseIDs(c.StringSlice("resume"))
	if err != nil {
		return err
	}

	db, s, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	var job core.JobRequirement
	if jobPath != "" {
		if job, err = loadJob(jobPath); err != nil {
			return err
		}
		if err := db.JobRepository().SaveJob(c.Context, &job); err != nil {
			return fmt.Errorf("failed to save job: %w", err)
		}
	} else {
		saved, err := db.JobRepository().GetJob(c.Context, jobID)
		if err != nil {
			return fmt.Errorf("job %s: %w", jobID, err)
		}
		job = *saved
	}

	var opts []screening.Option
	if s.PoolSize > 0 {
		opts = append(opts, screening.WithPoolSize(s.PoolSize))
	}
	screener, err := db.NewScreener(opts...)
	if err != nil {
		return fmt.Errorf("failed to create screener: %w", err)
	}
	defer screener.Release()

	report, err := screener.ScreenStored(c.Context, job, ids...)
	if err != nil {
		return fmt.Errorf("screening failed: %w", err)
	}

	filenames := make(map[core.ID]string, len(report.Stored))
	for _, r := range report.Stored {
		filenames[r.ResumeID] = r.Filename
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tSCORE\tID\tFILE\tCATEGORY\tDEPT\tMATCHED SKILLS")
	for i, r := range report.Top(s.Top) {
		fmt.Fprintf(w, "%d\t%.1f\t%d\t%s\t%s\t%s\t%s\n",
			i+1, r.Score, r.ResumeID, filenames[r.ResumeID], r.Category,
			yesNo(r.DepartmentMatch), strings.Join(r.MatchedSkills, ", "))
	}
	w.Flush()

	for _, f := range report.Failures {
		fmt.Fprintf(c.App.ErrWriter, "resume %d not scored: %v\n", f.ResumeID, f.Err)
	}
	fmt.Fprintf(c.App.ErrWriter, "similarity: %s\n", db.SimilarityState())

	return nil
}

func resultsCommand(c *cli.Context) error {
	sortBy := c.String("sort")
	if sortBy != "score" && sortBy != "name" {
		return fmt.Errorf("invalid sort %q: must be score or name", sortBy)
	}

	db, s, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	results, err := db.ScreeningRepository().GetScreeningResults(c.Context, c.String("job-id"))
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}
	if sortBy == "name" {
		slices.SortStableFunc(results, func(a, b *core.ScreeningResult) int {
			return cmp.Compare(strings.ToLower(a.Filename), strings.ToLower(b.Filename))
		})
	}
	if s.Top > 0 && len(results) > s.Top {
		results = results[:s.Top]
	}

	printResults(c.App.Writer, results)
	return nil
}

func printResults(out io.Writer, results []*core.ScreeningResult) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tID\tFILE\tCATEGORY\tEXPERIENCE\tDEPT\tMATCHED SKILLS\tSCREENED")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Score, r.ResumeID, r.Filename, r.Category, r.ExperienceLevel,
			yesNo(r.DepartmentMatch), strings.Join(r.MatchedSkills, ", "),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

func jobsCommand(c *cli.Context) error {
	db, _, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	jobs, err := db.JobRepository().ListJobs(c.Context)
	if err != nil {
		return fmt.Errorf("failed to list jobs: %w", err)
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tEXPERIENCE\tDEPARTMENT\tSKILLS")
	for _, j := range jobs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			j.ID, j.Title, j.Experience, j.Department, strings.Join(j.RequiredSkills, ", "))
	}
	w.Flush()
	return nil
}

func reprocessCommand(c *cli.Context) error {
	config := &reprocess.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	db, s, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	reprocessor, err := db.NewReprocessor(config, c.App.ErrWriter)
	if err != nil {
		return fmt.Errorf("failed to create reprocessor: %w", err)
	}

	fmt.Fprintf(c.App.ErrWriter, "Database: %s\n\n", s.DB)

	if _, err := reprocessor.Run(c.Context); err != nil {
		return fmt.Errorf("reprocessing failed: %w", err)
	}
	return nil
}

func categorizeCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("exactly one file is required")
	}
	path := c.Args().First()

	text := extract.NewExtractor().ExtractFile(path)
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%s: %w", path, ingestion.ErrNoTextExtracted)
	}

	analyzer, err := ingestion.NewDefaultAnalyzer()
	if err != nil {
		return err
	}
	record := core.ResumeRecord{Filename: path, RawText: text}
	analyzer.Analyze(&record)

	fmt.Fprintf(c.App.Writer, "File:     %s\n", path)
	fmt.Fprintf(c.App.Writer, "Category: %s\n", record.Category)
	fmt.Fprintf(c.App.Writer, "Skills:   %s\n", strings.Join(record.Skills, ", "))
	return nil
}

func parseIDs(values []string) ([]core.ID, error) {
	ids := make([]core.ID, 0, len(values))
	for _, v := range values {
		id, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid resume id %q: %w", v, err)
		}
		ids = append(ids, core.ID(id))
	}
	return ids, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
