// Package batch generates sites for many profiles and templates at once.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/folio/internal/export"
	"github.com/ziadkadry99/folio/internal/portfolio"
	"github.com/ziadkadry99/folio/internal/profile"
	"github.com/ziadkadry99/folio/internal/progress"
)

// Job renders one profile with one template into OutputDir.
type Job struct {
	ProfilePath string
	Template    portfolio.TemplateID
	OutputDir   string
}

func (j Job) String() string {
	return filepath.Base(filepath.Dir(j.OutputDir)) + "/" + string(j.Template)
}

// Result is a finished job and the files it wrote.
type Result struct {
	Job   Job
	Files []string
}

// Plan expands the profile globs and pairs every match with every template.
// Output goes to outDir/<profile name>/<template>, where the profile name
// is the file name without its extension.
func Plan(patterns []string, templates []portfolio.TemplateID, outDir string) ([]Job, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}
		for _, m := range matches {
			m = filepath.Clean(m)
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no profiles match %s", strings.Join(patterns, ", "))
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("no templates selected")
	}
	sort.Strings(paths)

	owners := make(map[string]string)
	var jobs []Job
	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if prev, ok := owners[name]; ok {
			return nil, fmt.Errorf("profiles %s and %s would both write to %s", prev, path, filepath.Join(outDir, name))
		}
		owners[name] = path

		for _, t := range templates {
			jobs = append(jobs, Job{
				ProfilePath: path,
				Template:    t,
				OutputDir:   filepath.Join(outDir, name, string(t)),
			})
		}
	}
	return jobs, nil
}

// Runner executes jobs with bounded concurrency.
type Runner struct {
	Generator   *portfolio.Generator
	Reporter    progress.Reporter
	Concurrency int
	Standalone  bool
}

// Run executes every job. Results are in job order. The first failure
// cancels the jobs that have not started and is returned.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	reporter := r.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	g, ctx := errgroup.WithContext(ctx)
	if r.Concurrency > 0 {
		g.SetLimit(r.Concurrency)
	}

	results := make([]Result, len(jobs))
	var (
		mu   sync.Mutex
		done int
	)

	reporter.Start(len(jobs))
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			files, err := r.runJob(job)
			if err != nil {
				return fmt.Errorf("%s: %w", job, err)
			}
			results[i] = Result{Job: job, Files: files}

			mu.Lock()
			done++
			reporter.Update(done, job.String())
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()
	reporter.Finish()
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) runJob(job Job) ([]string, error) {
	p, err := profile.LoadFile(job.ProfilePath)
	if err != nil {
		return nil, err
	}
	if err := profile.Validate(p); err != nil {
		return nil, err
	}

	now := time.Now
	if r.Generator.Now != nil {
		now = r.Generator.Now
	}
	at := now()

	a, err := portfolio.Generate(*p, string(job.Template), portfolio.Options{
		GeneratedAt: at,
		Escaping:    r.Generator.Escaping,
		Markdown:    r.Generator.Markdown,
	})
	if err != nil {
		return nil, err
	}
	return export.WriteFiles(job.OutputDir, a, export.NewManifest(string(job.Template), at), r.Standalone)
}
