package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/folio/internal/portfolio"
	"github.com/ziadkadry99/folio/internal/profile"
)

func writeProfiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func testGenerator() *portfolio.Generator {
	gen := portfolio.NewGenerator(portfolio.EscapeStrict, false)
	gen.Now = func() time.Time { return time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC) }
	return gen
}

func TestPlan(t *testing.T) {
	dir := t.TempDir()
	writeProfiles(t, dir, map[string]string{
		"team/ada.yml":        "name: Ada\n",
		"team/grace.json":     `{"name":"Grace"}`,
		"team/nested/ken.yml": "name: Ken\n",
		"notes.txt":           "ignored",
	})
	out := filepath.Join(dir, "out")

	jobs, err := Plan([]string{
		filepath.Join(dir, "team", "**", "*.yml"),
		filepath.Join(dir, "team", "*.json"),
		filepath.Join(dir, "team", "ada.yml"),
	}, []portfolio.TemplateID{"minimal", "developer"}, out)
	require.NoError(t, err)

	require.Len(t, jobs, 6)
	assert.Equal(t, filepath.Join(dir, "team", "ada.yml"), jobs[0].ProfilePath)
	assert.Equal(t, filepath.Join(out, "ada", "minimal"), jobs[0].OutputDir)
	assert.Equal(t, filepath.Join(out, "ada", "developer"), jobs[1].OutputDir)
	assert.Equal(t, filepath.Join(out, "grace", "minimal"), jobs[2].OutputDir)
	assert.Equal(t, filepath.Join(out, "ken", "developer"), jobs[5].OutputDir)
	assert.Equal(t, "ken/developer", jobs[5].String())
}

func TestPlanNoMatches(t *testing.T) {
	_, err := Plan([]string{filepath.Join(t.TempDir(), "*.yml")}, []portfolio.TemplateID{"minimal"}, "out")
	assert.Error(t, err)
}

func TestPlanNameCollision(t *testing.T) {
	dir := t.TempDir()
	writeProfiles(t, dir, map[string]string{
		"a/me.yml": "name: A\n",
		"b/me.yml": "name: B\n",
	})
	_, err := Plan([]string{filepath.Join(dir, "**", "me.yml")}, []portfolio.TemplateID{"minimal"}, "out")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "would both write to")
}

type recordingReporter struct {
	mu       sync.Mutex
	total    int
	updates  []int
	finished bool
}

func (r *recordingReporter) Start(total int) { r.total = total }
func (r *recordingReporter) Update(current int, _ string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, current)
}
func (r *recordingReporter) Finish() { r.finished = true }

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeProfiles(t, dir, map[string]string{
		"ada.yml":   "name: Ada Lovelace\nskills: [Math]\n",
		"grace.yml": "name: Grace Hopper\n",
	})
	out := filepath.Join(dir, "site")

	jobs, err := Plan([]string{filepath.Join(dir, "*.yml")}, portfolio.TemplateIDs(), out)
	require.NoError(t, err)
	require.Len(t, jobs, 12)

	rep := &recordingReporter{}
	runner := &Runner{Generator: testGenerator(), Reporter: rep, Concurrency: 3, Standalone: true}
	results, err := runner.Run(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, 12)

	for i, res := range results {
		assert.Equal(t, jobs[i], res.Job)
		assert.Len(t, res.Files, 5)
	}

	css, err := os.ReadFile(filepath.Join(out, "grace", "academic", "portfolio.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), "'Merriweather', serif")

	html, err := os.ReadFile(filepath.Join(out, "ada", "developer", "portfolio.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "&copy; 2024 Ada Lovelace.")

	assert.Equal(t, 12, rep.total)
	assert.Len(t, rep.updates, 12)
	assert.True(t, rep.finished)
}

func TestRunStopsOnInvalidProfile(t *testing.T) {
	dir := t.TempDir()
	writeProfiles(t, dir, map[string]string{
		"bad.yml": "email: nope\n",
	})
	jobs, err := Plan([]string{filepath.Join(dir, "*.yml")}, []portfolio.TemplateID{"minimal"}, filepath.Join(dir, "out"))
	require.NoError(t, err)

	runner := &Runner{Generator: testGenerator(), Concurrency: 1}
	_, err = runner.Run(context.Background(), jobs)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "bad/minimal: "))

	var ve *profile.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestRunCancelled(t *testing.T) {
	dir := t.TempDir()
	writeProfiles(t, dir, map[string]string{"ada.yml": "name: Ada\n"})
	jobs, err := Plan([]string{filepath.Join(dir, "*.yml")}, []portfolio.TemplateID{"minimal"}, filepath.Join(dir, "out"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := &Runner{Generator: testGenerator()}
	_, err = runner.Run(ctx, jobs)
	assert.ErrorIs(t, err, context.Canceled)
}
