package export

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/folio/internal/portfolio"
	"github.com/ziadkadry99/folio/internal/profile"
)

var at = time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)

func sampleArtifact(t *testing.T) portfolio.Artifact {
	t.Helper()
	a, err := portfolio.Generate(profile.Sample(), "developer", portfolio.Options{GeneratedAt: at})
	require.NoError(t, err)
	return a
}

func TestFileNamesAndTypes(t *testing.T) {
	assert.Equal(t, "portfolio.html", FileName(KindMarkup))
	assert.Equal(t, "portfolio.css", FileName(KindStylesheet))
	assert.Equal(t, "portfolio.js", FileName(KindScript))

	assert.True(t, strings.HasPrefix(ContentType(KindMarkup), "text/html"))
	assert.True(t, strings.HasPrefix(ContentType(KindStylesheet), "text/css"))
	assert.True(t, strings.HasPrefix(ContentType(KindScript), "text/javascript"))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("css")
	require.NoError(t, err)
	assert.Equal(t, KindStylesheet, k)

	_, err = ParseKind("pdf")
	assert.Error(t, err)
}

func TestStandaloneInjectsAssets(t *testing.T) {
	a := sampleArtifact(t)
	doc := Standalone(a)

	styleAt := strings.Index(doc, "<style>")
	headEnd := strings.Index(doc, "</head>")
	scriptAt := strings.Index(doc, "<script>")
	bodyEnd := strings.Index(doc, "</body>")

	require.NotEqual(t, -1, styleAt)
	require.NotEqual(t, -1, scriptAt)
	assert.Less(t, styleAt, headEnd)
	assert.Less(t, headEnd, scriptAt)
	assert.Less(t, scriptAt, bodyEnd)
	assert.Contains(t, doc, a.Stylesheet)
	assert.Contains(t, doc, a.Script)
	assert.Equal(t, 1, strings.Count(doc, "<!DOCTYPE html>"))
}

func TestStandaloneWrapsFragments(t *testing.T) {
	doc := Standalone(portfolio.Artifact{Markup: "<p>hi</p>", Stylesheet: "p{}", Script: "x()"})
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "<style>\np{}\n</style>")
	assert.Contains(t, doc, "<p>hi</p>")
	assert.Contains(t, doc, "<script>\nx()\n</script>")
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	a := sampleArtifact(t)

	paths, err := WriteFiles(dir, a, NewManifest("developer", at), true)
	require.NoError(t, err)
	assert.Len(t, paths, 5)

	for _, k := range Kinds {
		data, err := os.ReadFile(filepath.Join(dir, FileName(k)))
		require.NoError(t, err)
		assert.Equal(t, Content(a, k), string(data))
	}
	index, err := os.ReadFile(filepath.Join(dir, StandaloneFile))
	require.NoError(t, err)
	assert.Equal(t, Standalone(a), string(index))

	raw, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	require.NoError(t, err)
	var m Manifest
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "developer", m.Template)
	assert.True(t, m.GeneratedAt.Equal(at))
	_, err = uuid.Parse(m.BuildID)
	assert.NoError(t, err)
	assert.Len(t, m.Files, 4)
	assert.Equal(t, checksum(a.Script), m.Files["portfolio.js"])
}

func TestWriteFilesWithoutStandalone(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteFiles(dir, sampleArtifact(t), Manifest{Template: "minimal"}, false)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, StandaloneFile))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteZip(t *testing.T) {
	a := sampleArtifact(t)
	var buf bytes.Buffer
	require.NoError(t, WriteZip(&buf, a, at))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	got := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		got[f.Name] = string(data)
	}

	assert.Equal(t, a.Markup, got["portfolio.html"])
	assert.Equal(t, a.Stylesheet, got["portfolio.css"])
	assert.Equal(t, a.Script, got["portfolio.js"])
	assert.Equal(t, Standalone(a), got[StandaloneFile])
}
