// Package export turns a generated artifact into files: the three source
// files, a standalone preview document, and a zip bundle.
package export

import (
	"archive/zip"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/folio/internal/portfolio"
)

// Kind identifies one of the three generated files.
type Kind string

const (
	KindMarkup     Kind = "html"
	KindStylesheet Kind = "css"
	KindScript     Kind = "js"
)

// Kinds lists the file kinds in export order.
var Kinds = []Kind{KindMarkup, KindStylesheet, KindScript}

// StandaloneFile is the name of the self-contained preview document.
const StandaloneFile = "index.html"

// ParseKind accepts "html", "css" or "js".
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown file kind %q: must be html, css or js", s)
}

// FileName returns the download name for a kind, e.g. portfolio.css.
func FileName(k Kind) string {
	return "portfolio." + string(k)
}

// ContentType returns the MIME type for a kind.
func ContentType(k Kind) string {
	switch k {
	case KindStylesheet:
		return "text/css; charset=utf-8"
	case KindScript:
		return "text/javascript; charset=utf-8"
	default:
		return "text/html; charset=utf-8"
	}
}

// Content returns the artifact text for a kind.
func Content(a portfolio.Artifact, k Kind) string {
	switch k {
	case KindStylesheet:
		return a.Stylesheet
	case KindScript:
		return a.Script
	default:
		return a.Markup
	}
}

// Standalone assembles a single document with the stylesheet in a style
// element and the script in a script element, suitable for a sandboxed
// preview. Markup without head/body markers is wrapped in a minimal page.
func Standalone(a portfolio.Artifact) string {
	style := "<style>\n" + a.Stylesheet + "\n</style>\n"
	script := "<script>\n" + a.Script + "\n</script>\n"

	headEnd := strings.LastIndex(a.Markup, "</head>")
	bodyEnd := strings.LastIndex(a.Markup, "</body>")
	if headEnd == -1 || bodyEnd == -1 || bodyEnd < headEnd {
		return "<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"UTF-8\">\n" +
			style + "</head>\n<body>\n" + a.Markup + "\n" + script + "</body>\n</html>\n"
	}

	var b strings.Builder
	b.Grow(len(a.Markup) + len(style) + len(script))
	b.WriteString(a.Markup[:headEnd])
	b.WriteString(style)
	b.WriteString(a.Markup[headEnd:bodyEnd])
	b.WriteString(script)
	b.WriteString(a.Markup[bodyEnd:])
	return b.String()
}

// Manifest describes one export.
type Manifest struct {
	BuildID     string            `json:"build_id"`
	Template    string            `json:"template"`
	GeneratedAt time.Time         `json:"generated_at"`
	Files       map[string]string `json:"files"` // file name -> sha256
}

// NewManifest creates a manifest with a fresh build id.
func NewManifest(template string, generatedAt time.Time) Manifest {
	return Manifest{
		BuildID:     uuid.NewString(),
		Template:    template,
		GeneratedAt: generatedAt.UTC(),
		Files:       make(map[string]string),
	}
}

// WriteFiles writes portfolio.html, portfolio.css and portfolio.js into dir,
// plus index.html when standalone is set, and finally manifest.json. It
// returns the paths written.
func WriteFiles(dir string, a portfolio.Artifact, m Manifest, standalone bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir %s: %w", dir, err)
	}
	if m.Files == nil {
		m.Files = make(map[string]string)
	}

	var written []string
	write := func(name, content string) error {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		m.Files[name] = checksum(content)
		written = append(written, path)
		return nil
	}

	for _, k := range Kinds {
		if err := write(FileName(k), Content(a, k)); err != nil {
			return written, err
		}
	}
	if standalone {
		if err := write(StandaloneFile, Standalone(a)); err != nil {
			return written, err
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return written, fmt.Errorf("marshalling manifest: %w", err)
	}
	manifestPath := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(manifestPath, append(data, '\n'), 0o644); err != nil {
		return written, fmt.Errorf("writing %s: %w", manifestPath, err)
	}
	return append(written, manifestPath), nil
}

// WriteZip streams the three files and a standalone index.html as a zip
// archive.
func WriteZip(w io.Writer, a portfolio.Artifact, modified time.Time) error {
	zw := zip.NewWriter(w)

	add := func(name, content string) error {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return fmt.Errorf("adding %s to archive: %w", name, err)
		}
		if _, err := io.WriteString(fw, content); err != nil {
			return fmt.Errorf("writing %s to archive: %w", name, err)
		}
		return nil
	}

	for _, k := range Kinds {
		if err := add(FileName(k), Content(a, k)); err != nil {
			return err
		}
	}
	if err := add(StandaloneFile, Standalone(a)); err != nil {
		return err
	}
	return zw.Close()
}

func checksum(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
