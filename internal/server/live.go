package server

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/folio/internal/export"
	"github.com/ziadkadry99/folio/internal/portfolio"
	"github.com/ziadkadry99/folio/internal/profile"
)

// reloadClient reconnects the preview page to /ws/reload and refreshes it
// when the profile changes.
const reloadClient = `<script>
(function () {
  var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
  var ws = new WebSocket(proto + location.host + '/ws/reload');
  ws.onmessage = function (e) {
    var msg = JSON.parse(e.data);
    if (msg.type === 'reload') { location.reload(); }
    if (msg.type === 'error') { console.error('folio: ' + msg.error); }
  };
})();
</script>
`

// liveSite holds the most recent rendering of the previewed profile.
type liveSite struct {
	path     string
	template string
	gen      *portfolio.Generator

	mu       sync.RWMutex
	artifact portfolio.Artifact
	err      error
}

func newLiveSite(path, template string, gen *portfolio.Generator) *liveSite {
	return &liveSite{path: path, template: template, gen: gen}
}

// reload regenerates the site. On failure the previous rendering is kept
// and the error is remembered for display.
func (l *liveSite) reload() error {
	a, err := l.render()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = err
	if err == nil {
		l.artifact = a
	}
	return err
}

func (l *liveSite) render() (portfolio.Artifact, error) {
	p := profile.Sample()
	if l.path != "" {
		loaded, err := profile.LoadFile(l.path)
		if err != nil {
			return portfolio.Artifact{}, err
		}
		if err := profile.Validate(loaded); err != nil {
			return portfolio.Artifact{}, fmt.Errorf("checking profile %s: %w", l.path, err)
		}
		p = *loaded
	}
	return l.gen.Generate(p, l.template)
}

func (l *liveSite) current() (portfolio.Artifact, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.artifact, l.err
}

func (s *Server) registerLive(r chi.Router) {
	r.Get("/", s.handleLivePage)
	r.Get("/source/{kind}", s.handleSource)
}

func (s *Server) handleLivePage(w http.ResponseWriter, r *http.Request) {
	a, err := s.site.current()
	if err != nil && a.Markup == "" {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	doc := injectBeforeBodyEnd(export.Standalone(a), reloadClient)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}

func (s *Server) handleSource(w http.ResponseWriter, r *http.Request) {
	kind, err := export.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	a, err := s.site.current()
	if err != nil && a.Markup == "" {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	page, err := renderSource(kind, export.Content(a, kind))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(page))
}

func injectBeforeBodyEnd(doc, snippet string) string {
	i := strings.LastIndex(doc, "</body>")
	if i == -1 {
		return doc + snippet
	}
	return doc[:i] + snippet + doc[i:]
}
