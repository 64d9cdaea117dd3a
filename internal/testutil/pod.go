package testutil

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
)

type resource struct {
	body []byte
	etag string
}

// Pod is an in-memory Solid pod speaking the subset of LDP the portal uses
type Pod struct {
	Server *httptest.Server

	mu         sync.Mutex
	resources  map[string]resource
	containers map[string]bool
	tokens     map[string]string
	version    int
	writes     int
}

// NewPod starts a pod. Close it with pod.Server.Close().
func NewPod() *Pod {
	pod := &Pod{
		resources:  make(map[string]resource),
		containers: make(map[string]bool),
		tokens:     make(map[string]string),
	}

	e := echo.New()
	e.HideBanner = true
	e.Any("/*", pod.handle)
	pod.Server = httptest.NewServer(e)

	return pod
}

// URL returns the absolute URL of a path on this pod
func (p *Pod) URL(path string) string {
	return p.Server.URL + "/" + strings.TrimPrefix(path, "/")
}

// Close shuts the server down
func (p *Pod) Close() {
	p.Server.Close()
}

// CreateContainer makes an empty container exist
func (p *Pod) CreateContainer(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.containers[normalizePath(path)] = true
}

// Seed stores a document without going through http
func (p *Pod) Seed(path, document string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.store(normalizePath(path), []byte(document))
}

// Document returns the stored body of a document
func (p *Pod) Document(path string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, ok := p.resources[normalizePath(path)]
	return string(r.body), ok
}

// Protect requires a bearer token for every path under prefix
func (p *Pod) Protect(prefix, token string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tokens[normalizePath(prefix)] = token
}

// Writes counts successful PUT and POST requests
func (p *Pod) Writes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writes
}

// Children lists the documents directly inside a container
func (p *Pod) Children(path string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.children(normalizePath(path))
}

func normalizePath(path string) string {
	return "/" + strings.TrimPrefix(path, "/")
}

func (p *Pod) store(path string, body []byte) resource {
	p.version++
	r := resource{body: body, etag: fmt.Sprintf(`"v%d"`, p.version)}
	p.resources[path] = r

	parent := path[:strings.LastIndex(strings.TrimSuffix(path, "/"), "/")+1]
	p.containers[parent] = true

	return r
}

func (p *Pod) children(container string) []string {
	set := map[string]bool{}
	for path := range p.resources {
		if !strings.HasPrefix(path, container) || path == container {
			continue
		}
		rest := path[len(container):]
		if i := strings.Index(rest, "/"); i >= 0 {
			rest = rest[:i+1]
		}
		set[container+rest] = true
	}
	children := make([]string, 0, len(set))
	for child := range set {
		children = append(children, child)
	}
	sort.Strings(children)
	return children
}

func (p *Pod) authorized(c echo.Context, path string) bool {
	for prefix, token := range p.tokens {
		if strings.HasPrefix(path, prefix) {
			return c.Request().Header.Get("Authorization") == "Bearer "+token
		}
	}
	return true
}

func (p *Pod) handle(c echo.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	path := c.Request().URL.Path
	if !p.authorized(c, path) {
		return c.NoContent(http.StatusUnauthorized)
	}

	switch c.Request().Method {
	case http.MethodGet, http.MethodHead:
		return p.get(c, path)
	case http.MethodPut:
		return p.put(c, path)
	case http.MethodPost:
		return p.post(c, path)
	case http.MethodDelete:
		delete(p.resources, path)
		return c.NoContent(http.StatusResetContent)
	default:
		return c.NoContent(http.StatusMethodNotAllowed)
	}
}

func (p *Pod) get(c echo.Context, path string) error {
	if strings.HasSuffix(path, "/") {
		if !p.containers[path] {
			return c.NoContent(http.StatusNotFound)
		}
		var b strings.Builder
		b.WriteString("@prefix ldp: <http://www.w3.org/ns/ldp#> .\n")
		b.WriteString("<> a ldp:Container, ldp:BasicContainer .\n")
		for _, child := range p.children(path) {
			fmt.Fprintf(&b, "<> ldp:contains <%s> .\n", child[len(path):])
		}
		return c.Blob(http.StatusOK, "text/turtle", []byte(b.String()))
	}

	r, ok := p.resources[path]
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}
	c.Response().Header().Set("ETag", r.etag)
	return c.Blob(http.StatusOK, "text/turtle", r.body)
}

func (p *Pod) put(c echo.Context, path string) error {
	current, exists := p.resources[path]

	if c.Request().Header.Get("If-None-Match") == "*" && exists {
		return c.NoContent(http.StatusPreconditionFailed)
	}
	if match := c.Request().Header.Get("If-Match"); match != "" {
		if !exists || match != current.etag {
			return c.NoContent(http.StatusPreconditionFailed)
		}
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	r := p.store(path, body)
	p.writes++
	c.Response().Header().Set("ETag", r.etag)
	if exists {
		return c.NoContent(http.StatusNoContent)
	}
	return c.NoContent(http.StatusCreated)
}

func (p *Pod) post(c echo.Context, path string) error {
	if !strings.HasSuffix(path, "/") || !p.containers[path] {
		return c.NoContent(http.StatusNotFound)
	}

	slug := c.Request().Header.Get("Slug")
	if slug == "" {
		slug = fmt.Sprintf("resource-%d", p.version+1)
	}
	target := path + slug
	for n := 1; ; n++ {
		if _, taken := p.resources[target]; !taken {
			break
		}
		target = fmt.Sprintf("%s%s-%d", path, slug, n)
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	r := p.store(target, body)
	p.writes++
	c.Response().Header().Set("ETag", r.etag)
	c.Response().Header().Set("Location", p.Server.URL+target)
	return c.NoContent(http.StatusCreated)
}
