//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=mock/client.go
package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"golang.org/x/exp/slices"

	"github.com/soda-altruism/portal/core"
	"github.com/soda-altruism/portal/x/graph"
)

const (
	defaultTimeout = 10 * time.Second
	turtle         = "text/turtle"
)

var tracer = otel.Tracer("client")

// Prefixes used when documents are written to pods
var Prefixes = graph.Prefixes{
	"rdf":     core.RDF,
	"odrl":    core.ODRL,
	"dcat":    core.DCAT,
	"dcterms": core.DCTERMS,
	"dpv":     core.DPV,
	"dpv-pd":  core.DPVPD,
	"oac":     core.OAC,
	"dga":     core.DGA,
}

// Client reads and writes RDF documents on Solid pods
type Client interface {
	GetDocument(ctx context.Context, session core.Session, url string) (*graph.Graph, string, error)
	PutDocument(ctx context.Context, session core.Session, url string, document *graph.Graph, precondition core.Precondition) (string, error)
	PostDocument(ctx context.Context, session core.Session, container, slug string, document *graph.Graph) (string, error)
	ListContainer(ctx context.Context, session core.Session, url string) ([]string, error)
}

type client struct {
	http    *http.Client
	trusted []string
}

func NewClient(config core.Config) Client {
	timeout := config.PodTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	trusted := []string{}
	if catalog := origin(config.CatalogURL); catalog != "" {
		trusted = append(trusted, catalog)
	}
	return &client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		trusted: trusted,
	}
}

func origin(raw string) string {
	u, err := neturl.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ""
	}
	return strings.ToLower(u.Scheme + "://" + u.Host)
}

// authorized reports whether the session's pod token may be sent to target.
// Only the user's own pod and the catalog host receive it.
func (c *client) authorized(session core.Session, target string) bool {
	if session.IsAnonymous() {
		return false
	}
	o := origin(target)
	if o == "" {
		return false
	}
	if o == origin(session.Root()) {
		return true
	}
	return slices.Contains(c.trusted, o)
}

func (c *client) newRequest(ctx context.Context, session core.Session, method, url string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", turtle)
	if body != nil {
		req.Header.Set("Content-Type", turtle)
	}
	if c.authorized(session, url) {
		req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return req, nil
}

func checkStatus(resp *http.Response, url string) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return core.NewErrorNotFoundWithMessage("Document not found: " + url)
	case resp.StatusCode == http.StatusPreconditionFailed:
		return core.NewErrorConflict(url)
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return core.NewErrorPermissionDenied()
	default:
		return core.NewErrorUpstream(resp.StatusCode, url)
	}
}

// GetDocument fetches and decodes a document. The returned string is its ETag.
func (c *client) GetDocument(ctx context.Context, session core.Session, url string) (*graph.Graph, string, error) {
	ctx, span := tracer.Start(ctx, "Client.GetDocument")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	req, err := c.newRequest(ctx, session, http.MethodGet, url, nil)
	if err != nil {
		span.RecordError(err)
		return nil, "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, "", errors.Wrap(err, "failed to fetch "+url)
	}
	defer resp.Body.Close()

	err = checkStatus(resp, url)
	if err != nil {
		span.RecordError(err)
		return nil, "", err
	}

	document, err := graph.Parse(core.DocumentURL(url), resp.Body)
	if err != nil {
		span.RecordError(err)
		return nil, "", errors.Wrap(err, "failed to parse "+url)
	}

	return document, resp.Header.Get("ETag"), nil
}

// PutDocument writes a whole document. The returned string is the new ETag, if the pod sent one.
func (c *client) PutDocument(ctx context.Context, session core.Session, url string, document *graph.Graph, precondition core.Precondition) (string, error) {
	ctx, span := tracer.Start(ctx, "Client.PutDocument")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	body, err := document.Turtle(Prefixes)
	if err != nil {
		span.RecordError(err)
		return "", errors.Wrap(err, "failed to encode "+url)
	}

	req, err := c.newRequest(ctx, session, http.MethodPut, url, []byte(body))
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	if precondition.IfMatch != "" {
		req.Header.Set("If-Match", precondition.IfMatch)
	}
	if precondition.IfNoneMatch != "" {
		req.Header.Set("If-None-Match", precondition.IfNoneMatch)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		return "", errors.Wrap(err, "failed to write "+url)
	}
	defer resp.Body.Close()

	err = checkStatus(resp, url)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	return resp.Header.Get("ETag"), nil
}

// PostDocument creates a new document inside a container and returns its location
func (c *client) PostDocument(ctx context.Context, session core.Session, container, slug string, document *graph.Graph) (string, error) {
	ctx, span := tracer.Start(ctx, "Client.PostDocument")
	defer span.End()
	span.SetAttributes(attribute.String("container", container))

	body, err := document.Turtle(Prefixes)
	if err != nil {
		span.RecordError(err)
		return "", errors.Wrap(err, "failed to encode document for "+container)
	}

	req, err := c.newRequest(ctx, session, http.MethodPost, container, []byte(body))
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	if slug != "" {
		req.Header.Set("Slug", slug)
	}
	req.Header.Set("Link", `<http://www.w3.org/ns/ldp#Resource>; rel="type"`)

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		return "", errors.Wrap(err, "failed to post to "+container)
	}
	defer resp.Body.Close()

	err = checkStatus(resp, container)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return "", errors.New("pod did not return a location for the new document")
	}
	if !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://") {
		location = resolveReference(container, location)
	}

	return location, nil
}

// ListContainer returns the resources an LDP container contains
func (c *client) ListContainer(ctx context.Context, session core.Session, url string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Client.ListContainer")
	defer span.End()

	document, _, err := c.GetDocument(ctx, session, url)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	container := document.Thing(url)
	if container == nil {
		return []string{}, nil
	}

	return container.GetURLAll(core.LDPContains), nil
}

func resolveReference(base, reference string) string {
	baseURL, err := neturl.Parse(base)
	if err != nil {
		return reference
	}
	ref, err := neturl.Parse(reference)
	if err != nil {
		return reference
	}
	return baseURL.ResolveReference(ref).String()
}
