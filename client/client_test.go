package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soda-altruism/portal/core"
	"github.com/soda-altruism/portal/x/graph"
)

type recorder struct {
	mu             sync.Mutex
	authorizations []string
}

func (r *recorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.authorizations) == 0 {
		return ""
	}
	return r.authorizations[len(r.authorizations)-1]
}

func newServer(r *recorder) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.mu.Lock()
		r.authorizations = append(r.authorizations, req.Header.Get("Authorization"))
		r.mu.Unlock()

		switch req.Method {
		case http.MethodPost:
			w.Header().Set("Location", req.URL.Path+"request-1")
			w.WriteHeader(http.StatusCreated)
		default:
			w.Header().Set("Content-Type", "text/turtle")
			w.Write([]byte("<> a <http://www.w3.org/ns/ldp#Container> .\n"))
		}
	}))
}

func TestTokenStaysWithTrustedOrigins(t *testing.T) {
	ctx := context.Background()

	own, catalog, foreign := &recorder{}, &recorder{}, &recorder{}
	ownServer := newServer(own)
	defer ownServer.Close()
	catalogServer := newServer(catalog)
	defer catalogServer.Close()
	foreignServer := newServer(foreign)
	defer foreignServer.Close()

	c := NewClient(core.Config{CatalogURL: catalogServer.URL + "/catalogs/catalog1"})
	session := core.Session{
		WebID:       ownServer.URL + "/carol/profile/card#me",
		PodRoot:     ownServer.URL + "/carol/",
		AccessToken: "carol-pod-token",
	}

	_, _, err := c.GetDocument(ctx, session, ownServer.URL+"/carol/altruism/")
	assert.NoError(t, err)
	assert.Equal(t, "Bearer carol-pod-token", own.last())

	_, _, err = c.GetDocument(ctx, session, catalogServer.URL+"/catalogs/catalog1")
	assert.NoError(t, err)
	assert.Equal(t, "Bearer carol-pod-token", catalog.last())

	inbox := foreignServer.URL + "/bob/inbox/"
	doc := graph.New(inbox + "request-1")
	doc.SetThing(doc.NewThing("dataset-steps").AddString(core.DCTermsDescription, "hello"))

	location, err := c.PostDocument(ctx, session, inbox, "request-1", doc)
	if assert.NoError(t, err) {
		assert.Equal(t, inbox+"request-1", location)
	}
	assert.Equal(t, "", foreign.last())

	_, _, err = c.GetDocument(ctx, core.Session{}, ownServer.URL+"/carol/profile/card")
	assert.NoError(t, err)
	assert.Equal(t, "", own.last())
}

func TestPutRejectsInvalidIRI(t *testing.T) {
	ctx := context.Background()

	r := &recorder{}
	server := newServer(r)
	defer server.Close()

	c := NewClient(core.Config{})
	doc := graph.New(server.URL + "/alice/altruism/x")
	doc.SetThing(doc.NewThing("permission1").AddURL(core.ODRLTarget, "https://a.example/x> <b"))

	_, err := c.PutDocument(ctx, core.Session{}, server.URL+"/alice/altruism/x", doc, core.CreateOnly())
	assert.ErrorAs(t, err, &graph.InvalidIRIError{})
	assert.Empty(t, r.authorizations)
}
