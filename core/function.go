package core

import (
	"strings"
)

// Fragment returns the substring after the last '#' of an IRI, or "" when there is none
func Fragment(iri string) string {
	i := strings.LastIndex(iri, "#")
	if i < 0 {
		return ""
	}
	return iri[i+1:]
}

// HasFragment reports whether the IRI names a node inside a document
func HasFragment(iri string) bool {
	return strings.Contains(iri, "#")
}

// DocumentURL strips the fragment from an IRI
func DocumentURL(iri string) string {
	i := strings.Index(iri, "#")
	if i < 0 {
		return iri
	}
	return iri[:i]
}

// FileName returns the last path segment of a URL
func FileName(url string) string {
	url = strings.TrimSuffix(url, "/")
	i := strings.LastIndex(url, "/")
	return url[i+1:]
}

// PodRootFromWebID guesses the pod root from a WebID of the form <root>profile/card#me
func PodRootFromWebID(webID string) string {
	i := strings.Index(webID, "profile")
	if i < 0 {
		return ""
	}
	return webID[:i]
}

// JoinURL resolves a relative path against a container URL
func JoinURL(container, path string) string {
	if !strings.HasSuffix(container, "/") {
		container += "/"
	}
	return container + strings.TrimPrefix(path, "/")
}
