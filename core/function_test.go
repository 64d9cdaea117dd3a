package core

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFragment(t *testing.T) {
	assert.Equal(t, "Health", Fragment("https://w3id.org/dpv/dpv-pd#Health"))
	assert.Equal(t, "b", Fragment("https://example.com/doc#a#b"))
	assert.Equal(t, "", Fragment("https://example.com/doc"))
	assert.True(t, HasFragment("https://example.com/doc#a"))
	assert.False(t, HasFragment("https://example.com/doc"))
	assert.Equal(t, "https://example.com/doc", DocumentURL("https://example.com/doc#a"))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "policy-x", FileName("https://alice.example/altruism/policy-x"))
	assert.Equal(t, "altruism", FileName("https://alice.example/altruism/"))
}

func TestPodRootFromWebID(t *testing.T) {
	assert.Equal(t, "https://alice.example/", PodRootFromWebID("https://alice.example/profile/card#me"))
	assert.Equal(t, "", PodRootFromWebID("https://alice.example/card#me"))

	profile := Profile{WebID: "https://alice.example/profile/card#me"}
	assert.Equal(t, "https://alice.example/", profile.PodRoot())

	profile.Storages = []string{"https://storage.example/alice/"}
	assert.Equal(t, "https://storage.example/alice/", profile.PodRoot())
}

func TestLookupVocabulary(t *testing.T) {
	term, ok := LookupDataCategory("Health")
	if assert.True(t, ok) {
		assert.Equal(t, "https://w3id.org/dpv/dpv-pd#Health", term.IRI)
	}

	purpose, ok := LookupPurpose("ScientificResearch")
	if assert.True(t, ok) {
		assert.Equal(t, "https://w3id.org/dgaterms#ScientificResearch", purpose.IRI)
	}

	_, ok = LookupPurpose("Marketing")
	assert.False(t, ok)
	assert.Len(t, AltruisticPurposes, 7)
	assert.Len(t, DataCategories, 5)
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, 400, StatusCode(NewErrorInvalidInput("purpose", "Choose the purpose of policy")))
	assert.Equal(t, 404, StatusCode(NewErrorNotFound()))
	assert.Equal(t, 409, StatusCode(NewErrorAlreadyExists()))
	assert.Equal(t, 409, StatusCode(NewErrorConflict("https://example.com/catalog")))
	assert.Equal(t, 502, StatusCode(NewErrorUpstream(500, "https://example.com/catalog")))
	assert.Equal(t, 500, StatusCode(assert.AnError))
}
