package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/soda-altruism/portal/client"
	"github.com/soda-altruism/portal/client/mock"
	"github.com/soda-altruism/portal/core"
	"github.com/soda-altruism/portal/internal/testutil"
	"github.com/soda-altruism/portal/x/graph"
	"github.com/soda-altruism/portal/x/policy/mock"
)

var testConfig = core.Config{PolicyContainer: "altruism/"}

func newSession(pod *testutil.Pod) core.Session {
	return core.Session{
		ID:          "cn3q8s6p0l4c73a0f5dg",
		WebID:       pod.URL("/alice/profile/card#me"),
		PodRoot:     pod.URL("/alice/"),
		AccessToken: "alice-token",
	}
}

func newRequest(name string) core.PolicyRequest {
	return core.PolicyRequest{
		Resource: "https://alice.example/data/steps.ttl",
		Category: "Health",
		Purpose:  "ScientificResearch",
		Name:     name,
	}
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	pod := testutil.NewPod()
	defer pod.Close()
	pod.Protect("/alice/", "alice-token")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_policy.NewMockRepository(ctrl)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, record core.PolicyRecord) (core.PolicyRecord, error) {
			assert.Len(t, record.ID, 20)
			assert.Equal(t, pod.URL("/alice/profile/card#me"), record.Owner)
			return record, nil
		},
	)

	service := NewService(mockRepo, client.NewClient(testConfig), testConfig)
	session := newSession(pod)

	policy, err := service.Store(ctx, session, newRequest("steps-policy"))
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, pod.URL("/alice/altruism/steps-policy"), policy.Location)

	stored, ok := pod.Document("/alice/altruism/steps-policy")
	if assert.True(t, ok) {
		doc, err := graph.ParseString(policy.Location, stored)
		if assert.NoError(t, err) {
			assert.Len(t, doc.Things(), 3)
			assert.Equal(t, core.DGA+"ScientificResearch", doc.Thing(policy.Location+"#purposeConstraint").GetURL(core.ODRLRightOperand))
		}
	}

	names, err := service.ListNames(ctx, session)
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"steps-policy"}, names)
	}
}

func TestStoreDuplicateName(t *testing.T) {
	ctx := context.Background()

	pod := testutil.NewPod()
	defer pod.Close()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_policy.NewMockRepository(ctrl)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(core.PolicyRecord{}, nil).Times(1)

	service := NewService(mockRepo, client.NewClient(testConfig), testConfig)
	session := newSession(pod)

	_, err := service.Store(ctx, session, newRequest("steps-policy"))
	assert.NoError(t, err)
	first, _ := pod.Document("/alice/altruism/steps-policy")
	writes := pod.Writes()

	second := newRequest("steps-policy")
	second.Purpose = "CombatClimateChange"
	_, err = service.Store(ctx, session, second)

	var exists core.ErrorAlreadyExists
	if assert.ErrorAs(t, err, &exists) {
		assert.Equal(t, "There is already a policy with that name, choose another", exists.Message)
	}

	after, _ := pod.Document("/alice/altruism/steps-policy")
	assert.Equal(t, first, after)
	assert.Equal(t, writes, pod.Writes())
}

func TestStoreLostRace(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := core.Session{WebID: "https://alice.example/profile/card#me", PodRoot: "https://alice.example/", AccessToken: "t"}

	mockClient := mock_client.NewMockClient(ctrl)
	mockClient.EXPECT().ListContainer(gomock.Any(), session, "https://alice.example/altruism/").Return([]string{}, nil)
	mockClient.EXPECT().
		PutDocument(gomock.Any(), session, "https://alice.example/altruism/steps-policy", gomock.Any(), core.CreateOnly()).
		Return("", core.NewErrorConflict("https://alice.example/altruism/steps-policy"))

	service := NewService(mock_policy.NewMockRepository(ctrl), mockClient, testConfig)

	_, err := service.Store(ctx, session, newRequest("steps-policy"))
	assert.ErrorAs(t, err, &core.ErrorAlreadyExists{})
}

func TestStoreInvalidInputMakesNoRequest(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: any call on the client fails the test
	mockClient := mock_client.NewMockClient(ctrl)
	service := NewService(mock_policy.NewMockRepository(ctrl), mockClient, testConfig)

	session := core.Session{WebID: "https://alice.example/profile/card#me", PodRoot: "https://alice.example/", AccessToken: "t"}

	for _, request := range []core.PolicyRequest{
		{},
		{Purpose: "ScientificResearch"},
		{Purpose: "ScientificResearch", Category: "Health"},
		{Purpose: "ScientificResearch", Category: "Health", Resource: "https://alice.example/data"},
	} {
		_, err := service.Store(ctx, session, request)
		assert.ErrorAs(t, err, &core.ErrorInvalidInput{})
	}
}

func TestStoreUpstreamFailure(t *testing.T) {
	ctx := context.Background()

	pod := testutil.NewPod()
	defer pod.Close()
	pod.Protect("/alice/", "alice-token")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mock_policy.NewMockRepository(ctrl), client.NewClient(testConfig), testConfig)

	session := newSession(pod)
	session.AccessToken = "stolen"

	_, err := service.Store(ctx, session, newRequest("steps-policy"))
	assert.ErrorAs(t, err, &core.ErrorPermissionDenied{})
	assert.Equal(t, 0, pod.Writes())
}

func TestPreviewFallsBackToWebIDRoot(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mock_policy.NewMockRepository(ctrl), mock_client.NewMockClient(ctrl), testConfig)

	session := core.Session{WebID: "https://bob.example/profile/card#me"}
	policy, err := service.Build(ctx, session, newRequest("p1"))
	if assert.NoError(t, err) {
		assert.Equal(t, "https://bob.example/altruism/p1", policy.Location)
		assert.Contains(t, policy.Document, "<#policy1>")
		assert.Contains(t, policy.Document, "odrl:rightOperand dga:ScientificResearch")
	}
}

func TestStoreRejectsMalformedValues(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_client.NewMockClient(ctrl)
	service := NewService(mock_policy.NewMockRepository(ctrl), mockClient, testConfig)

	session := core.Session{WebID: "https://alice.example/profile/card#me", PodRoot: "https://alice.example/", AccessToken: "t"}

	injected := newRequest("steps-policy")
	injected.Resource = "https://a.example/x> ; <http://www.w3.org/ns/odrl/2/assignee> <http://evil.example/mallory"

	var invalid core.ErrorInvalidInput
	_, err := service.Store(ctx, session, injected)
	if assert.ErrorAs(t, err, &invalid) {
		assert.Equal(t, "resource", invalid.Field)
	}

	for _, name := range []string{"a/b", "a#b", "a?b", "a b"} {
		_, err := service.Store(ctx, session, newRequest(name))
		if assert.ErrorAs(t, err, &invalid) {
			assert.Equal(t, "name", invalid.Field)
		}
	}
}

func TestStoreUnknownPodRoot(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_client.NewMockClient(ctrl)
	service := NewService(mock_policy.NewMockRepository(ctrl), mockClient, testConfig)

	session := core.Session{WebID: "https://bob.example/card#me", AccessToken: "t"}

	_, err := service.Store(ctx, session, newRequest("p1"))
	var notFound core.ErrorNotFound
	if assert.ErrorAs(t, err, &notFound) {
		assert.Contains(t, notFound.Message, "pod root")
	}

	_, err = service.ListNames(ctx, session)
	assert.ErrorAs(t, err, &core.ErrorNotFound{})
}
