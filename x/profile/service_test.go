package profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/soda-altruism/portal/client"
	"github.com/soda-altruism/portal/core"
	"github.com/soda-altruism/portal/internal/testutil"
	"github.com/soda-altruism/portal/x/profile/mock"
)

const aliceCard = `@prefix ldp: <http://www.w3.org/ns/ldp#> .
@prefix pim: <http://www.w3.org/ns/pim/space#> .
@prefix foaf: <http://xmlns.com/foaf/0.1/> .

<#me>
    foaf:name "Alice" ;
    pim:storage </alice/> ;
    ldp:inbox </alice/inbox/> .
`

func TestResolve(t *testing.T) {
	ctx := context.Background()

	pod := testutil.NewPod()
	defer pod.Close()
	pod.Seed("/alice/profile/card", aliceCard)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	webID := pod.URL("/alice/profile/card#me")
	config := core.Config{ProfileCacheTTL: 10 * time.Minute}

	mockRepo := mock_profile.NewMockRepository(ctrl)
	mockRepo.EXPECT().GetCache(gomock.Any(), webID).Return(core.Profile{}, core.NewErrorNotFound())
	mockRepo.EXPECT().SetCache(gomock.Any(), gomock.Any(), 10*time.Minute).Return(nil)

	service := NewService(mockRepo, client.NewClient(config), config)

	profile, err := service.Resolve(ctx, webID)
	if assert.NoError(t, err) {
		assert.Equal(t, "Alice", profile.Name)
		assert.Equal(t, []string{pod.URL("/alice/")}, profile.Storages)
		assert.Equal(t, pod.URL("/alice/inbox/"), profile.Inbox)
		assert.Equal(t, pod.URL("/alice/"), profile.PodRoot())
	}
}

func TestResolveFromCache(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cached := core.Profile{
		WebID: "https://alice.example/profile/card#me",
		Inbox: "https://alice.example/inbox/",
	}

	mockRepo := mock_profile.NewMockRepository(ctrl)
	mockRepo.EXPECT().GetCache(gomock.Any(), cached.WebID).Return(cached, nil)

	service := NewService(mockRepo, client.NewClient(core.Config{}), core.Config{})

	profile, err := service.Resolve(ctx, cached.WebID)
	if assert.NoError(t, err) {
		assert.Equal(t, cached, profile)
		assert.Equal(t, "https://alice.example/", profile.PodRoot())
	}
}

func TestResolveMissingSubject(t *testing.T) {
	ctx := context.Background()

	pod := testutil.NewPod()
	defer pod.Close()
	pod.Seed("/bob/profile/card", aliceCard)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_profile.NewMockRepository(ctrl)
	mockRepo.EXPECT().GetCache(gomock.Any(), gomock.Any()).Return(core.Profile{}, core.NewErrorNotFound()).AnyTimes()

	service := NewService(mockRepo, client.NewClient(core.Config{}), core.Config{})

	_, err := service.Resolve(ctx, pod.URL("/bob/profile/card#i"))
	assert.ErrorAs(t, err, &core.ErrorNotFound{})

	_, err = service.Resolve(ctx, pod.URL("/nobody/profile/card#me"))
	assert.ErrorAs(t, err, &core.ErrorNotFound{})
}
