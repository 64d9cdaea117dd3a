package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/soda-altruism/portal/core"
	"github.com/soda-altruism/portal/core/mock"
	"github.com/soda-altruism/portal/internal/testutil"
	"github.com/soda-altruism/portal/x/session/mock"
)

func TestIdentify(t *testing.T) {

	checker := testutil.SetupMockTraceProvider()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := core.Session{
		ID:          "cn3q8s6p0l4c73a0f5dg",
		WebID:       aliceWebID,
		PodRoot:     "https://alice.example/",
		AccessToken: "pod-token",
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	mockRepo := mock_session.NewMockRepository(ctrl)
	mockRepo.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(session, nil)

	mockProfile := mock_core.NewMockProfileService(ctrl)
	mockProfile.EXPECT().Resolve(gomock.Any(), aliceWebID).Return(core.Profile{WebID: aliceWebID}, nil)

	service := NewService(mockRepo, mockProfile, testConfig)
	token, _, err := service.Create(context.Background(), aliceWebID, "pod-token")
	if !assert.NoError(t, err) {
		return
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := service.Identify(Restrict(func(c echo.Context) error {
		found, ok := FromContext(c)
		assert.True(t, ok)
		assert.Equal(t, session.ID, found.ID)
		return c.String(http.StatusOK, "OK")
	}))

	err = h(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	spans := checker.GetSpans()
	assert.NotEmpty(t, spans)
}

func TestRestrictWithoutSession(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mock_session.NewMockRepository(ctrl), mock_core.NewMockProfileService(ctrl), testConfig)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer not-a-jwt"} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := service.Identify(Restrict(func(c echo.Context) error {
			t.Fatal("restricted handler must not run")
			return nil
		}))

		err := h(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}
}
