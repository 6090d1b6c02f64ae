package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/config"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/models"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/constvars"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/exceptions"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/utils"
)

type fakeSessionService struct {
	sessions map[string]string
}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (f *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	data, ok := f.sessions[sessionID]
	if !ok {
		return "", exceptions.ErrSessionNotFound(nil)
	}
	return data, nil
}

const rbacTestModel = `
[request_definition]
r = sub, method, path

[policy_definition]
p = sub, method, path

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.method == p.method && keyMatch2(r.path, p.path)
`

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	t.Helper()
	rbacModel, err := model.NewModelFromString(rbacTestModel)
	assert.NoError(t, err)
	enforcer, err := casbin.NewEnforcer(rbacModel)
	assert.NoError(t, err)

	_, err = enforcer.AddPolicy(constvars.RoleStudioOwner, http.MethodPost, "/availability/editor/commit")
	assert.NoError(t, err)
	_, err = enforcer.AddPolicy(constvars.RoleArtist, http.MethodPost, "/bookings")
	assert.NoError(t, err)
	return enforcer
}

func sessionJSON(t *testing.T, session *models.Session) string {
	t.Helper()
	raw, err := json.Marshal(session)
	assert.NoError(t, err)
	return string(raw)
}

func TestAuthenticate(t *testing.T) {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		JWT:     config.AppJWT{Secret: "test-secret", ExpTimeInHour: 1},
		Booking: config.AppBooking{RequestTimeoutInSeconds: 2},
	}

	ownerData := sessionJSON(t, &models.Session{
		SessionID: "sess-1",
		UserID:    "user-1",
		Role:      constvars.RoleStudioOwner,
		StudioID:  "studio-1",
	})
	middlewareInstance := &Middlewares{
		Log:            logger,
		SessionService: &fakeSessionService{sessions: map[string]string{"sess-1": ownerData}},
		InternalConfig: internalConfig,
	}

	t.Run("Valid Token Resolves Session Into Context", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-1", internalConfig.JWT.Secret, internalConfig.JWT.ExpTimeInHour)
		assert.NoError(t, err)

		handler := middlewareInstance.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
			assert.True(t, ok, "session data should be stored in context")
			assert.Equal(t, ownerData, data)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/availability/editor", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing Header Is Rejected", func(t *testing.T) {
		reached := false
		handler := middlewareInstance.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
		}))

		req := httptest.NewRequest(http.MethodGet, "/availability/editor", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, reached, "handler should not run without a token")
	})

	t.Run("Garbage Token Is Rejected", func(t *testing.T) {
		handler := middlewareInstance.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler should not run with an invalid token")
		}))

		req := httptest.NewRequest(http.MethodGet, "/availability/editor", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Unknown Session Is Rejected", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-ghost", internalConfig.JWT.Secret, internalConfig.JWT.ExpTimeInHour)
		assert.NoError(t, err)

		handler := middlewareInstance.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler should not run for an expired session")
		}))

		req := httptest.NewRequest(http.MethodGet, "/availability/editor", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAuthorize(t *testing.T) {
	logger := zap.NewNop()
	middlewareInstance := &Middlewares{
		Log:      logger,
		Enforcer: newTestEnforcer(t),
	}

	withSession := func(req *http.Request, session *models.Session) *http.Request {
		ctx := context.WithValue(req.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionJSON(t, session))
		return req.WithContext(ctx)
	}
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Owner Reaches Owner Route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/availability/editor/commit", nil)
		req = withSession(req, &models.Session{SessionID: "s", UserID: "u", Role: constvars.RoleStudioOwner})
		rr := httptest.NewRecorder()
		middlewareInstance.Authorize(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Artist Is Blocked From Owner Route", func(t *testing.T) {
		reached := false
		handler := middlewareInstance.Authorize(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
		}))

		req := httptest.NewRequest(http.MethodPost, "/availability/editor/commit", nil)
		req = withSession(req, &models.Session{SessionID: "s", UserID: "u", Role: constvars.RoleArtist})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.False(t, reached, "blocked request should not reach the handler")
	})

	t.Run("Artist Reaches Artist Route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
		req = withSession(req, &models.Session{SessionID: "s", UserID: "u", Role: constvars.RoleArtist})
		rr := httptest.NewRecorder()
		middlewareInstance.Authorize(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing Session Is Rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
		rr := httptest.NewRecorder()
		middlewareInstance.Authorize(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
