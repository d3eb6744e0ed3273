package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpctx "github.com/dtroode/filesmanager-server/internal/api/http/context"
	"github.com/dtroode/filesmanager-server/internal/apperr"
	"github.com/dtroode/filesmanager-server/internal/mocks"
	"github.com/dtroode/filesmanager-server/internal/model"
	"github.com/dtroode/filesmanager-server/internal/testutil"
)

type routerMocks struct {
	user    *mocks.UserService
	session *mocks.SessionService
	catalog *mocks.CatalogService
	access  *mocks.AccessService
	status  *mocks.StatusService
}

func newTestRouter(t *testing.T) (http.Handler, routerMocks) {
	m := routerMocks{
		user:    mocks.NewUserService(t),
		session: mocks.NewSessionService(t),
		catalog: mocks.NewCatalogService(t),
		access:  mocks.NewAccessService(t),
		status:  mocks.NewStatusService(t),
	}

	r := New(Services{
		User:    m.user,
		Session: m.session,
		Catalog: m.catalog,
		Access:  m.access,
		Status:  m.status,
	}, httpctx.NewManager(), testutil.MakeNoopLogger())

	return r.Register(), m
}

func TestRouter_Register_PublicRoutes(t *testing.T) {
	t.Parallel()

	h, m := newTestRouter(t)

	m.status.On("Status", mock.Anything).Return(model.Status{Redis: true, DB: true})
	m.access.On("Authorize", mock.Anything, "", "f1", 0).Return(model.Content{Data: []byte("hi"), ContentType: "text/plain"}, nil)
	m.user.On("Register", mock.Anything, "a@b.c", "pw").Return(model.User{ID: uuid.New(), Email: "a@b.c"}, nil)

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		wantCode int
	}{
		{name: "status", method: http.MethodGet, target: "/status", wantCode: http.StatusOK},
		{name: "public data", method: http.MethodGet, target: "/files/f1/data", wantCode: http.StatusOK},
		{name: "register", method: http.MethodPost, target: "/users", body: `{"email":"a@b.c","password":"pw"}`, wantCode: http.StatusCreated},
		{name: "unknown path", method: http.MethodGet, target: "/nope", wantCode: http.StatusNotFound},
		{name: "wrong method", method: http.MethodDelete, target: "/files", wantCode: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRouter_Register_ProtectedRoutesRequireToken(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t)

	routes := []struct{ method, target string }{
		{http.MethodGet, "/users/me"},
		{http.MethodGet, "/disconnect"},
		{http.MethodPost, "/files"},
		{http.MethodGet, "/files"},
		{http.MethodGet, "/files/f1"},
		{http.MethodPut, "/files/f1/publish"},
		{http.MethodPut, "/files/f1/unpublish"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(rt.method, rt.target, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
		})
	}
}

func TestRouter_Register_AuthenticatedRequest(t *testing.T) {
	t.Parallel()

	h, m := newTestRouter(t)
	userID := uuid.New()
	nodeID := uuid.New()

	m.session.On("Validate", mock.Anything, "tok").Return(userID, nil)
	m.catalog.On("GetNode", mock.Anything, userID, nodeID.String()).
		Return(model.Node{ID: nodeID, OwnerID: userID, Name: "docs", Kind: model.NodeKindFolder}, nil)
	m.catalog.On("GetNode", mock.Anything, userID, "missing").Return(model.Node{}, apperr.NewErrNotFound())

	req := httptest.NewRequest(http.MethodGet, "/files/"+nodeID.String(), nil)
	req.Header.Set("X-Token", "tok")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"docs"`)

	req = httptest.NewRequest(http.MethodGet, "/files/missing", nil)
	req.Header.Set("X-Token", "tok")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
