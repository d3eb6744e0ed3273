package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/filesmanager-server/internal/apperr"
	"github.com/dtroode/filesmanager-server/internal/mocks"
	"github.com/dtroode/filesmanager-server/internal/model"
	"github.com/dtroode/filesmanager-server/internal/testutil"
)

type fileMocks struct {
	catalog *mocks.CatalogService
	access  *mocks.AccessService
	cm      *mocks.ContextManager
}

func newTestFile(t *testing.T) (*File, fileMocks) {
	m := fileMocks{
		catalog: mocks.NewCatalogService(t),
		access:  mocks.NewAccessService(t),
		cm:      mocks.NewContextManager(t),
	}
	return NewFile(m.catalog, m.access, m.cm, testutil.MakeNoopLogger()), m
}

func TestFile_Create(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	nodeID := uuid.New()
	parent := uuid.New()

	tests := []struct {
		name     string
		body     string
		wantArgs model.CreateNodeParams
		result   model.Node
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "folder at root with numeric parent",
			body:     `{"name":"images","type":"folder","parentId":0}`,
			wantArgs: model.CreateNodeParams{OwnerID: owner, Name: "images", Kind: model.NodeKindFolder, ParentID: "0"},
			result:   model.Node{ID: nodeID, OwnerID: owner, Name: "images", Kind: model.NodeKindFolder},
			wantCode: http.StatusCreated,
			wantBody: `{"id":"` + nodeID.String() + `","userId":"` + owner.String() + `","name":"images","type":"folder","isPublic":false,"parentId":"0"}`,
		},
		{
			name:     "file under folder",
			body:     `{"name":"myText.txt","type":"file","parentId":"` + parent.String() + `","isPublic":true,"data":"SGVsbG8="}`,
			wantArgs: model.CreateNodeParams{OwnerID: owner, Name: "myText.txt", Kind: model.NodeKindFile, ParentID: parent.String(), IsPublic: true, Data: "SGVsbG8="},
			result: model.Node{
				ID: nodeID, OwnerID: owner, Name: "myText.txt", Kind: model.NodeKindFile,
				Parent: model.ParentOf(parent), IsPublic: true, StorageHandle: "/tmp/files_manager/x",
			},
			wantCode: http.StatusCreated,
			wantBody: `{"id":"` + nodeID.String() + `","userId":"` + owner.String() + `","name":"myText.txt","type":"file","isPublic":true,"parentId":"` + parent.String() + `","localPath":"/tmp/files_manager/x"}`,
		},
		{
			name:     "validation error",
			body:     `{"type":"folder"}`,
			wantArgs: model.CreateNodeParams{OwnerID: owner, Kind: model.NodeKindFolder},
			err:      apperr.NewErrMissingField("name"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Missing name"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, m := newTestFile(t)
			m.cm.On("GetUserIDFromContext", mock.Anything).Return(owner, true)
			m.catalog.On("CreateNode", mock.Anything, tt.wantArgs).Return(tt.result, tt.err)

			rec := httptest.NewRecorder()
			h.Create(rec, httptest.NewRequest(http.MethodPost, "/files", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestFile_Create_Unauthenticated(t *testing.T) {
	t.Parallel()

	h, m := newTestFile(t)
	m.cm.On("GetUserIDFromContext", mock.Anything).Return(uuid.Nil, false)

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/files", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFile_Create_MalformedBody(t *testing.T) {
	t.Parallel()

	h, m := newTestFile(t)
	m.cm.On("GetUserIDFromContext", mock.Anything).Return(uuid.New(), true)

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/files", strings.NewReader(`{"parentId":true}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFile_Get(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		h, m := newTestFile(t)
		m.cm.On("GetUserIDFromContext", mock.Anything).Return(owner, true)
		m.catalog.On("GetNode", mock.Anything, owner, id.String()).Return(model.Node{ID: id, OwnerID: owner, Kind: model.NodeKindFolder, Name: "d"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/files/"+id.String(), nil)
		req.SetPathValue("id", id.String())
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"parentId":"0"`)
	})

	t.Run("not found", func(t *testing.T) {
		h, m := newTestFile(t)
		m.cm.On("GetUserIDFromContext", mock.Anything).Return(owner, true)
		m.catalog.On("GetNode", mock.Anything, owner, "nope").Return(model.Node{}, apperr.NewErrNotFound())

		req := httptest.NewRequest(http.MethodGet, "/files/nope", nil)
		req.SetPathValue("id", "nope")
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
	})
}

func TestFile_List(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	parent := uuid.New().String()

	t.Run("defaults to root first page", func(t *testing.T) {
		h, m := newTestFile(t)
		m.cm.On("GetUserIDFromContext", mock.Anything).Return(owner, true)
		m.catalog.On("ListChildren", mock.Anything, owner, "", 0).Return([]model.Node{}, nil)

		rec := httptest.NewRecorder()
		h.List(rec, httptest.NewRequest(http.MethodGet, "/files", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("parent and page", func(t *testing.T) {
		h, m := newTestFile(t)
		m.cm.On("GetUserIDFromContext", mock.Anything).Return(owner, true)
		m.catalog.On("ListChildren", mock.Anything, owner, parent, 1).
			Return([]model.Node{{ID: uuid.New(), OwnerID: owner, Name: "a"}, {ID: uuid.New(), OwnerID: owner, Name: "b"}}, nil)

		rec := httptest.NewRecorder()
		h.List(rec, httptest.NewRequest(http.MethodGet, "/files?parentId="+parent+"&page=1", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"a"`)
		assert.Contains(t, rec.Body.String(), `"name":"b"`)
	})

	t.Run("non numeric page", func(t *testing.T) {
		h, m := newTestFile(t)
		m.cm.On("GetUserIDFromContext", mock.Anything).Return(owner, true)

		rec := httptest.NewRecorder()
		h.List(rec, httptest.NewRequest(http.MethodGet, "/files?page=abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid page number"}`, rec.Body.String())
	})

	t.Run("trailing characters in page", func(t *testing.T) {
		h, m := newTestFile(t)
		m.cm.On("GetUserIDFromContext", mock.Anything).Return(owner, true)

		rec := httptest.NewRecorder()
		h.List(rec, httptest.NewRequest(http.MethodGet, "/files?page=1abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid page number"}`, rec.Body.String())
	})

	t.Run("negative page", func(t *testing.T) {
		h, m := newTestFile(t)
		m.cm.On("GetUserIDFromContext", mock.Anything).Return(owner, true)
		m.catalog.On("ListChildren", mock.Anything, owner, "", -1).Return(nil, apperr.NewErrInvalidPage())

		rec := httptest.NewRecorder()
		h.List(rec, httptest.NewRequest(http.MethodGet, "/files?page=-1", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFile_PublishUnpublish(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	id := uuid.New()

	for _, public := range []bool{true, false} {
		h, m := newTestFile(t)
		m.cm.On("GetUserIDFromContext", mock.Anything).Return(owner, true)
		m.catalog.On("SetVisibility", mock.Anything, owner, id.String(), public).
			Return(model.Node{ID: id, OwnerID: owner, Kind: model.NodeKindFile, IsPublic: public}, nil)

		req := httptest.NewRequest(http.MethodPut, "/files/"+id.String()+"/publish", nil)
		req.SetPathValue("id", id.String())
		rec := httptest.NewRecorder()
		if public {
			h.Publish(rec, req)
		} else {
			h.Unpublish(rec, req)
		}

		assert.Equal(t, http.StatusOK, rec.Code)
		if public {
			assert.Contains(t, rec.Body.String(), `"isPublic":true`)
		} else {
			assert.Contains(t, rec.Body.String(), `"isPublic":false`)
		}
	}
}

func TestFile_Data(t *testing.T) {
	t.Parallel()

	id := uuid.New().String()

	t.Run("public content without token", func(t *testing.T) {
		h, m := newTestFile(t)
		m.access.On("Authorize", mock.Anything, "", id, 0).
			Return(model.Content{Data: []byte("Hello Webstack!\n"), ContentType: "text/plain; charset=utf-8"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/files/"+id+"/data", nil)
		req.SetPathValue("id", id)
		rec := httptest.NewRecorder()
		h.Data(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "Hello Webstack!\n", rec.Body.String())
	})

	t.Run("thumbnail with token", func(t *testing.T) {
		h, m := newTestFile(t)
		m.access.On("Authorize", mock.Anything, "tok", id, 100).
			Return(model.Content{Data: []byte{0x89}, ContentType: "image/png"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/files/"+id+"/data?size=100", nil)
		req.SetPathValue("id", id)
		req.Header.Set(TokenHeader, "tok")
		rec := httptest.NewRecorder()
		h.Data(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	})

	t.Run("folder", func(t *testing.T) {
		h, m := newTestFile(t)
		m.access.On("Authorize", mock.Anything, "", id, 0).Return(model.Content{}, apperr.NewErrNoContent())

		req := httptest.NewRequest(http.MethodGet, "/files/"+id+"/data", nil)
		req.SetPathValue("id", id)
		rec := httptest.NewRecorder()
		h.Data(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"A folder doesn't have content"}`, rec.Body.String())
	})

	t.Run("bad size", func(t *testing.T) {
		h, _ := newTestFile(t)

		req := httptest.NewRequest(http.MethodGet, "/files/"+id+"/data?size=big", nil)
		req.SetPathValue("id", id)
		rec := httptest.NewRecorder()
		h.Data(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid size"}`, rec.Body.String())
	})
}
