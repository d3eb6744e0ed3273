package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/dtroode/filesmanager-server/internal/apperr"
	"github.com/dtroode/filesmanager-server/internal/logger"
	"github.com/dtroode/filesmanager-server/internal/model"
)

// CatalogService defines file hierarchy operations.
type CatalogService interface {
	CreateNode(ctx context.Context, params model.CreateNodeParams) (model.Node, error)
	GetNode(ctx context.Context, ownerID uuid.UUID, nodeID string) (model.Node, error)
	ListChildren(ctx context.Context, ownerID uuid.UUID, parentID string, page int) ([]model.Node, error)
	SetVisibility(ctx context.Context, ownerID uuid.UUID, nodeID string, public bool) (model.Node, error)
}

// AccessService serves node content to authorized readers.
type AccessService interface {
	Authorize(ctx context.Context, token, nodeID string, size int) (model.Content, error)
}

// File handles the /files endpoints.
type File struct {
	catalogService CatalogService
	accessService  AccessService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewFile(catalogService CatalogService, accessService AccessService, contextManager model.ContextManager, logger *logger.Logger) *File {
	return &File{
		catalogService: catalogService,
		accessService:  accessService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Create handles POST /files.
func (h *File) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req createNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("File handler: malformed body", "error", err.Error())
		WriteError(w, h.logger, apperr.NewErrInvalidField("request body"))
		return
	}

	node, err := h.catalogService.CreateNode(r.Context(), model.CreateNodeParams{
		OwnerID:  userID,
		Name:     req.Name,
		Kind:     model.NodeKind(req.Type),
		ParentID: string(req.ParentID),
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, toNodeResponse(node))
}

// Get handles GET /files/{id}.
func (h *File) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	node, err := h.catalogService.GetNode(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toNodeResponse(node))
}

// List handles GET /files?parentId=&page=.
func (h *File) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	page, err := parseOptionalInt(query.Get("page"), 0)
	if err != nil {
		WriteError(w, h.logger, apperr.NewErrInvalidPage())
		return
	}

	nodes, err := h.catalogService.ListChildren(r.Context(), userID, query.Get("parentId"), page)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toNodeResponses(nodes))
}

// Publish handles PUT /files/{id}/publish.
func (h *File) Publish(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, true)
}

// Unpublish handles PUT /files/{id}/unpublish.
func (h *File) Unpublish(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, false)
}

func (h *File) setVisibility(w http.ResponseWriter, r *http.Request, public bool) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	node, err := h.catalogService.SetVisibility(r.Context(), userID, r.PathValue("id"), public)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toNodeResponse(node))
}

// Data handles GET /files/{id}/data[?size=]. The token is optional.
func (h *File) Data(w http.ResponseWriter, r *http.Request) {
	size, err := parseOptionalInt(r.URL.Query().Get("size"), 0)
	if err != nil {
		WriteError(w, h.logger, apperr.NewErrInvalidField("size"))
		return
	}

	content, err := h.accessService.Authorize(r.Context(), r.Header.Get(TokenHeader), r.PathValue("id"), size)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", content.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(content.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content.Data); err != nil {
		h.logger.Warn("File handler: failed to write content", "error", err.Error())
	}
}

func (h *File) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		WriteError(w, h.logger, apperr.NewErrUnauthorized())
	}
	return userID, ok
}
