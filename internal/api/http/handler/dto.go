package handler

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/dtroode/filesmanager-server/internal/model"
)

// TokenHeader carries the session token.
const TokenHeader = "X-Token"

const rootParentID = "0"

type userRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// parentID accepts both "0" and 0 for the root.
type parentID string

func (p *parentID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = parentID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = parentID(n.String())
	return nil
}

type createNodeRequest struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	ParentID parentID `json:"parentId"`
	IsPublic bool     `json:"isPublic"`
	Data     string   `json:"data"`
}

type nodeResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	IsPublic  bool   `json:"isPublic"`
	ParentID  string `json:"parentId"`
	LocalPath string `json:"localPath,omitempty"`
}

func toUserResponse(u model.User) userResponse {
	return userResponse{ID: u.ID.String(), Email: u.Email}
}

func toNodeResponse(n model.Node) nodeResponse {
	parent := rootParentID
	if id, ok := n.Parent.ID(); ok {
		parent = id.String()
	}

	return nodeResponse{
		ID:        n.ID.String(),
		UserID:    n.OwnerID.String(),
		Name:      n.Name,
		Type:      string(n.Kind),
		IsPublic:  n.IsPublic,
		ParentID:  parent,
		LocalPath: n.StorageHandle,
	}
}

func toNodeResponses(nodes []model.Node) []nodeResponse {
	out := make([]nodeResponse, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, toNodeResponse(n))
	}
	return out
}

// parseOptionalInt returns def for an empty value.
func parseOptionalInt(value string, def int) (int, error) {
	if value == "" {
		return def, nil
	}
	return strconv.Atoi(value)
}
