package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/filesmanager-server/internal/model"
)

var _ model.NodeStore = (*NodeRepository)(nil)

const nodeColumns = `id, owner_id, name, kind, parent_id, is_public, storage_handle, created_at`

const (
	queryNodeInsert = `INSERT INTO nodes (` + nodeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + nodeColumns

	queryNodeByID = `SELECT ` + nodeColumns + ` FROM nodes WHERE id = $1`

	queryNodeByIDAndOwner = `SELECT ` + nodeColumns + ` FROM nodes WHERE id = $1 AND owner_id = $2`

	// created_at alone is not unique; id breaks ties so pages stay stable.
	queryNodesAtRoot = `SELECT ` + nodeColumns + ` FROM nodes
		WHERE owner_id = $1 AND parent_id IS NULL
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`

	queryNodesByParent = `SELECT ` + nodeColumns + ` FROM nodes
		WHERE owner_id = $1 AND parent_id = $2
		ORDER BY created_at, id
		LIMIT $3 OFFSET $4`

	queryNodeSetPublic = `UPDATE nodes SET is_public = $3
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + nodeColumns

	queryNodeCount = `SELECT COUNT(*) FROM nodes`
)

type NodeRepository struct {
	db *Connection
}

func NewNodeRepository(db *Connection) *NodeRepository {
	return &NodeRepository{
		db: db,
	}
}

func (r *NodeRepository) Create(ctx context.Context, node model.Node) (model.Node, error) {
	parentID, _ := node.Parent.ID()

	saved, err := scanNode(r.db.QueryRowContext(ctx, queryNodeInsert,
		node.ID, node.OwnerID, node.Name, string(node.Kind),
		uuid.NullUUID{UUID: parentID, Valid: !node.Parent.IsRoot()},
		node.IsPublic,
		sql.NullString{String: node.StorageHandle, Valid: node.StorageHandle != ""},
		node.CreatedAt,
	))
	if err != nil {
		return model.Node{}, fmt.Errorf("failed to create node: %w", err)
	}

	return saved, nil
}

func (r *NodeRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Node, error) {
	node, err := scanNode(r.db.QueryRowContext(ctx, queryNodeByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Node{}, model.ErrNotFound
		}
		return model.Node{}, fmt.Errorf("failed to get node by id: %w", err)
	}

	return node, nil
}

func (r *NodeRepository) GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (model.Node, error) {
	node, err := scanNode(r.db.QueryRowContext(ctx, queryNodeByIDAndOwner, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Node{}, model.ErrNotFound
		}
		return model.Node{}, fmt.Errorf("failed to get node by id and owner: %w", err)
	}

	return node, nil
}

func (r *NodeRepository) ListByParent(ctx context.Context, ownerID uuid.UUID, parent model.ParentRef, limit, offset int) ([]model.Node, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if parentID, ok := parent.ID(); ok {
		rows, err = r.db.QueryContext(ctx, queryNodesByParent, ownerID, parentID, limit, offset)
	} else {
		rows, err = r.db.QueryContext(ctx, queryNodesAtRoot, ownerID, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}
	defer rows.Close()

	nodes := make([]model.Node, 0, limit)
	for rows.Next() {
		node, err := scanNode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan node: %w", err)
		}
		nodes = append(nodes, node)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate nodes: %w", err)
	}

	return nodes, nil
}

func (r *NodeRepository) SetPublic(ctx context.Context, id, ownerID uuid.UUID, public bool) (model.Node, error) {
	node, err := scanNode(r.db.QueryRowContext(ctx, queryNodeSetPublic, id, ownerID, public))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Node{}, model.ErrNotFound
		}
		return model.Node{}, fmt.Errorf("failed to update node visibility: %w", err)
	}

	return node, nil
}

func (r *NodeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, queryNodeCount).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count nodes: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNode(row rowScanner) (model.Node, error) {
	var (
		node   model.Node
		kind   string
		parent uuid.NullUUID
		handle sql.NullString
	)

	err := row.Scan(&node.ID, &node.OwnerID, &node.Name, &kind, &parent, &node.IsPublic, &handle, &node.CreatedAt)
	if err != nil {
		return model.Node{}, err
	}

	node.Kind = model.NodeKind(kind)
	node.StorageHandle = handle.String
	if parent.Valid {
		node.Parent = model.ParentOf(parent.UUID)
	}

	return node, nil
}
