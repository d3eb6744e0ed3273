package service

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/filesmanager-server/internal/model"
)

// memNodeStore is an in-memory NodeStore for flow tests.
type memNodeStore struct {
	mu    sync.Mutex
	nodes map[uuid.UUID]model.Node
	seq   map[uuid.UUID]int
	next  int
}

func newMemNodeStore() *memNodeStore {
	return &memNodeStore{nodes: map[uuid.UUID]model.Node{}, seq: map[uuid.UUID]int{}}
}

func (s *memNodeStore) Create(_ context.Context, node model.Node) (model.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes[node.ID] = node
	s.seq[node.ID] = s.next
	s.next++
	return node, nil
}

func (s *memNodeStore) GetByID(_ context.Context, id uuid.UUID) (model.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[id]
	if !ok {
		return model.Node{}, model.ErrNotFound
	}
	return n, nil
}

func (s *memNodeStore) GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (model.Node, error) {
	n, err := s.GetByID(ctx, id)
	if err != nil || n.OwnerID != ownerID {
		return model.Node{}, model.ErrNotFound
	}
	return n, nil
}

func (s *memNodeStore) ListByParent(_ context.Context, ownerID uuid.UUID, parent model.ParentRef, limit, offset int) ([]model.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var all []model.Node
	for _, n := range s.nodes {
		if n.OwnerID == ownerID && n.Parent == parent {
			all = append(all, n)
		}
	}
	sort.Slice(all, func(i, j int) bool { return s.seq[all[i].ID] < s.seq[all[j].ID] })

	out := []model.Node{}
	for i := offset; i < len(all) && i < offset+limit; i++ {
		out = append(out, all[i])
	}
	return out, nil
}

func (s *memNodeStore) SetPublic(_ context.Context, id, ownerID uuid.UUID, public bool) (model.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[id]
	if !ok || n.OwnerID != ownerID {
		return model.Node{}, model.ErrNotFound
	}
	n.IsPublic = public
	s.nodes[id] = n
	return n, nil
}

func (s *memNodeStore) Count(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.nodes)), nil
}

type recordingPublisher struct {
	mu   sync.Mutex
	jobs []model.Job
}

func (p *recordingPublisher) Enqueue(_ context.Context, job model.Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.jobs = append(p.jobs, job)
	return nil
}
