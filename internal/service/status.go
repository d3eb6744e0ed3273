package service

import (
	"context"
	"fmt"

	"github.com/dtroode/filesmanager-server/internal/logger"
	"github.com/dtroode/filesmanager-server/internal/model"
)

type Status struct {
	cache     model.Pinger
	db        model.Pinger
	userStore model.UserStore
	nodeStore model.NodeStore
	logger    *logger.Logger
}

func NewStatus(cache, db model.Pinger, userStore model.UserStore, nodeStore model.NodeStore, logger *logger.Logger) *Status {
	return &Status{
		cache:     cache,
		db:        db,
		userStore: userStore,
		nodeStore: nodeStore,
		logger:    logger,
	}
}

func (s *Status) Status(ctx context.Context) model.Status {
	st := model.Status{Redis: true, DB: true}

	if err := s.cache.Ping(ctx); err != nil {
		s.logger.Warn("Status service: cache is unreachable", "error", err.Error())
		st.Redis = false
	}
	if err := s.db.Ping(ctx); err != nil {
		s.logger.Warn("Status service: database is unreachable", "error", err.Error())
		st.DB = false
	}

	return st
}

func (s *Status) Stats(ctx context.Context) (model.Stats, error) {
	users, err := s.userStore.Count(ctx)
	if err != nil {
		return model.Stats{}, fmt.Errorf("failed to count users: %w", err)
	}

	files, err := s.nodeStore.Count(ctx)
	if err != nil {
		return model.Stats{}, fmt.Errorf("failed to count nodes: %w", err)
	}

	return model.Stats{Users: users, Files: files}, nil
}
