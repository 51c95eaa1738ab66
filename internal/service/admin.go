package service

import (
	"context"

	"go.uber.org/zap"
)

type DropperI interface {
	DropAll(ctx context.Context) error
}

type AdminS struct {
	store DropperI
	log   *zap.Logger
}

func NewAdminService(store DropperI, log *zap.Logger) *AdminS {
	return &AdminS{
		store: store,
		log:   log,
	}
}

// Reset drops every collection. It returns once, after all drops have
// finished; the store's join contract passes through unchanged.
func (s *AdminS) Reset(ctx context.Context) error {
	if err := s.store.DropAll(ctx); err != nil {
		s.log.Error("failed to reset store", zap.Error(err))
		return err
	}
	s.log.Info("store reset, all collections dropped")
	return nil
}
