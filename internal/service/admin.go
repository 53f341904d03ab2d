package service

import (
	"context"

	"genhost/internal/manager"
	"genhost/pkg/types"
)

// LoadModel makes a catalogued model resident and returns the new status.
func (s *Service) LoadModel(ctx context.Context, id string) (types.StatusResponse, error) {
	if _, ok := s.mgr.Lookup(id); !ok {
		return types.StatusResponse{}, manager.ErrModelNotFound(id)
	}
	if _, err := s.mgr.Acquire(ctx, id, s.mgr.Settings()); err != nil {
		return types.StatusResponse{}, err
	}
	return s.Status(), nil
}

// Switch starts a background load of a catalogued model.
func (s *Service) Switch(id string) (types.SwitchResponse, error) {
	if id == "" {
		return types.SwitchResponse{}, errInvalid("model is required")
	}
	if _, ok := s.mgr.Lookup(id); !ok {
		return types.SwitchResponse{}, manager.ErrModelNotFound(id)
	}
	op := s.mgr.Switch(id, s.mgr.Settings())
	s.log.Info().Str("event", "switch").Str("op", op).Str("model", id).Msg("switch requested")
	return types.SwitchResponse{OpID: op, Model: id}, nil
}

// Release unloads the resident model.
func (s *Service) Release(ctx context.Context) error { return s.mgr.Release(ctx) }

// Status reports manager state plus host memory when available.
func (s *Service) Status() types.StatusResponse {
	st := s.mgr.Status()
	if s.hostMemory != nil {
		if hm, err := s.hostMemory(); err == nil {
			st.HostMemory = &hm
		}
	}
	return st
}

func (s *Service) ListModels() []types.Model { return s.mgr.ListModels() }

func (s *Service) Sanity() manager.SanityReport { return s.mgr.SanityCheck() }

func (s *Service) Ready() bool { return s.mgr.Ready() }
