// Package file persists the ledger as JSON snapshots on disk. Every
// mutation rewrites the affected snapshot, so the files always hold the
// complete state and survive an unclean shutdown.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"duit/internal/core"
)

const (
	transactionsFile = "transactions.json"
	goalsFile        = "goals.json"
)

type Store struct {
	mu    sync.Mutex
	dir   string
	txns  []core.Transaction
	goals []core.Goal
}

// New loads the snapshots under dir, creating dir if needed. A missing or
// unreadable snapshot degrades to an empty list so a fresh or corrupted
// data directory never blocks startup.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Store{dir: dir}
	if err := loadSnapshot(filepath.Join(dir, transactionsFile), &s.txns); err != nil {
		slog.Warn("transaction snapshot unreadable, starting empty", "path", filepath.Join(dir, transactionsFile), "error", err)
		s.txns = nil
	}
	if err := loadSnapshot(filepath.Join(dir, goalsFile), &s.goals); err != nil {
		slog.Warn("goal snapshot unreadable, starting empty", "path", filepath.Join(dir, goalsFile), "error", err)
		s.goals = nil
	}
	return s, nil
}

func loadSnapshot(path string, dst any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

// writeSnapshot renames a temp file over the target so readers never see
// a half-written snapshot.
func (s *Store) writeSnapshot(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}

func (s *Store) saveTransactions() error {
	return s.writeSnapshot(transactionsFile, s.txns)
}

func (s *Store) saveGoals() error {
	return s.writeSnapshot(goalsFile, s.goals)
}

func (s *Store) AddTransaction(_ context.Context, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txns = append(s.txns, tx)
	if err := s.saveTransactions(); err != nil {
		s.txns = s.txns[:len(s.txns)-1]
		return err
	}
	return nil
}

func (s *Store) DeleteTransaction(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, tx := range s.txns {
		if tx.ID == id {
			s.txns = append(s.txns[:i], s.txns[i+1:]...)
			return s.saveTransactions()
		}
	}
	return core.ErrNotFound
}

func (s *Store) ListTransactions(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.txns))
	copy(out, s.txns)
	return out, nil
}

func (s *Store) AddGoal(_ context.Context, g core.Goal) error {
	if err := g.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = append(s.goals, g)
	if err := s.saveGoals(); err != nil {
		s.goals = s.goals[:len(s.goals)-1]
		return err
	}
	return nil
}

func (s *Store) GetGoal(_ context.Context, id string) (core.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.goals {
		if g.ID == id {
			return cloneGoal(g), nil
		}
	}
	return core.Goal{}, core.ErrNotFound
}

func (s *Store) UpdateGoal(_ context.Context, g core.Goal) error {
	if err := g.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.goals {
		if s.goals[i].ID == g.ID {
			prev := s.goals[i]
			s.goals[i] = cloneGoal(g)
			if err := s.saveGoals(); err != nil {
				s.goals[i] = prev
				return err
			}
			return nil
		}
	}
	return core.ErrNotFound
}

func (s *Store) DeleteGoal(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, g := range s.goals {
		if g.ID == id {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			return s.saveGoals()
		}
	}
	return core.ErrNotFound
}

func (s *Store) ListGoals(_ context.Context) ([]core.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Goal, len(s.goals))
	for i, g := range s.goals {
		out[i] = cloneGoal(g)
	}
	return out, nil
}

func cloneGoal(g core.Goal) core.Goal {
	c := g
	c.Deposits = make([]core.Deposit, len(g.Deposits))
	copy(c.Deposits, g.Deposits)
	return c
}
