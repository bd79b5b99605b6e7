package goals

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type AddInput struct {
	FamilyID     uint
	UserID       uint
	Name         string
	TargetAmount int64 // cents
	TargetDate   *time.Time
}

func (s *Service) Add(ctx context.Context, input AddInput) (*Goal, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if input.TargetAmount <= 0 {
		return nil, fmt.Errorf("target amount must be positive")
	}

	goal := Goal{
		FamilyID:     input.FamilyID,
		CreatedBy:    input.UserID,
		Name:         name,
		TargetAmount: input.TargetAmount,
		TargetDate:   input.TargetDate,
		Status:       StatusActive,
	}
	if err := s.repo.Create(ctx, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*Goal, error) {
	return s.repo.GetByID(ctx, id)
}

// Contribute adds amount to the goal's saved total. Only active goals
// accept contributions; the total is not capped at the target, so
// over-contribution is simply recorded.
func (s *Service) Contribute(ctx context.Context, goalID uint, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("contribution amount must be positive")
	}

	return s.repo.Transaction(ctx, func(tx Repository) error {
		goal, err := tx.GetByID(ctx, goalID)
		if err != nil {
			return err
		}
		if goal.Status != StatusActive {
			return ErrGoalNotActive
		}
		return tx.AddToCurrent(ctx, goalID, amount)
	})
}

// UpdateStatus moves a goal between active, completed and cancelled.
// A completed or cancelled goal can only be reactivated; no state
// transitions into itself.
func (s *Service) UpdateStatus(ctx context.Context, goalID uint, newStatus string) error {
	if newStatus != StatusActive && newStatus != StatusCompleted && newStatus != StatusCancelled {
		return ErrInvalidStatus
	}

	return s.repo.Transaction(ctx, func(tx Repository) error {
		goal, err := tx.GetByID(ctx, goalID)
		if err != nil {
			return err
		}
		if goal.Status == newStatus {
			return ErrInvalidTransition
		}
		if goal.Status != StatusActive && newStatus != StatusActive {
			return ErrInvalidTransition
		}
		return tx.SetStatus(ctx, goalID, newStatus)
	})
}

func (s *Service) Update(ctx context.Context, goalID uint, input UpdateInput) (int64, error) {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return 0, fmt.Errorf("name is required")
		}
		input.Name = &name
	}
	if input.TargetAmount != nil && *input.TargetAmount <= 0 {
		return 0, fmt.Errorf("target amount must be positive")
	}
	return s.repo.Update(ctx, goalID, input)
}

func (s *Service) Delete(ctx context.Context, goalID uint) (int64, error) {
	return s.repo.Delete(ctx, goalID)
}

// ListByFamily returns the family's goals in display order: active goals
// first, then within each group ascending target date with dateless goals
// last, ties kept in insertion order.
func (s *Service) ListByFamily(ctx context.Context, familyID uint) ([]Goal, error) {
	listed, err := s.repo.ListByFamily(ctx, familyID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(listed, func(i, j int) bool {
		a, b := listed[i], listed[j]
		if (a.Status == StatusActive) != (b.Status == StatusActive) {
			return a.Status == StatusActive
		}
		if a.TargetDate == nil && b.TargetDate == nil {
			return false
		}
		if a.TargetDate == nil {
			return false
		}
		if b.TargetDate == nil {
			return true
		}
		return a.TargetDate.Before(*b.TargetDate)
	})

	return listed, nil
}
