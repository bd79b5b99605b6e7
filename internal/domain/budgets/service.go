package budgets

import (
	"context"
	"fmt"
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
	FamilyID  uint
	Name      string
	Amount    int64 // cents
	Category  string
	StartDate time.Time
	EndDate   time.Time
}

func (s *Service) Add(ctx context.Context, input AddInput) (*Budget, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, fmt.Errorf("category is required")
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, fmt.Errorf("start and end dates are required")
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, fmt.Errorf("end date must not be before start date")
	}

	budget := Budget{
		FamilyID:  input.FamilyID,
		Name:      name,
		Amount:    input.Amount,
		Category:  category,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	if err := s.repo.Create(ctx, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*Budget, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByFamily returns the family's budgets, most recently created first.
func (s *Service) ListByFamily(ctx context.Context, familyID uint) ([]Budget, error) {
	return s.repo.ListByFamily(ctx, familyID)
}

func (s *Service) Update(ctx context.Context, id uint, input UpdateInput) (int64, error) {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return 0, fmt.Errorf("name is required")
		}
		input.Name = &name
	}
	if input.Amount != nil && *input.Amount <= 0 {
		return 0, fmt.Errorf("amount must be positive")
	}
	return s.repo.Update(ctx, id, input)
}

func (s *Service) Delete(ctx context.Context, id uint) (int64, error) {
	return s.repo.Delete(ctx, id)
}
