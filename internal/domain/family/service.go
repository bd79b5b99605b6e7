package family

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"famcash/internal/domain/user"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id uint) (*Family, error) {
	return s.repo.GetByID(ctx, id)
}

// FindByName returns (nil, nil) when no family has the given name.
func (s *Service) FindByName(ctx context.Context, name string) (*Family, error) {
	found, err := s.repo.GetByName(ctx, strings.TrimSpace(name))
	if errors.Is(err, ErrFamilyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (s *Service) Create(ctx context.Context, name string) (*Family, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	created := Family{Name: name}
	if err := s.repo.Create(ctx, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Service) Rename(ctx context.Context, id uint, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("name is required")
	}
	return s.repo.Rename(ctx, id, name)
}

func (s *Service) Delete(ctx context.Context, id uint) (int64, error) {
	return s.repo.Delete(ctx, id)
}

// Members lists the users linked to the family, oldest first.
func (s *Service) Members(ctx context.Context, familyID uint) ([]user.User, error) {
	return s.repo.ListMembers(ctx, familyID)
}
