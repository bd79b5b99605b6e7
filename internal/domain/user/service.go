package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id uint) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// FindByEmail returns (nil, nil) when no user has the given email.
func (s *Service) FindByEmail(ctx context.Context, email string) (*User, error) {
	found, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return found, nil
}

// FindByPhone returns (nil, nil) when no user has the given phone.
func (s *Service) FindByPhone(ctx context.Context, phone string) (*User, error) {
	found, err := s.repo.GetByPhone(ctx, strings.TrimSpace(phone))
	if errors.Is(err, ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return found, nil
}

// UpdateProfile applies the given fields and returns the affected row
// count. Zero means the user id did not match anything; callers treat it
// as a no-op, not a failure.
func (s *Service) UpdateProfile(ctx context.Context, id uint, input UpdateInput) (int64, error) {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return 0, fmt.Errorf("name is required")
		}
		input.Name = &name
	}
	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if email == "" || !strings.Contains(email, "@") {
			return 0, fmt.Errorf("valid email is required")
		}
		input.Email = &email
	}
	return s.repo.Update(ctx, id, input)
}

func (s *Service) SetPhoto(ctx context.Context, id uint, url string) (int64, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return 0, fmt.Errorf("photo url is required")
	}
	return s.repo.SetPhoto(ctx, id, url)
}

func (s *Service) LinkFamily(ctx context.Context, id, familyID uint) (int64, error) {
	return s.repo.SetFamily(ctx, id, &familyID)
}

func (s *Service) UnlinkFamily(ctx context.Context, id uint) (int64, error) {
	return s.repo.SetFamily(ctx, id, nil)
}
