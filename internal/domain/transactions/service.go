package transactions

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// CategoryCache is the slice of device-local storage holding the legacy
// per-user category list under "@categorias_usuario_<id>".
type CategoryCache interface {
	Load(key string, value any) (bool, error)
	Delete(key string) error
}

// defaultCategories seeds a user's category list on first access.
var defaultCategories = []Category{
	{Name: "Food", Kind: KindExpense},
	{Name: "Transport", Kind: KindExpense},
	{Name: "Housing", Kind: KindExpense},
	{Name: "Health", Kind: KindExpense},
	{Name: "Education", Kind: KindExpense},
	{Name: "Leisure", Kind: KindExpense},
	{Name: "Shopping", Kind: KindExpense},
	{Name: "Other", Kind: KindExpense},
	{Name: "Salary", Kind: KindIncome},
	{Name: "Investments", Kind: KindIncome},
	{Name: "Gifts", Kind: KindIncome},
}

type Service struct {
	repo  Repository
	cache CategoryCache
}

func NewService(repo Repository, cache CategoryCache) *Service {
	return &Service{repo: repo, cache: cache}
}

type AddInput struct {
	UserID      uint
	Kind        string
	Description string
	Amount      int64 // cents
	CategoryID  *uint
	Date        time.Time
	Notes       *string
}

func (s *Service) Add(ctx context.Context, input AddInput) (*Transaction, error) {
	if input.Kind != KindIncome && input.Kind != KindExpense {
		return nil, ErrInvalidKind
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("date is required")
	}

	transaction := Transaction{
		UserID:      input.UserID,
		Kind:        input.Kind,
		Description: description,
		Amount:      input.Amount,
		CategoryID:  input.CategoryID,
		Date:        input.Date,
		Notes:       input.Notes,
	}
	if err := s.repo.Create(ctx, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

// ListAll returns every income and expense record for the user, annotated
// with its category name, newest date first.
func (s *Service) ListAll(ctx context.Context, userID uint) ([]Entry, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Summarize recomputes the dashboard totals from the full record set.
func (s *Service) Summarize(ctx context.Context, userID uint) (Summary, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	for _, entry := range entries {
		switch entry.Kind {
		case KindIncome:
			summary.Income += entry.Amount
		case KindExpense:
			summary.Expense += entry.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expense
	return summary, nil
}

// Filter narrows entries in memory. Data volumes are single-device, so a
// full scan of one user's records is acceptable.
func Filter(entries []Entry, opts FilterOptions) []Entry {
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	result := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if opts.Kind != "" && entry.Kind != opts.Kind {
			continue
		}
		if opts.CategoryID != 0 && (entry.CategoryID == nil || *entry.CategoryID != opts.CategoryID) {
			continue
		}
		if opts.From != nil && entry.Date.Before(*opts.From) {
			continue
		}
		if opts.To != nil && entry.Date.After(*opts.To) {
			continue
		}
		if opts.MinAmount > 0 && entry.Amount < opts.MinAmount {
			continue
		}
		if opts.MaxAmount > 0 && entry.Amount > opts.MaxAmount {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(entry.Description), search) &&
			!strings.Contains(strings.ToLower(entry.CategoryName), search) {
			continue
		}
		result = append(result, entry)
	}
	return result
}

func (s *Service) Update(ctx context.Context, id uint, input UpdateInput) (int64, error) {
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return 0, fmt.Errorf("description is required")
		}
		input.Description = &description
	}
	if input.Amount != nil && *input.Amount <= 0 {
		return 0, fmt.Errorf("amount must be positive")
	}
	return s.repo.Update(ctx, id, input)
}

func (s *Service) Delete(ctx context.Context, id uint) (int64, error) {
	return s.repo.Delete(ctx, id)
}

// Categories returns the user's categories, importing any legacy cached
// list and seeding the defaults on first access. The relational table is
// the authoritative store.
func (s *Service) Categories(ctx context.Context, userID uint) ([]Category, error) {
	count, err := s.repo.CountCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		if err := s.seedCategories(ctx, userID); err != nil {
			return nil, err
		}
	}
	return s.repo.ListCategories(ctx, userID)
}

func (s *Service) CreateCategory(ctx context.Context, userID uint, name, kind string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if kind != KindIncome && kind != KindExpense {
		return nil, ErrInvalidKind
	}

	category := Category{UserID: userID, Name: name, Kind: kind}
	if err := s.repo.CreateCategory(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *Service) DeleteCategory(ctx context.Context, userID, categoryID uint) (int64, error) {
	return s.repo.DeleteCategory(ctx, userID, categoryID)
}

// legacyCategory mirrors the shape the old device cache stored. Its
// timestamp-derived id is discarded; the table assigns sequential keys.
type legacyCategory struct {
	ID   any    `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

func legacyCacheKey(userID uint) string {
	return fmt.Sprintf("@categorias_usuario_%d", userID)
}

// seedCategories fills an empty category list from the legacy cache when
// one exists, otherwise from the fixed default set, in one transaction.
func (s *Service) seedCategories(ctx context.Context, userID uint) error {
	var legacy []legacyCategory
	found := false
	if s.cache != nil {
		var err error
		found, err = s.cache.Load(legacyCacheKey(userID), &legacy)
		if err != nil {
			return fmt.Errorf("read legacy categories: %w", err)
		}
	}

	seed := make([]Category, 0)
	if found {
		for _, old := range legacy {
			name := strings.TrimSpace(old.Name)
			if name == "" {
				continue
			}
			kind := old.Kind
			if kind != KindIncome && kind != KindExpense {
				kind = KindExpense
			}
			seed = append(seed, Category{UserID: userID, Name: name, Kind: kind})
		}
	}
	if len(seed) == 0 {
		for _, preset := range defaultCategories {
			seed = append(seed, Category{UserID: userID, Name: preset.Name, Kind: preset.Kind})
		}
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		for i := range seed {
			if err := tx.CreateCategory(ctx, &seed[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if found {
		return s.cache.Delete(legacyCacheKey(userID))
	}
	return nil
}
