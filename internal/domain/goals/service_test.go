package goals

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeGoalsRepo struct {
	goals  map[uint]*Goal
	nextID uint
}

func newFakeGoalsRepo() *fakeGoalsRepo {
	return &fakeGoalsRepo{goals: make(map[uint]*Goal), nextID: 1}
}

func (r *fakeGoalsRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeGoalsRepo) Create(ctx context.Context, goal *Goal) error {
	goal.ID = r.nextID
	r.nextID++
	stored := *goal
	r.goals[goal.ID] = &stored
	return nil
}

func (r *fakeGoalsRepo) GetByID(ctx context.Context, id uint) (*Goal, error) {
	goal, ok := r.goals[id]
	if !ok {
		return nil, ErrGoalNotFound
	}
	copied := *goal
	return &copied, nil
}

func (r *fakeGoalsRepo) ListByFamily(ctx context.Context, familyID uint) ([]Goal, error) {
	var listed []Goal
	for id := uint(1); id < r.nextID; id++ {
		goal, ok := r.goals[id]
		if ok && goal.FamilyID == familyID {
			listed = append(listed, *goal)
		}
	}
	return listed, nil
}

func (r *fakeGoalsRepo) AddToCurrent(ctx context.Context, id uint, amount int64) error {
	goal, ok := r.goals[id]
	if !ok {
		return ErrGoalNotFound
	}
	goal.CurrentAmount += amount
	return nil
}

func (r *fakeGoalsRepo) SetStatus(ctx context.Context, id uint, status string) error {
	goal, ok := r.goals[id]
	if !ok {
		return ErrGoalNotFound
	}
	goal.Status = status
	return nil
}

func (r *fakeGoalsRepo) Update(ctx context.Context, id uint, input UpdateInput) (int64, error) {
	goal, ok := r.goals[id]
	if !ok {
		return 0, nil
	}
	if input.Name != nil {
		goal.Name = *input.Name
	}
	if input.TargetAmount != nil {
		goal.TargetAmount = *input.TargetAmount
	}
	if input.TargetDate != nil {
		goal.TargetDate = input.TargetDate
	}
	return 1, nil
}

func (r *fakeGoalsRepo) Delete(ctx context.Context, id uint) (int64, error) {
	if _, ok := r.goals[id]; !ok {
		return 0, nil
	}
	delete(r.goals, id)
	return 1, nil
}

func date(value string) *time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &parsed
}

func TestAddGoalDefaults(t *testing.T) {
	repo := newFakeGoalsRepo()
	svc := NewService(repo)

	goal, err := svc.Add(context.Background(), AddInput{
		FamilyID: 1, UserID: 2, Name: "  Vacation  ", TargetAmount: 50000,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if goal.Name != "Vacation" {
		t.Fatalf("expected name trimmed, got %q", goal.Name)
	}
	if goal.Status != StatusActive {
		t.Fatalf("expected active status, got %q", goal.Status)
	}
	if goal.CurrentAmount != 0 {
		t.Fatalf("expected zero current amount, got %d", goal.CurrentAmount)
	}
}

func TestAddGoalValidation(t *testing.T) {
	svc := NewService(newFakeGoalsRepo())

	if _, err := svc.Add(context.Background(), AddInput{Name: "   ", TargetAmount: 100}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if _, err := svc.Add(context.Background(), AddInput{Name: "Car", TargetAmount: 0}); err == nil {
		t.Fatalf("expected error for non-positive target")
	}
}

func TestContributeAddsWithoutCap(t *testing.T) {
	repo := newFakeGoalsRepo()
	repo.goals[1] = &Goal{ID: 1, FamilyID: 1, Status: StatusActive, TargetAmount: 1000, CurrentAmount: 900}
	repo.nextID = 2

	svc := NewService(repo)
	if err := svc.Contribute(context.Background(), 1, 500); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := repo.goals[1].CurrentAmount; got != 1400 {
		t.Fatalf("expected 1400, got %d", got)
	}
}

func TestContributeNotActive(t *testing.T) {
	repo := newFakeGoalsRepo()
	repo.goals[1] = &Goal{ID: 1, Status: StatusCompleted, TargetAmount: 1000}
	repo.goals[2] = &Goal{ID: 2, Status: StatusCancelled, TargetAmount: 1000}
	repo.nextID = 3

	svc := NewService(repo)
	if err := svc.Contribute(context.Background(), 1, 100); !errors.Is(err, ErrGoalNotActive) {
		t.Fatalf("expected ErrGoalNotActive, got %v", err)
	}
	if err := svc.Contribute(context.Background(), 2, 100); !errors.Is(err, ErrGoalNotActive) {
		t.Fatalf("expected ErrGoalNotActive, got %v", err)
	}
}

func TestContributeNonPositiveAmount(t *testing.T) {
	svc := NewService(newFakeGoalsRepo())
	if err := svc.Contribute(context.Background(), 1, 0); err == nil {
		t.Fatalf("expected error for zero amount")
	}
	if err := svc.Contribute(context.Background(), 1, -5); err == nil {
		t.Fatalf("expected error for negative amount")
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	repo := newFakeGoalsRepo()
	repo.goals[1] = &Goal{ID: 1, Status: StatusActive, TargetAmount: 1000}
	repo.nextID = 2

	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.UpdateStatus(ctx, 1, StatusCompleted); err != nil {
		t.Fatalf("active->completed: expected no error, got %v", err)
	}
	if err := svc.UpdateStatus(ctx, 1, StatusCancelled); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("completed->cancelled: expected ErrInvalidTransition, got %v", err)
	}
	if err := svc.UpdateStatus(ctx, 1, StatusCompleted); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("completed->completed: expected ErrInvalidTransition, got %v", err)
	}
	if err := svc.UpdateStatus(ctx, 1, StatusActive); err != nil {
		t.Fatalf("completed->active: expected no error, got %v", err)
	}
	if err := svc.UpdateStatus(ctx, 1, "archived"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestListByFamilyDisplayOrder(t *testing.T) {
	repo := newFakeGoalsRepo()
	repo.goals[1] = &Goal{ID: 1, FamilyID: 1, Status: StatusActive, TargetAmount: 100}
	repo.goals[2] = &Goal{ID: 2, FamilyID: 1, Status: StatusActive, TargetAmount: 100, TargetDate: date("2024-03-01")}
	repo.goals[3] = &Goal{ID: 3, FamilyID: 1, Status: StatusCompleted, TargetAmount: 100, TargetDate: date("2024-01-01")}
	repo.nextID = 4

	svc := NewService(repo)
	listed, err := svc.ListByFamily(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	wantOrder := []uint{2, 1, 3}
	if len(listed) != len(wantOrder) {
		t.Fatalf("expected %d goals, got %d", len(wantOrder), len(listed))
	}
	for i, want := range wantOrder {
		if listed[i].ID != want {
			t.Fatalf("position %d: expected goal %d, got %d", i, want, listed[i].ID)
		}
	}
}

func TestListByFamilyInsertionOrderTies(t *testing.T) {
	repo := newFakeGoalsRepo()
	shared := date("2024-06-01")
	repo.goals[1] = &Goal{ID: 1, FamilyID: 1, Status: StatusActive, TargetAmount: 100, TargetDate: shared}
	repo.goals[2] = &Goal{ID: 2, FamilyID: 1, Status: StatusActive, TargetAmount: 100, TargetDate: shared}
	repo.nextID = 3

	svc := NewService(repo)
	listed, err := svc.ListByFamily(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if listed[0].ID != 1 || listed[1].ID != 2 {
		t.Fatalf("expected insertion order on ties, got %d then %d", listed[0].ID, listed[1].ID)
	}
}

func TestProgress(t *testing.T) {
	half := Goal{TargetAmount: 1000, CurrentAmount: 500}
	if got := half.Progress(); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}

	over := Goal{TargetAmount: 1000, CurrentAmount: 2500}
	if got := over.Progress(); got != 1 {
		t.Fatalf("expected cap at 1, got %v", got)
	}

	zero := Goal{TargetAmount: 0, CurrentAmount: 500}
	if got := zero.Progress(); got != 0 {
		t.Fatalf("expected 0 for zero target, got %v", got)
	}
}

func TestUpdateMissingGoal(t *testing.T) {
	svc := NewService(newFakeGoalsRepo())

	name := "Renamed"
	affected, err := svc.Update(context.Background(), 99, UpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected 0 affected rows, got %d", affected)
	}
}
