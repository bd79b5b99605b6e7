package items

import (
	"context"
	"testing"
)

type fakeItemRepo struct {
	items  map[uint]*Item
	nextID uint
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uint]*Item), nextID: 1}
}

func (r *fakeItemRepo) Create(ctx context.Context, item *Item) error {
	item.ID = r.nextID
	r.nextID++
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *fakeItemRepo) List(ctx context.Context) ([]Item, error) {
	var listed []Item
	for id := uint(1); id < r.nextID; id++ {
		if item, ok := r.items[id]; ok {
			listed = append(listed, *item)
		}
	}
	return listed, nil
}

func (r *fakeItemRepo) Update(ctx context.Context, id uint, name string) (int64, error) {
	item, ok := r.items[id]
	if !ok {
		return 0, nil
	}
	item.Name = name
	return 1, nil
}

func (r *fakeItemRepo) Delete(ctx context.Context, id uint) (int64, error) {
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func TestAddTrimsAndRequiresName(t *testing.T) {
	svc := NewService(newFakeItemRepo())
	ctx := context.Background()

	item, err := svc.Add(ctx, "  Milk  ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.ID != 1 || item.Name != "Milk" {
		t.Fatalf("expected trimmed item with id 1, got %+v", item)
	}

	if _, err := svc.Add(ctx, "   "); err == nil {
		t.Fatalf("expected error for blank name")
	}
}

func TestUpdateAndDeleteReportAffectedRows(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "Bread"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	affected, err := svc.Update(ctx, 1, "Rye bread")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 affected row, got %d", affected)
	}

	if affected, _ := svc.Update(ctx, 99, "Nothing"); affected != 0 {
		t.Fatalf("expected 0 affected rows for missing item, got %d", affected)
	}

	if affected, _ := svc.Delete(ctx, 1); affected != 1 {
		t.Fatalf("expected 1 affected row, got %d", affected)
	}
	listed, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(listed))
	}
}
