package inventory

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// testRepo is a map-backed Repository for service tests.
type testRepo struct {
	byID map[string]Item
}

func newTestRepo() *testRepo {
	return &testRepo{byID: make(map[string]Item)}
}

func (r *testRepo) Create(_ context.Context, it Item) error {
	r.byID[it.ID] = it
	return nil
}

func (r *testRepo) Update(_ context.Context, it Item) error {
	if _, ok := r.byID[it.ID]; !ok {
		return errors.New("not found")
	}
	r.byID[it.ID] = it
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Item, error) {
	it, ok := r.byID[id]
	if !ok {
		return Item{}, errors.New("not found")
	}
	return it, nil
}

func (r *testRepo) List(_ context.Context, category Category) ([]Item, error) {
	out := make([]Item, 0)
	for _, it := range r.byID {
		if category != "" && it.Category != category {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (r *testRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errors.New("not found")
	}
	delete(r.byID, id)
	return nil
}

func newTestService(repo Repository) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(newTestRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"missing name", CreateInput{Category: CategoryFood, Quantity: 1}},
		{"bad category", CreateInput{Name: "hay", Category: "furniture", Quantity: 1}},
		{"negative quantity", CreateInput{Name: "hay", Category: CategoryFood, Quantity: -1}},
		{"negative cost", CreateInput{Name: "hay", Category: CategoryFood, Cost: -5}},
		{"min >= max", CreateInput{Name: "hay", Category: CategoryFood, MinThreshold: 50, MaxThreshold: 50}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Create = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestCreateStampsLastRestocked(t *testing.T) {
	svc := newTestService(newTestRepo())
	ctx := context.Background()

	withStock, err := svc.Create(ctx, CreateInput{Name: "hay", Category: CategoryFood, Quantity: 5})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if withStock.LastRestocked == nil {
		t.Error("positive initial quantity should stamp lastRestocked")
	}

	empty, err := svc.Create(ctx, CreateInput{Name: "syringes", Category: CategoryMedicine})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if empty.LastRestocked != nil {
		t.Error("zero initial quantity should not stamp lastRestocked")
	}
}

func TestRestockIsAdditive(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	it, err := svc.Create(ctx, CreateInput{Name: "hay", Category: CategoryFood, Quantity: 10, Unit: "kg"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, _, err := svc.Restock(ctx, it.ID, 7); err != nil {
		t.Fatalf("first restock: %v", err)
	}
	got, msg, err := svc.Restock(ctx, it.ID, 3)
	if err != nil {
		t.Fatalf("second restock: %v", err)
	}

	if got.Quantity != 20 {
		t.Errorf("quantity after 10+7+3 = %d, want 20", got.Quantity)
	}
	if !strings.Contains(msg, "New total: 20 kg") {
		t.Errorf("message %q should carry the new total", msg)
	}
	if got.LastRestocked == nil {
		t.Error("restock should stamp lastRestocked")
	}
}

func TestRestockRejectsNonPositive(t *testing.T) {
	svc := newTestService(newTestRepo())
	ctx := context.Background()

	it, _ := svc.Create(ctx, CreateInput{Name: "hay", Category: CategoryFood, Quantity: 10})

	for _, qty := range []int{0, -5} {
		if _, _, err := svc.Restock(ctx, it.ID, qty); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("Restock(%d) = %v, want ErrInvalidQuantity", qty, err)
		}
	}

	// invalid quantity beats missing item: no lookup happens
	if _, _, err := svc.Restock(ctx, "missing", 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("Restock(missing, 0) = %v, want ErrInvalidQuantity", err)
	}
	if _, _, err := svc.Restock(ctx, "missing", 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("Restock(missing, 5) = %v, want ErrNotFound", err)
	}
}

func TestListDerivedFilters(t *testing.T) {
	svc := newTestService(newTestRepo())
	ctx := context.Background()

	past := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.Create(ctx, CreateInput{Name: "low", Category: CategoryFood, Quantity: 2, MinThreshold: 5}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{Name: "fine", Category: CategoryFood, Quantity: 50, MinThreshold: 5}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{Name: "stale", Category: CategoryMedicine, Quantity: 50, MinThreshold: 5, ExpiryDate: &past}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	low, err := svc.LowStock(ctx)
	if err != nil {
		t.Fatalf("LowStock: %v", err)
	}
	if len(low) != 1 || low[0].Name != "low" {
		t.Errorf("LowStock = %+v, want only the low item", low)
	}

	expired := true
	got, err := svc.List(ctx, ListFilter{Expired: &expired})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Name != "stale" {
		t.Errorf("List(expired) = %+v, want only the stale item", got)
	}
}
