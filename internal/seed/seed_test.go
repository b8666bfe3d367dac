package seed

import (
	"context"
	"testing"

	"github.com/sweethomebakery/backend/internal/repository/memory"
	"github.com/sweethomebakery/backend/pkg/logger"
)

func TestRun(t *testing.T) {
	store := memory.NewStore()
	log := logger.New("error")
	ctx := context.Background()

	if err := Run(ctx, store, log); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count, err := store.CountProducts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 seeded products, got %d", count)
	}

	reviews, total, err := store.ListReviews(ctx, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 4 {
		t.Errorf("expected 4 seeded reviews, got %d", total)
	}
	// ids are assigned sequentially starting at 1
	for i, r := range reviews {
		if r.ID != int64(i+1) {
			t.Errorf("review %d: expected id %d, got %d", i, i+1, r.ID)
		}
	}

	info, err := store.GetBusinessInfo(ctx)
	if err != nil {
		t.Fatalf("expected business data to be seeded, got %v", err)
	}
	if info.Name != "Sweet Home Bakery" {
		t.Errorf("unexpected business name: %s", info.Name)
	}
}

func TestRun_SecondRunIsNoOp(t *testing.T) {
	store := memory.NewStore()
	log := logger.New("error")
	ctx := context.Background()

	if err := Run(ctx, store, log); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Run(ctx, store, log); err != nil {
		t.Fatalf("unexpected error on second run: %v", err)
	}

	count, err := store.CountProducts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected product count unchanged at 3, got %d", count)
	}

	_, total, err := store.ListReviews(ctx, 100, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 4 {
		t.Errorf("expected review count unchanged at 4, got %d", total)
	}
}
