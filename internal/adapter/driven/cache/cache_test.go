package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/diillson/lease-exit-go/internal/domain/entity"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	if _, found, err := c.Get(ctx, "missing"); found || err != nil {
		t.Fatalf("expected a clean miss, got found=%v err=%v", found, err)
	}

	if err := c.Set(ctx, "k", entity.Report{ID: "r1"}, time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, found, err := c.Get(ctx, "k")
	if err != nil || !found || got.ID != "r1" {
		t.Fatalf("expected cached report, got %+v found=%v err=%v", got, found, err)
	}

	if err := c.Set(ctx, "short", entity.Report{ID: "r2"}, 20*time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(50 * time.Millisecond)
	if _, found, _ := c.Get(ctx, "short"); found {
		t.Errorf("expected entry to expire")
	}

	if err := c.Set(ctx, "forever", entity.Report{ID: "r3"}, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, found, _ := c.Get(ctx, "forever"); !found {
		t.Errorf("expected zero ttl entry to persist")
	}
	if err := c.Close(); err != nil {
		t.Errorf("closing a process-local cache should be a no-op, got %v", err)
	}
}

func TestFileCache_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "reports.gob")

	first, err := NewFileCache(path)
	if err != nil {
		t.Fatalf("unexpected error opening a missing snapshot: %v", err)
	}
	report := entity.Report{
		ID:        "r1",
		LeaseName: "Civic",
		Scenarios: []entity.ScenarioRow{{Rank: 1, Label: "Return Vehicle", NetCost: "$2,361.67"}},
		Recommendation: &entity.RecommendationResult{
			BestNow: entity.ScenarioCost{Scenario: entity.ScenarioReturn, Cost: 2361.67},
		},
	}
	if err := first.Set(ctx, "k", report, time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := first.Set(ctx, "stale", entity.Report{ID: "old"}, time.Nanosecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(time.Millisecond)
	if err := first.Close(); err != nil {
		t.Fatalf("unexpected error saving snapshot: %v", err)
	}

	second, err := NewFileCache(path)
	if err != nil {
		t.Fatalf("unexpected error reloading snapshot: %v", err)
	}
	got, found, err := second.Get(ctx, "k")
	if err != nil || !found {
		t.Fatalf("expected report after reopen, found=%v err=%v", found, err)
	}
	if got.LeaseName != "Civic" || len(got.Scenarios) != 1 || got.Recommendation == nil ||
		got.Recommendation.BestNow.Scenario != entity.ScenarioReturn {
		t.Errorf("report did not round trip: %+v", got)
	}
	if _, found, _ := second.Get(ctx, "stale"); found {
		t.Errorf("expired entries should not be reloaded")
	}
}

func TestFileCache_CorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.gob")
	if err := os.WriteFile(path, []byte("not gob"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileCache(path); err == nil {
		t.Errorf("expected an error for a corrupt snapshot")
	}
}

func TestRedisCache_ClosedClient(t *testing.T) {
	c := NewRedisCache("127.0.0.1:0")
	if err := c.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	ctx := context.Background()
	if _, found, err := c.Get(ctx, "k"); err == nil || found {
		t.Errorf("expected an error from a closed client, got found=%v err=%v", found, err)
	}
	if err := c.Set(ctx, "k", entity.Report{ID: "r"}, time.Minute); err == nil {
		t.Errorf("expected an error from a closed client")
	}
}
