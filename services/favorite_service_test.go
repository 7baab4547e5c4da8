package services

import (
	"RestoFinder/utils"
	"context"
	"fmt"
	"math/rand"
	"slices"
	"sync"
	"testing"

	"github.com/pkg/errors"
)

func TestGetFavoritesNewUser(t *testing.T) {
	svc := NewFavoriteService(newCountingStore(), testLogger())

	favorites, err := svc.GetFavorites(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if favorites == nil || len(favorites) != 0 {
		t.Fatalf("expected empty list, got %#v", favorites)
	}
}

func TestAddFavoriteIsIdempotent(t *testing.T) {
	kv := newCountingStore()
	svc := NewFavoriteService(kv, testLogger())
	ctx := context.Background()

	first, err := svc.AddFavorite(ctx, "u1", "r1")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	second, err := svc.AddFavorite(ctx, "u1", "r1")
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if !slices.Equal(first, []string{"r1"}) || !slices.Equal(second, first) {
		t.Fatalf("expected [r1] twice, got %v then %v", first, second)
	}
	if kv.writes.Load() != 1 {
		t.Fatalf("repeated add must not rewrite storage, got %d writes", kv.writes.Load())
	}
}

func TestAddFavoriteAppendsInOrder(t *testing.T) {
	svc := NewFavoriteService(newCountingStore(), testLogger())
	ctx := context.Background()

	for _, id := range []string{"r3", "r1", "r2"} {
		if _, err := svc.AddFavorite(ctx, "u1", id); err != nil {
			t.Fatalf("add %s failed: %v", id, err)
		}
	}

	favorites, _ := svc.GetFavorites(ctx, "u1")
	if !slices.Equal(favorites, []string{"r3", "r1", "r2"}) {
		t.Fatalf("expected insertion order, got %v", favorites)
	}
}

func TestRemoveFavoritePreservesOrder(t *testing.T) {
	svc := NewFavoriteService(newCountingStore(), testLogger())
	ctx := context.Background()

	for _, id := range []string{"r1", "r2", "r3", "r4"} {
		if _, err := svc.AddFavorite(ctx, "u1", id); err != nil {
			t.Fatalf("add %s failed: %v", id, err)
		}
	}

	favorites, err := svc.RemoveFavorite(ctx, "u1", "r2")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if !slices.Equal(favorites, []string{"r1", "r3", "r4"}) {
		t.Fatalf("expected [r1 r3 r4], got %v", favorites)
	}

	stored, _ := svc.GetFavorites(ctx, "u1")
	if !slices.Equal(stored, favorites) {
		t.Fatalf("stored list %v differs from returned %v", stored, favorites)
	}
}

func TestRemoveFavoriteAbsentIsNoop(t *testing.T) {
	kv := newCountingStore()
	svc := NewFavoriteService(kv, testLogger())
	ctx := context.Background()

	favorites, err := svc.RemoveFavorite(ctx, "u1", "r1")
	if err != nil {
		t.Fatalf("remove on empty list failed: %v", err)
	}
	if len(favorites) != 0 {
		t.Fatalf("expected empty list, got %v", favorites)
	}

	if _, err := svc.AddFavorite(ctx, "u1", "r2"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	favorites, err = svc.RemoveFavorite(ctx, "u1", "r1")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if !slices.Equal(favorites, []string{"r2"}) {
		t.Fatalf("expected [r2], got %v", favorites)
	}
	if kv.writes.Load() != 1 {
		t.Fatalf("no-op removes must not write, got %d writes", kv.writes.Load())
	}
}

func TestFavoritesNeverContainDuplicates(t *testing.T) {
	svc := NewFavoriteService(newCountingStore(), testLogger())
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))
	ids := []string{"r1", "r2", "r3", "r4", "r5"}

	for i := 0; i < 300; i++ {
		id := ids[rng.Intn(len(ids))]
		var favorites []string
		var err error
		if rng.Intn(3) == 0 {
			favorites, err = svc.RemoveFavorite(ctx, "u1", id)
		} else {
			favorites, err = svc.AddFavorite(ctx, "u1", id)
		}
		if err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}

		seen := make(map[string]bool)
		for _, fav := range favorites {
			if seen[fav] {
				t.Fatalf("step %d: duplicate %s in %v", i, fav, favorites)
			}
			seen[fav] = true
		}
	}
}

func TestFavoritesAreScopedPerUser(t *testing.T) {
	svc := NewFavoriteService(newCountingStore(), testLogger())
	ctx := context.Background()

	if _, err := svc.AddFavorite(ctx, "alice", "r1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	bob, err := svc.GetFavorites(ctx, "bob")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(bob) != 0 {
		t.Fatalf("expected bob to have no favorites, got %v", bob)
	}
}

func TestConcurrentUsersDoNotInterfere(t *testing.T) {
	svc := NewFavoriteService(newCountingStore(), testLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	for u := 0; u < 10; u++ {
		wg.Add(1)
		go func(u int) {
			defer wg.Done()
			user := fmt.Sprintf("user-%d", u)
			for _, id := range []string{"r1", "r2", "r3"} {
				if _, err := svc.AddFavorite(ctx, user, id); err != nil {
					t.Errorf("add failed: %v", err)
				}
			}
		}(u)
	}
	wg.Wait()

	for u := 0; u < 10; u++ {
		favorites, _ := svc.GetFavorites(ctx, fmt.Sprintf("user-%d", u))
		if !slices.Equal(favorites, []string{"r1", "r2", "r3"}) {
			t.Fatalf("user-%d: unexpected favorites %v", u, favorites)
		}
	}
}

func TestFavoriteValidation(t *testing.T) {
	kv := newCountingStore()
	svc := NewFavoriteService(kv, testLogger())
	ctx := context.Background()

	if _, err := svc.AddFavorite(ctx, "u1", ""); !errors.Is(err, utils.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
	if _, err := svc.RemoveFavorite(ctx, "u1", ""); !errors.Is(err, utils.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
	if kv.writes.Load() != 0 {
		t.Fatal("validation failures must not write")
	}
}

func TestFavoritesStorageFailure(t *testing.T) {
	svc := NewFavoriteService(failingStore{}, testLogger())
	ctx := context.Background()

	if _, err := svc.GetFavorites(ctx, "u1"); !errors.Is(err, utils.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
	if _, err := svc.AddFavorite(ctx, "u1", "r1"); !errors.Is(err, utils.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
	if _, err := svc.RemoveFavorite(ctx, "u1", "r1"); !errors.Is(err, utils.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}
