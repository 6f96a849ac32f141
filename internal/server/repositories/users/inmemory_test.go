package users

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/google/go-cmp/cmp"
)

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	want := &models.User{ID: "id-1", UserName: "alice", HashedPassword: "h"}

	created, err := repo.Create(ctx, want)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := repo.GetUserByName(ctx, "alice")
	if err != nil {
		t.Fatalf("GetUserByName error: %v", err)
	}
	if diff := cmp.Diff(created, got); diff != "" {
		t.Fatalf("record mismatch (-created +got):\n%s", diff)
	}
}

func TestInMemoryRepository_CreateDuplicate(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, &models.User{ID: "1", UserName: "bob"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	_, err := repo.Create(ctx, &models.User{ID: "2", UserName: "bob"})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("expected ErrorAlreadyExists, got %v", err)
	}
}

func TestInMemoryRepository_GetAbsent(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.GetUserByName(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestInMemoryRepository_SetToken(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, &models.User{ID: "1", UserName: "carol"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := repo.SetToken(ctx, "carol", "tok-1"); err != nil {
		t.Fatalf("SetToken error: %v", err)
	}
	// last write wins
	if err := repo.SetToken(ctx, "carol", "tok-2"); err != nil {
		t.Fatalf("SetToken error: %v", err)
	}

	got, err := repo.GetUserByName(ctx, "carol")
	if err != nil {
		t.Fatalf("GetUserByName error: %v", err)
	}
	if got.CurrentToken != "tok-2" {
		t.Fatalf("expected CurrentToken=tok-2, got %q", got.CurrentToken)
	}
}

func TestInMemoryRepository_SetTokenAbsentDoesNotCreate(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	err := repo.SetToken(ctx, "ghost", "tok")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}

	if _, err := repo.GetUserByName(ctx, "ghost"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("SetToken must not create records, got %v", err)
	}
}

func TestInMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, &models.User{ID: "1", UserName: "dave", HashedPassword: "h"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := repo.GetUserByName(ctx, "dave")
	if err != nil {
		t.Fatalf("GetUserByName error: %v", err)
	}
	got.HashedPassword = "mutated"

	again, err := repo.GetUserByName(ctx, "dave")
	if err != nil {
		t.Fatalf("GetUserByName error: %v", err)
	}
	if again.HashedPassword != "h" {
		t.Fatalf("stored record was mutated through the returned pointer")
	}
}

func TestInMemoryRepository_ConcurrentCreateSameName(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	const n = 32
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Create(ctx, &models.User{ID: "1", UserName: "race"})
		}(i)
	}
	wg.Wait()

	var successes, duplicates int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, common.ErrorAlreadyExists):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if successes != 1 || duplicates != n-1 {
		t.Fatalf("expected exactly 1 success and %d duplicates, got %d and %d", n-1, successes, duplicates)
	}
}
