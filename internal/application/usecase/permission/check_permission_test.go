package permission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/finance-hub/internal/domain/entity"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
)

type fakePermissionRepo struct {
	grant     *entity.PermissionGrant
	err       error
	findCalls int
}

func (r *fakePermissionRepo) Save(ctx context.Context, grant *entity.PermissionGrant) error {
	return nil
}

func (r *fakePermissionRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PermissionGrant, error) {
	r.findCalls++
	if r.err != nil {
		return nil, r.err
	}
	if r.grant == nil {
		return nil, domainerror.ErrPermissionGrantNotFound
	}
	return r.grant, nil
}

type fakePermissionCache struct {
	cached   []string
	found    bool
	getErr   error
	setErr   error
	setCalls int
	lastTTL  time.Duration
}

func (c *fakePermissionCache) Get(ctx context.Context, userID uuid.UUID) ([]string, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.cached, c.found, nil
}

func (c *fakePermissionCache) Set(ctx context.Context, userID uuid.UUID, permissions []string, ttl time.Duration) error {
	c.setCalls++
	c.lastTTL = ttl
	if c.setErr != nil {
		return c.setErr
	}
	c.cached = permissions
	c.found = true
	return nil
}

func (c *fakePermissionCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	c.cached = nil
	c.found = false
	return nil
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		granted  []string
		required string
		want     bool
	}{
		{"exact match", []string{"finance:budgets:create"}, "finance:budgets:create", true},
		{"global wildcard", []string{"*"}, "finance:permissions:grant", true},
		{"resource wildcard", []string{"finance:budgets:*"}, "finance:budgets:delete", true},
		{"resource wildcard does not cross resources", []string{"finance:budgets:*"}, "finance:transactions:delete", false},
		{"unrelated grant", []string{"finance:categories:create"}, "finance:budgets:create", false},
		{"empty grant list", nil, "finance:budgets:create", false},
		{"wildcard needs separator", []string{"finance:budget:*"}, "finance:budgets:create", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matches(tt.granted, tt.required); got != tt.want {
				t.Errorf("matches(%v, %q) = %v, want %v", tt.granted, tt.required, got, tt.want)
			}
		})
	}
}

func TestCheckPermissionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	input := CheckPermissionInput{UserID: userID, Resource: "budgets", Action: "create"}

	t.Run("cache hit short-circuits the store", func(t *testing.T) {
		repo := &fakePermissionRepo{}
		cache := &fakePermissionCache{cached: []string{"finance:budgets:create"}, found: true}
		uc := NewCheckPermissionUseCase(repo, cache, time.Minute)

		allowed, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed {
			t.Error("expected access to be allowed")
		}
		if repo.findCalls != 0 {
			t.Errorf("expected no store lookups, got %d", repo.findCalls)
		}
	})

	t.Run("cache error falls through to the store", func(t *testing.T) {
		repo := &fakePermissionRepo{grant: &entity.PermissionGrant{
			UserID:      userID,
			Permissions: []string{"finance:budgets:*"},
		}}
		cache := &fakePermissionCache{getErr: errors.New("redis unavailable")}
		uc := NewCheckPermissionUseCase(repo, cache, time.Minute)

		allowed, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed {
			t.Error("expected access to be allowed via the store")
		}
		if repo.findCalls != 1 {
			t.Errorf("expected 1 store lookup, got %d", repo.findCalls)
		}
	})

	t.Run("missing grant denies without error", func(t *testing.T) {
		uc := NewCheckPermissionUseCase(&fakePermissionRepo{}, nil, time.Minute)

		allowed, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if allowed {
			t.Error("expected access to be denied for a user without a grant")
		}
	})

	t.Run("store error denies with error", func(t *testing.T) {
		repo := &fakePermissionRepo{err: errors.New("connection reset")}
		uc := NewCheckPermissionUseCase(repo, nil, time.Minute)

		allowed, err := uc.Execute(ctx, input)
		if err == nil {
			t.Fatal("expected error")
		}
		if allowed {
			t.Error("expected access to be denied on store failure")
		}
	})

	t.Run("store read populates the cache with the configured TTL", func(t *testing.T) {
		repo := &fakePermissionRepo{grant: &entity.PermissionGrant{
			UserID:      userID,
			Permissions: []string{"finance:budgets:create"},
		}}
		cache := &fakePermissionCache{}
		uc := NewCheckPermissionUseCase(repo, cache, 5*time.Minute)

		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cache.setCalls != 1 {
			t.Fatalf("expected 1 cache write, got %d", cache.setCalls)
		}
		if cache.lastTTL != 5*time.Minute {
			t.Errorf("expected TTL 5m, got %s", cache.lastTTL)
		}

		// The second check is served from the cache.
		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.findCalls != 1 {
			t.Errorf("expected a single store lookup across both checks, got %d", repo.findCalls)
		}
	})

	t.Run("cache write failure does not fail the check", func(t *testing.T) {
		repo := &fakePermissionRepo{grant: &entity.PermissionGrant{
			UserID:      userID,
			Permissions: []string{"finance:budgets:create"},
		}}
		cache := &fakePermissionCache{setErr: errors.New("redis unavailable")}
		uc := NewCheckPermissionUseCase(repo, cache, time.Minute)

		allowed, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed {
			t.Error("expected access to be allowed despite cache write failure")
		}
	})
}
