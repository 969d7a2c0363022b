package request

import (
	"errors"
	"reflect"
	"testing"

	"github.com/DSTX70/teamhub-search/internal/domain"
	"github.com/DSTX70/teamhub-search/internal/domain/search/entity"
	"github.com/DSTX70/teamhub-search/internal/domain/search/scope"
)

func TestNew_Defaults(t *testing.T) {
	r, err := New("hello", 0, 0, "", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Query() != "hello" {
		t.Errorf("Query() = %q", r.Query())
	}
	if r.Limit() != DefaultLimit {
		t.Errorf("Limit() = %d, want %d", r.Limit(), DefaultLimit)
	}
	if r.Offset() != 0 {
		t.Errorf("Offset() = %d", r.Offset())
	}
	if !r.Scope().IsGlobal() {
		t.Errorf("Scope() = %q, want GLOBAL (default)", r.Scope())
	}
	if len(r.Types()) != 0 {
		t.Errorf("Types() = %v, want empty (all types)", r.Types())
	}
}

func TestNew_TrimsQuery(t *testing.T) {
	r, err := New("  hello world  ", 0, 0, scope.Global, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Query() != "hello world" {
		t.Errorf("Query() = %q", r.Query())
	}
}

func TestNew_QueryTooShort(t *testing.T) {
	for _, q := range []string{"", "a", " x ", "  "} {
		_, err := New(q, 0, 0, scope.Global, "", nil)
		if !errors.Is(err, domain.ErrQueryTooShort) {
			t.Errorf("New(%q) error = %v, want ErrQueryTooShort", q, err)
		}
	}
}

func TestNew_TwoCharQueryAccepted(t *testing.T) {
	if _, err := New("go", 0, 0, scope.Global, "", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNew_MultibyteQueryLength(t *testing.T) {
	// Two runes, more than two bytes.
	if _, err := New("日本", 0, 0, scope.Global, "", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNew_LimitClamping(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"negative", -1, DefaultLimit},
		{"zero", 0, DefaultLimit},
		{"normal", 10, 10},
		{"over max", 500, MaxLimit},
		{"exactly max", MaxLimit, MaxLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New("query", tt.limit, 0, scope.Global, "", nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Limit() != tt.wantLimit {
				t.Errorf("Limit() = %d, want %d", r.Limit(), tt.wantLimit)
			}
		})
	}
}

func TestNew_NegativeOffsetClamped(t *testing.T) {
	r, err := New("query", 0, -5, scope.Global, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Offset() != 0 {
		t.Errorf("Offset() = %d, want 0", r.Offset())
	}
}

func TestNew_InvalidScope(t *testing.T) {
	_, err := New("query", 0, 0, "TEAM", "t1", nil)
	if !errors.Is(err, domain.ErrInvalidScope) {
		t.Errorf("error = %v, want ErrInvalidScope", err)
	}
}

func TestNew_ScopedWithoutOwner(t *testing.T) {
	for _, s := range []scope.Scope{scope.BU, scope.Brand, scope.Product, scope.Project} {
		_, err := New("query", 0, 0, s, "", nil)
		if !errors.Is(err, domain.ErrOwnerRequired) {
			t.Errorf("scope %s: error = %v, want ErrOwnerRequired", s, err)
		}
	}
}

func TestNew_GlobalIgnoresOwner(t *testing.T) {
	r, err := New("query", 0, 0, scope.Global, "brand-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.OwnerID() != "brand-1" {
		t.Errorf("OwnerID() = %q", r.OwnerID())
	}
}

func TestNew_UnknownEntityType(t *testing.T) {
	_, err := New("query", 0, 0, scope.Global, "", []entity.Type{"pod"})
	if !errors.Is(err, domain.ErrUnknownEntityType) {
		t.Errorf("error = %v, want ErrUnknownEntityType", err)
	}
}

func TestNew_TypesDedupedInCanonicalOrder(t *testing.T) {
	r, err := New("query", 0, 0, scope.Global, "", []entity.Type{
		entity.Task, entity.Brand, entity.Task, entity.Agent,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []entity.Type{entity.Agent, entity.Brand, entity.Task}
	if !reflect.DeepEqual(r.Types(), want) {
		t.Errorf("Types() = %v, want %v", r.Types(), want)
	}
}
