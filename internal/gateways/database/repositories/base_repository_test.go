package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/ellavondegurechaff/recipe-store/internal/domain/recipes"
)

func TestBaseRepository_HandleErrorWithID(t *testing.T) {
	br := NewBaseRepository(nil, 0)
	boom := errors.New("deadlock detected")

	tests := []struct {
		name         string
		err          error
		wantNil      bool
		wantNotFound bool
		wantWrapped  error
	}{
		{name: "nil", err: nil, wantNil: true},
		{name: "no rows", err: sql.ErrNoRows, wantNotFound: true},
		{name: "existing not found", err: &NotFoundError{Entity: "recipe", ID: 3}, wantNotFound: true},
		{name: "driver error", err: boom, wantWrapped: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := br.HandleErrorWithID("get", "recipe", 3, tt.err)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("HandleErrorWithID() = %v, want nil", got)
				}
				return
			}
			if errors.Is(got, recipes.ErrNotFound) != tt.wantNotFound {
				t.Errorf("errors.Is(%v, ErrNotFound) = %v, want %v", got, !tt.wantNotFound, tt.wantNotFound)
			}
			if tt.wantWrapped != nil {
				var re *RepositoryError
				if !errors.As(got, &re) || !errors.Is(got, tt.wantWrapped) {
					t.Errorf("HandleErrorWithID() = %v, want RepositoryError wrapping %v", got, tt.wantWrapped)
				}
			}
		})
	}

	if br.defaultTimeout != DefaultQueryTimeout {
		t.Errorf("defaultTimeout = %v, want %v", br.defaultTimeout, DefaultQueryTimeout)
	}
}
