// Package ingredient resolves free-text ingredient names to the shared
// ingredient rows recipes link to.
package ingredient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/matt-dz/recipecenter/internal/database"
)

var ErrEmptyName = errors.New("ingredient name is empty")

// Normalize trims the name and collapses inner whitespace to single spaces.
// Case is kept; lookups compare case-insensitively, so a name reads back
// with the spelling first stored for it: "  carrots " saved after
// "Carrots" reads back as "Carrots".
func Normalize(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// Resolve returns the id of the ingredient called name, creating it when it
// does not exist yet. q should be bound to the caller's transaction so the
// new row commits or rolls back with the recipe that references it.
func Resolve(ctx context.Context, q database.Querier, name string) (int64, error) {
	name = Normalize(name)
	if name == "" {
		return 0, ErrEmptyName
	}

	id, err := q.GetIngredientIDByName(ctx, name)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("looking up ingredient %q: %w", name, err)
	}

	id, err = q.CreateIngredient(ctx, name)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("creating ingredient %q: %w", name, err)
	}

	// Another transaction inserted the same name between the lookup and
	// the insert.
	id, err = q.GetIngredientIDByName(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("re-reading ingredient %q: %w", name, err)
	}
	return id, nil
}

// Lookup returns the id of the ingredient called name, or 0 when there is
// none. It never inserts.
func Lookup(ctx context.Context, q database.Querier, name string) (int64, error) {
	name = Normalize(name)
	if name == "" {
		return 0, nil
	}

	id, err := q.GetIngredientIDByName(ctx, name)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("looking up ingredient %q: %w", name, err)
	}
	return id, nil
}
