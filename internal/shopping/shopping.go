// Package shopping manages each user's shopping list: the recipes queued
// for shopping and which of their ingredients have been checked off.
package shopping

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/matt-dz/recipecenter/internal/database"
	"github.com/matt-dz/recipecenter/internal/ingredient"
)

// Item is one ingredient of a queued recipe.
type Item struct {
	RecipeID       int64  `json:"recipe_id"`
	RecipeName     string `json:"recipe_name"`
	IngredientID   int64  `json:"ingredient_id"`
	IngredientName string `json:"ingredient_name"`
	Quantity       string `json:"quantity"`
	Checked        bool   `json:"checked"`
}

type Service struct {
	db     *database.Database
	logger *slog.Logger
}

func NewService(db *database.Database, logger *slog.Logger) *Service {
	return &Service{
		db:     db,
		logger: logger,
	}
}

// ListForUser returns the ids of the recipes queued by userID.
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]int64, error) {
	ids, err := s.db.ListShoppingRecipeIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing shopping list of user %d: %w", userID, err)
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

// Add queues the recipe. Adding a queued recipe again changes nothing.
func (s *Service) Add(ctx context.Context, userID, recipeID int64) error {
	err := s.db.CreateShoppingEntry(ctx, database.CreateShoppingEntryParams{
		UserID:   userID,
		RecipeID: recipeID,
	})
	if err != nil {
		return fmt.Errorf("adding recipe %d to shopping list: %w", recipeID, database.ClassifyError(err))
	}
	return nil
}

// Remove drops the recipe from the list. Removing a recipe that is not
// queued changes nothing.
func (s *Service) Remove(ctx context.Context, userID, recipeID int64) error {
	err := s.db.DeleteShoppingEntry(ctx, database.DeleteShoppingEntryParams{
		UserID:   userID,
		RecipeID: recipeID,
	})
	if err != nil {
		return fmt.Errorf("removing recipe %d from shopping list: %w", recipeID, err)
	}
	return nil
}

func (s *Service) ClearForUser(ctx context.Context, userID int64) error {
	if err := s.db.DeleteShoppingEntriesForUser(ctx, userID); err != nil {
		return fmt.Errorf("clearing shopping list of user %d: %w", userID, err)
	}
	return nil
}

func (s *Service) ClearIngredientChecks(ctx context.Context, userID int64) error {
	if err := s.db.DeleteIngredientChecksForUser(ctx, userID); err != nil {
		return fmt.Errorf("clearing ingredient checks of user %d: %w", userID, err)
	}
	return nil
}

// Reset clears both the queued recipes and the check state of userID in
// one transaction.
func (s *Service) Reset(ctx context.Context, userID int64) error {
	err := s.db.InTx(ctx, func(q database.Querier) error {
		if err := q.DeleteIngredientChecksForUser(ctx, userID); err != nil {
			return fmt.Errorf("clearing ingredient checks: %w", err)
		}
		if err := q.DeleteShoppingEntriesForUser(ctx, userID); err != nil {
			return fmt.Errorf("clearing shopping entries: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("resetting shopping list of user %d: %w", userID, err)
	}

	s.logger.DebugContext(ctx, "reset shopping list", slog.Int64("user_id", userID))
	return nil
}

// SetIngredientChecked records the check state in a single upsert.
func (s *Service) SetIngredientChecked(ctx context.Context, userID, recipeID, ingredientID int64, checked bool) error {
	err := s.db.UpsertIngredientCheck(ctx, database.UpsertIngredientCheckParams{
		UserID:       userID,
		RecipeID:     recipeID,
		IngredientID: ingredientID,
		IsChecked:    checked,
	})
	if err != nil {
		return fmt.Errorf("setting ingredient %d check: %w", ingredientID, database.ClassifyError(err))
	}
	return nil
}

// IsIngredientChecked reports false when no check state was ever stored.
func (s *Service) IsIngredientChecked(ctx context.Context, userID, recipeID, ingredientID int64) (bool, error) {
	checked, err := s.db.GetIngredientCheck(ctx, database.GetIngredientCheckParams{
		UserID:       userID,
		RecipeID:     recipeID,
		IngredientID: ingredientID,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("getting ingredient %d check: %w", ingredientID, err)
	}
	return checked, nil
}

// LookupIngredientID returns 0 when no ingredient has that name.
func (s *Service) LookupIngredientID(ctx context.Context, name string) (int64, error) {
	return ingredient.Lookup(ctx, s.db, name)
}

// Items returns every ingredient of every queued recipe with its check
// state.
func (s *Service) Items(ctx context.Context, userID int64) ([]Item, error) {
	rows, err := s.db.ListShoppingItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing shopping items of user %d: %w", userID, err)
	}

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, Item{
			RecipeID:       row.RecipeID,
			RecipeName:     row.RecipeName,
			IngredientID:   row.IngredientID,
			IngredientName: row.IngredientName,
			Quantity:       row.Quantity.String,
			Checked:        row.IsChecked,
		})
	}
	return items, nil
}
