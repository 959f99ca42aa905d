package recipe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/matt-dz/recipecenter/internal/database"
	"github.com/matt-dz/recipecenter/internal/ingredient"
)

type Repository struct {
	db     *database.Database
	logger *slog.Logger
}

func NewRepository(db *database.Database, logger *slog.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// LoadAll returns every recipe with its ingredients and shared users.
func (r *Repository) LoadAll(ctx context.Context) ([]Recipe, error) {
	rows, err := r.db.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	return r.hydrate(ctx, rows)
}

// LoadForUser returns the recipes linked to userID.
func (r *Repository) LoadForUser(ctx context.Context, userID int64) ([]Recipe, error) {
	rows, err := r.db.ListRecipesForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing recipes for user %d: %w", userID, err)
	}
	return r.hydrate(ctx, rows)
}

func (r *Repository) Get(ctx context.Context, recipeID int64) (Recipe, bool, error) {
	row, err := r.db.GetRecipe(ctx, recipeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return Recipe{}, false, nil
	}
	if err != nil {
		return Recipe{}, false, fmt.Errorf("getting recipe %d: %w", recipeID, err)
	}

	recipes, err := r.hydrate(ctx, []database.Recipe{row})
	if err != nil {
		return Recipe{}, false, err
	}
	return recipes[0], true, nil
}

// hydrate attaches ingredients and shared usernames to rows using one
// query per table for the whole batch.
func (r *Repository) hydrate(ctx context.Context, rows []database.Recipe) ([]Recipe, error) {
	recipes := make([]Recipe, 0, len(rows))
	if len(rows) == 0 {
		return recipes, nil
	}

	ids := make([]int64, len(rows))
	for i, row := range rows {
		ids[i] = row.RecipeID
	}

	ingredientRows, err := r.db.ListRecipeIngredients(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("listing recipe ingredients: %w", err)
	}
	ingredients := make(map[int64][]Ingredient, len(rows))
	for _, row := range ingredientRows {
		ingredients[row.RecipeID] = append(ingredients[row.RecipeID], Ingredient{
			ID:       row.IngredientID,
			Quantity: row.Quantity.String,
			Name:     row.IngredientName,
		})
	}

	userRows, err := r.db.ListRecipeUsers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("listing recipe users: %w", err)
	}
	users := make(map[int64][]string, len(rows))
	for _, row := range userRows {
		users[row.RecipeID] = append(users[row.RecipeID], row.Username)
	}

	for _, row := range rows {
		rec := fromRow(row)
		if ings, ok := ingredients[row.RecipeID]; ok {
			rec.Ingredients = ings
		}
		if names, ok := users[row.RecipeID]; ok {
			rec.SharedUsers = names
		}
		recipes = append(recipes, rec)
	}
	return recipes, nil
}

// Save stores rec and its ingredient links in one transaction and returns
// the new recipe id.
func (r *Repository) Save(ctx context.Context, rec Recipe) (int64, error) {
	if err := rec.Validate(); err != nil {
		return 0, err
	}

	var id int64
	err := r.db.InTx(ctx, func(q database.Querier) error {
		var err error
		id, err = insert(ctx, q, rec)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("saving recipe: %w", err)
	}

	r.logger.DebugContext(ctx, "saved recipe", slog.Int64("recipe_id", id))
	return id, nil
}

// SaveForUser stores rec and links it to userID in the same transaction.
func (r *Repository) SaveForUser(ctx context.Context, userID int64, rec Recipe) (int64, error) {
	if err := rec.Validate(); err != nil {
		return 0, err
	}

	var id int64
	err := r.db.InTx(ctx, func(q database.Querier) error {
		var err error
		id, err = insert(ctx, q, rec)
		if err != nil {
			return err
		}
		if err := q.CreateUserRecipe(ctx, database.CreateUserRecipeParams{
			UserID:   userID,
			RecipeID: id,
		}); err != nil {
			return fmt.Errorf("linking recipe to user %d: %w", userID, classify(err))
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("saving recipe: %w", err)
	}

	r.logger.DebugContext(ctx, "saved recipe", slog.Int64("recipe_id", id), slog.Int64("user_id", userID))
	return id, nil
}

// Update overwrites the recipe identified by rec.ID and replaces its
// ingredient list.
func (r *Repository) Update(ctx context.Context, rec Recipe) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	err := r.db.InTx(ctx, func(q database.Querier) error {
		n, err := q.UpdateRecipe(ctx, database.UpdateRecipeParams{
			RecipeName:   rec.Name,
			RecipeImage:  text(rec.image()),
			RecipeSource: text(rec.Source),
			RecipeUrl:    text(rec.URL),
			Description:  text(rec.Description),
			PrepTime:     int4(rec.PrepTime),
			CookTime:     int4(rec.CookTime),
			TotalTime:    int4(rec.TotalTime),
			Servings:     int4(rec.Servings),
			Instructions: rec.Instructions,
			RecipeID:     rec.ID,
		})
		if err != nil {
			return fmt.Errorf("updating recipe row: %w", err)
		}
		if n == 0 {
			return ErrNotFound
		}

		if err := q.DeleteRecipeIngredients(ctx, rec.ID); err != nil {
			return fmt.Errorf("deleting ingredient links: %w", err)
		}
		return linkIngredients(ctx, q, rec.ID, rec.Ingredients)
	})
	if err != nil {
		return fmt.Errorf("updating recipe %d: %w", rec.ID, err)
	}

	r.logger.DebugContext(ctx, "updated recipe", slog.Int64("recipe_id", rec.ID))
	return nil
}

// Delete removes the recipe and every row referencing it. Shopping entries
// and ingredient checks go first, then user links, then ingredient links,
// then the recipe itself.
func (r *Repository) Delete(ctx context.Context, recipeID int64) error {
	err := r.db.InTx(ctx, func(q database.Querier) error {
		if err := q.DeleteShoppingEntriesForRecipe(ctx, recipeID); err != nil {
			return fmt.Errorf("deleting shopping entries: %w", err)
		}
		if err := q.DeleteIngredientChecksForRecipe(ctx, recipeID); err != nil {
			return fmt.Errorf("deleting ingredient checks: %w", err)
		}
		if err := q.DeleteUserRecipesForRecipe(ctx, recipeID); err != nil {
			return fmt.Errorf("deleting user links: %w", err)
		}
		if err := q.DeleteRecipeIngredients(ctx, recipeID); err != nil {
			return fmt.Errorf("deleting ingredient links: %w", err)
		}
		n, err := q.DeleteRecipe(ctx, recipeID)
		if err != nil {
			return fmt.Errorf("deleting recipe row: %w", err)
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("deleting recipe %d: %w", recipeID, err)
	}

	r.logger.DebugContext(ctx, "deleted recipe", slog.Int64("recipe_id", recipeID))
	return nil
}

// LinkToUser shares the recipe with userID. Linking twice is a no-op.
func (r *Repository) LinkToUser(ctx context.Context, userID, recipeID int64) error {
	err := r.db.CreateUserRecipe(ctx, database.CreateUserRecipeParams{
		UserID:   userID,
		RecipeID: recipeID,
	})
	if err != nil {
		return fmt.Errorf("linking recipe %d to user %d: %w", recipeID, userID, classify(err))
	}
	return nil
}

func (r *Repository) UnlinkUser(ctx context.Context, userID, recipeID int64) error {
	err := r.db.DeleteUserRecipe(ctx, database.DeleteUserRecipeParams{
		UserID:   userID,
		RecipeID: recipeID,
	})
	if err != nil {
		return fmt.Errorf("unlinking recipe %d from user %d: %w", recipeID, userID, err)
	}
	return nil
}

// CanAccess reports whether the recipe is linked to userID.
func (r *Repository) CanAccess(ctx context.Context, userID, recipeID int64) (bool, error) {
	ok, err := r.db.CheckUserRecipe(ctx, database.CheckUserRecipeParams{
		UserID:   userID,
		RecipeID: recipeID,
	})
	if err != nil {
		return false, fmt.Errorf("checking access to recipe %d: %w", recipeID, err)
	}
	return ok, nil
}

func insert(ctx context.Context, q database.Querier, rec Recipe) (int64, error) {
	id, err := q.CreateRecipe(ctx, database.CreateRecipeParams{
		RecipeName:   rec.Name,
		RecipeImage:  text(rec.image()),
		RecipeSource: text(rec.Source),
		RecipeUrl:    text(rec.URL),
		Description:  text(rec.Description),
		PrepTime:     int4(rec.PrepTime),
		CookTime:     int4(rec.CookTime),
		TotalTime:    int4(rec.TotalTime),
		Servings:     int4(rec.Servings),
		Instructions: rec.Instructions,
	})
	if err != nil {
		return 0, fmt.Errorf("inserting recipe row: %w", err)
	}

	if err := linkIngredients(ctx, q, id, rec.Ingredients); err != nil {
		return 0, err
	}
	return id, nil
}

func linkIngredients(ctx context.Context, q database.Querier, recipeID int64, ingredients []Ingredient) error {
	for i, ing := range ingredients {
		ingredientID, err := ingredient.Resolve(ctx, q, ing.Name)
		if err != nil {
			return fmt.Errorf("resolving ingredient %d: %w", i, err)
		}

		if err := q.CreateRecipeIngredient(ctx, database.CreateRecipeIngredientParams{
			RecipeID:     recipeID,
			SortOrder:    int32(i), //nolint:gosec
			IngredientID: ingredientID,
			Quantity:     text(ing.Quantity),
		}); err != nil {
			return fmt.Errorf("linking ingredient %d: %w", i, err)
		}
	}
	return nil
}

func classify(err error) error {
	err = database.ClassifyError(err)
	if errors.Is(err, database.ErrForeignKeyViolation) {
		return errors.Join(ErrUnknownReference, err)
	}
	return err
}

func fromRow(row database.Recipe) Recipe {
	return Recipe{
		ID:           row.RecipeID,
		Name:         row.RecipeName,
		Image:        row.RecipeImage.String,
		Source:       row.RecipeSource.String,
		URL:          row.RecipeUrl.String,
		Description:  row.Description.String,
		PrepTime:     ptr(row.PrepTime),
		CookTime:     ptr(row.CookTime),
		TotalTime:    ptr(row.TotalTime),
		Servings:     ptr(row.Servings),
		Instructions: row.Instructions,
		Ingredients:  []Ingredient{},
		SharedUsers:  []string{},
	}
}

func text(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func int4(v *int32) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: *v, Valid: true}
}

func ptr(v pgtype.Int4) *int32 {
	if !v.Valid {
		return nil
	}
	n := v.Int32
	return &n
}
