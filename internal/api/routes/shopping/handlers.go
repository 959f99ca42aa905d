// Package shopping contains handlers for the shopping list endpoints.
package shopping

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apiError "github.com/matt-dz/recipecenter/internal/api/error"
	"github.com/matt-dz/recipecenter/internal/api/middleware"
	"github.com/matt-dz/recipecenter/internal/api/requestid"
	"github.com/matt-dz/recipecenter/internal/api/token"
	"github.com/matt-dz/recipecenter/internal/database"
	"github.com/matt-dz/recipecenter/internal/env"
	mJson "github.com/matt-dz/recipecenter/internal/json"
	"github.com/matt-dz/recipecenter/internal/shopping"
)

const IngredientIDParam = "ingredientID"

type ListResponse struct {
	RecipeIDs []int64         `json:"recipe_ids"`
	Items     []shopping.Item `json:"items"`
}

type CheckRequest struct {
	Checked *bool `json:"checked"`
}

// params extracts the user id and the URL ids named in keys, writing the
// error response itself when one is unusable.
func params(w http.ResponseWriter, r *http.Request, keys ...string) (int64, []int64, bool) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return 0, nil, false
	}

	ids := make([]int64, len(keys))
	for i, key := range keys {
		ids[i], err = strconv.ParseInt(chi.URLParam(r, key), 10, 64)
		if err != nil {
			env.Logger.DebugContext(ctx, "invalid id", slog.String("param", key), slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.BadRequest, "invalid "+key, requestID)
			return 0, nil, false
		}
	}
	return userID, ids, true
}

// HandleList returns the queued recipes and their ingredients.
//
//	GET /api/shopping
func HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	userID, _, ok := params(w, r)
	if !ok {
		return
	}

	recipeIDs, err := env.Shopping.ListForUser(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list shopping recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	items, err := env.Shopping.Items(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list shopping items", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := mJson.EncodeJSON(w, http.StatusOK, ListResponse{RecipeIDs: recipeIDs, Items: items}); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleAdd queues a recipe.
//
//	PUT /api/shopping/{recipeID}
func HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	userID, ids, ok := params(w, r, middleware.RecipeIDParam)
	if !ok {
		return
	}

	err := env.Shopping.Add(ctx, userID, ids[0])
	if errors.Is(err, database.ErrForeignKeyViolation) {
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to add recipe to shopping list", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleRemove drops a recipe from the list.
//
//	DELETE /api/shopping/{recipeID}
func HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	userID, ids, ok := params(w, r, middleware.RecipeIDParam)
	if !ok {
		return
	}

	if err := env.Shopping.Remove(ctx, userID, ids[0]); err != nil {
		env.Logger.ErrorContext(ctx, "failed to remove recipe from shopping list", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleReset empties the list and forgets every check.
//
//	DELETE /api/shopping
func HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	userID, _, ok := params(w, r)
	if !ok {
		return
	}

	if err := env.Shopping.Reset(ctx, userID); err != nil {
		env.Logger.ErrorContext(ctx, "failed to reset shopping list", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleCheckIngredient sets the check state of one ingredient.
//
//	PUT /api/shopping/{recipeID}/ingredients/{ingredientID}
func HandleCheckIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	userID, ids, ok := params(w, r, middleware.RecipeIDParam, IngredientIDParam)
	if !ok {
		return
	}

	var request CheckRequest
	if err := mJson.DecodeRequest(w, r, &request); err != nil || request.Checked == nil {
		env.Logger.DebugContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, `body must be {"checked": true|false}`, requestID)
		return
	}

	err := env.Shopping.SetIngredientChecked(ctx, userID, ids[0], ids[1], *request.Checked)
	if errors.Is(err, database.ErrForeignKeyViolation) {
		_ = apiError.EncodeError(w, apiError.IngredientNotFound, "recipe or ingredient not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to set ingredient check", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
