// Package recipes contains handlers for the recipes endpoint.
package recipes

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	apiError "github.com/matt-dz/recipecenter/internal/api/error"
	"github.com/matt-dz/recipecenter/internal/api/middleware"
	"github.com/matt-dz/recipecenter/internal/api/requestid"
	"github.com/matt-dz/recipecenter/internal/api/token"
	"github.com/matt-dz/recipecenter/internal/env"
	"github.com/matt-dz/recipecenter/internal/form"
	mHttp "github.com/matt-dz/recipecenter/internal/http"
	"github.com/matt-dz/recipecenter/internal/ingredient"
	mJson "github.com/matt-dz/recipecenter/internal/json"
	"github.com/matt-dz/recipecenter/internal/recipe"
)

// UsernameParam names the user a recipe is unshared from.
const UsernameParam = "username"

var validate = validator.New(validator.WithRequiredStructEnabled())

func recipeIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, middleware.RecipeIDParam), 10, 64)
}

// encodeRecipeError maps repository errors onto API errors.
func encodeRecipeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	switch {
	case errors.Is(err, recipe.ErrMalformedIngredient), errors.Is(err, ingredient.ErrEmptyName):
		env.Logger.DebugContext(ctx, "malformed ingredient", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.MalformedIngredient, err.Error(), requestID)
	case errors.Is(err, recipe.ErrInvalidRecipe):
		env.Logger.DebugContext(ctx, "invalid recipe", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidRecipe, err.Error(), requestID)
	case errors.Is(err, recipe.ErrNotFound), errors.Is(err, recipe.ErrUnknownReference):
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
	default:
		env.Logger.ErrorContext(ctx, "recipe operation failed", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
	}
}

// decodeRecipe reads a RecipeRequest, writing the error response itself
// when the body is unusable.
func decodeRecipe(w http.ResponseWriter, r *http.Request) (recipe.Recipe, bool) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	var request RecipeRequest
	env.Logger.DebugContext(ctx, "Reading request body")
	if err := mJson.DecodeRequest(w, r, &request); err != nil {
		if errors.Is(err, recipe.ErrMalformedIngredient) {
			encodeRecipeError(w, r, err)
			return recipe.Recipe{}, false
		}
		env.Logger.DebugContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return recipe.Recipe{}, false
	}
	return request.Recipe(), true
}

// HandleListRecipes returns every recipe.
//
//	GET /api/recipes
func HandleListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	recipes, err := env.Recipes.LoadAll(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to load recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := mJson.EncodeJSON(w, http.StatusOK, newListRecipesResponse(recipes, env.Files)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleListMyRecipes returns the recipes shared with the current user.
//
//	GET /api/recipes/mine
func HandleListMyRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	recipes, err := env.Recipes.LoadForUser(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to load recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := mJson.EncodeJSON(w, http.StatusOK, newListRecipesResponse(recipes, env.Files)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleCreateRecipe stores a recipe linked to the current user.
//
//	POST /api/recipes
func HandleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	rec, ok := decodeRecipe(w, r)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "creating recipe")
	recipeID, err := env.Recipes.SaveForUser(ctx, userID, rec)
	if err != nil {
		encodeRecipeError(w, r, err)
		return
	}
	env.Metrics.IncrementRecipesSaved()

	if err := mJson.EncodeJSON(w, http.StatusCreated, CreateRecipeResponse{RecipeID: recipeID}); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleGetRecipe returns a single recipe.
//
//	GET /api/recipes/{recipeID}
func HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	recipeID, err := recipeIDFromURL(r)
	if err != nil {
		env.Logger.DebugContext(ctx, "invalid recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	rec, found, err := env.Recipes.Get(ctx, recipeID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if !found {
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	}

	if err := mJson.EncodeJSON(w, http.StatusOK, newRecipeResponse(rec, env.Files)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// loadRecipe fetches the recipe named in the URL, writing the error
// response itself when it fails.
func loadRecipe(w http.ResponseWriter, r *http.Request) (recipe.Recipe, bool) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	recipeID, err := recipeIDFromURL(r)
	if err != nil {
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return recipe.Recipe{}, false
	}
	rec, found, err := env.Recipes.Get(ctx, recipeID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return recipe.Recipe{}, false
	}
	if !found {
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return recipe.Recipe{}, false
	}
	return rec, true
}

// HandleUpdateRecipe replaces the fields and ingredients of a recipe. The
// stored image is kept.
//
//	PUT /api/recipes/{recipeID}
func HandleUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	update, ok := decodeRecipe(w, r)
	if !ok {
		return
	}
	existing, ok := loadRecipe(w, r)
	if !ok {
		return
	}
	update.ID = existing.ID
	update.Image = existing.Image

	env.Logger.DebugContext(ctx, "updating recipe")
	if err := env.Recipes.Update(ctx, update); err != nil {
		encodeRecipeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteRecipe removes a recipe together with its uploaded image.
//
//	DELETE /api/recipes/{recipeID}
func HandleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	rec, ok := loadRecipe(w, r)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "deleting recipe")
	if err := env.Recipes.Delete(ctx, rec.ID); err != nil {
		encodeRecipeError(w, r, err)
		return
	}
	env.Metrics.IncrementRecipesDeleted()

	if env.Files != nil && env.Files.Owns(rec.Image) {
		if err := env.Files.Delete(ctx, rec.Image); err != nil {
			env.Logger.WarnContext(ctx, "failed to delete recipe image", slog.String("key", rec.Image), slog.Any("error", err))
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleUploadRecipeImage stores an image and points the recipe at it.
//
//	PUT /api/recipes/{recipeID}/image (multipart field "image")
func HandleUploadRecipeImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, form.MaxImageBytes+(1<<20))
	image, err := form.ReadImage(r)
	switch {
	case errors.Is(err, form.ErrNoImageUploaded):
		_ = apiError.EncodeError(w, apiError.BadRequest, "no image uploaded", requestID)
		return
	case errors.Is(err, form.ErrUnsupportedMimeType), errors.Is(err, form.ErrImageTooLarge):
		env.Logger.DebugContext(ctx, "rejected image", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.UnsupportedImage, err.Error(), requestID)
		return
	case err != nil:
		env.Logger.DebugContext(ctx, "failed to read image", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid upload", requestID)
		return
	}
	storeRecipeImage(w, r, image)
}

// storeRecipeImage writes image to the file store and points the recipe in
// the URL at it. The previous uploaded image is removed.
func storeRecipeImage(w http.ResponseWriter, r *http.Request, image *form.File) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	if env.Files == nil {
		env.Logger.ErrorContext(ctx, "no file store configured")
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	rec, ok := loadRecipe(w, r)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "writing recipe image")
	key, err := env.Files.WriteRecipeImage(ctx, rec.ID, image.Suffix, image.MimeType, image.Data)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to write recipe image", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	old := rec.Image
	rec.Image = key
	if err := env.Recipes.Update(ctx, rec); err != nil {
		encodeRecipeError(w, r, err)
		return
	}
	if old != key && env.Files.Owns(old) {
		if err := env.Files.Delete(ctx, old); err != nil {
			env.Logger.WarnContext(ctx, "failed to delete old recipe image", slog.String("key", old), slog.Any("error", err))
		}
	}

	resp := UploadImageResponse{Image: key, ImageURL: env.Files.FileURL(key)}
	if err := mJson.EncodeJSON(w, http.StatusOK, resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleImportRecipeImage downloads an image from a remote URL and stores
// it like an upload.
//
//	POST /api/recipes/{recipeID}/image/import
func HandleImportRecipeImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	var request ImportImageRequest
	if err := mJson.DecodeRequest(w, r, &request); err != nil {
		env.Logger.DebugContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	if err := validate.Struct(request); err != nil {
		_ = apiError.EncodeError(w, apiError.BadRequest, "url must be an http or https url", requestID)
		return
	}
	if env.HTTP == nil {
		env.Logger.ErrorContext(ctx, "no http client configured")
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "downloading recipe image", slog.String("url", request.URL))
	data, err := env.HTTP.Download(ctx, request.URL, form.MaxImageBytes)
	switch {
	case errors.Is(err, mHttp.ErrTooLarge):
		_ = apiError.EncodeError(w, apiError.UnsupportedImage, form.ErrImageTooLarge.Error(), requestID)
		return
	case err != nil:
		env.Logger.InfoContext(ctx, "failed to download image", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.ImageNotFound, "image could not be downloaded", requestID)
		return
	}

	image, err := form.DetectImage(data)
	if err != nil {
		env.Logger.DebugContext(ctx, "rejected image", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.UnsupportedImage, err.Error(), requestID)
		return
	}

	storeRecipeImage(w, r, image)
}

// HandleShareRecipe links a recipe to another user.
//
//	POST /api/recipes/{recipeID}/share
func HandleShareRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	recipeID, err := recipeIDFromURL(r)
	if err != nil {
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	var request ShareRequest
	if err := mJson.DecodeRequest(w, r, &request); err != nil {
		env.Logger.DebugContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	if err := validate.Struct(request); err != nil {
		_ = apiError.EncodeError(w, apiError.BadRequest, "username is required", requestID)
		return
	}

	u, found, err := env.Users.GetByUsername(ctx, request.Username)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if !found {
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "sharing recipe", slog.Int64("with_user_id", u.ID))
	if err := env.Recipes.LinkToUser(ctx, u.ID, recipeID); err != nil {
		encodeRecipeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleUnshareRecipe removes the link between a recipe and a user.
//
//	DELETE /api/recipes/{recipeID}/share/{username}
func HandleUnshareRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	recipeID, err := recipeIDFromURL(r)
	if err != nil {
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	u, found, err := env.Users.GetByUsername(ctx, chi.URLParam(r, UsernameParam))
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if !found {
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	}

	if err := env.Recipes.UnlinkUser(ctx, u.ID, recipeID); err != nil {
		encodeRecipeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
