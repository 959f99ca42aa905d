package recipes

import (
	"github.com/matt-dz/recipecenter/internal/filestore"
	"github.com/matt-dz/recipecenter/internal/recipe"
)

type CreateRecipeResponse struct {
	RecipeID int64 `json:"recipe_id"`
}

type RecipeResponse struct {
	recipe.Recipe
	ImageURL string `json:"image_url"`
}

type ListRecipesResponse struct {
	Recipes []RecipeResponse `json:"recipes"`
}

type UploadImageResponse struct {
	Image    string `json:"image"`
	ImageURL string `json:"image_url"`
}

func newRecipeResponse(rec recipe.Recipe, files filestore.Store) RecipeResponse {
	return RecipeResponse{
		Recipe:   rec,
		ImageURL: filestore.URLFor(files, rec.Image),
	}
}

func newListRecipesResponse(recipes []recipe.Recipe, files filestore.Store) ListRecipesResponse {
	resp := ListRecipesResponse{Recipes: make([]RecipeResponse, len(recipes))}
	for i, rec := range recipes {
		resp.Recipes[i] = newRecipeResponse(rec, files)
	}
	return resp
}
