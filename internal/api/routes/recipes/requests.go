package recipes

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/matt-dz/recipecenter/internal/recipe"
)

// IngredientInput accepts either {"quantity": ..., "name": ...} or the
// "quantity-name" string form.
type IngredientInput recipe.Ingredient

func (i *IngredientInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		ing, err := recipe.ParseIngredient(s)
		if err != nil {
			return err
		}
		*i = IngredientInput(ing)
		return nil
	}

	var obj struct {
		Quantity string `json:"quantity"`
		Name     string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("%w: %w", recipe.ErrMalformedIngredient, err)
	}
	*i = IngredientInput{Quantity: obj.Quantity, Name: obj.Name}
	return nil
}

type RecipeRequest struct {
	Name         string            `json:"name"`
	Source       string            `json:"source"`
	URL          string            `json:"url"`
	Description  string            `json:"description"`
	PrepTime     *int32            `json:"prep_time"`
	CookTime     *int32            `json:"cook_time"`
	TotalTime    *int32            `json:"total_time"`
	Servings     *int32            `json:"servings"`
	Instructions string            `json:"instructions"`
	Ingredients  []IngredientInput `json:"ingredients"`
}

// Recipe converts the request; the id and image are left to the caller.
func (r RecipeRequest) Recipe() recipe.Recipe {
	ingredients := make([]recipe.Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ingredients[i] = recipe.Ingredient(ing)
	}
	return recipe.Recipe{
		Name:         r.Name,
		Source:       r.Source,
		URL:          r.URL,
		Description:  r.Description,
		PrepTime:     r.PrepTime,
		CookTime:     r.CookTime,
		TotalTime:    r.TotalTime,
		Servings:     r.Servings,
		Instructions: r.Instructions,
		Ingredients:  ingredients,
	}
}

type ShareRequest struct {
	Username string `json:"username" validate:"required"`
}

type ImportImageRequest struct {
	URL string `json:"url" validate:"required,http_url"`
}
