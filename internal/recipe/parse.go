package recipe

import (
	"fmt"
	"strings"
)

const ingredientDelimiter = "-"

// String renders the ingredient in its interchange form, "quantity-name".
func (i Ingredient) String() string {
	return i.Quantity + ingredientDelimiter + i.Name
}

// ParseIngredient reads the "quantity-name" form. Only the first hyphen
// separates the two parts, so names may contain hyphens of their own.
func ParseIngredient(s string) (Ingredient, error) {
	quantity, name, ok := strings.Cut(s, ingredientDelimiter)
	if !ok {
		return Ingredient{}, fmt.Errorf("%w: %q has no %q delimiter", ErrMalformedIngredient, s, ingredientDelimiter)
	}

	quantity = strings.TrimSpace(quantity)
	name = strings.TrimSpace(name)
	if name == "" {
		return Ingredient{}, fmt.Errorf("%w: %q has no name", ErrMalformedIngredient, s)
	}

	return Ingredient{Quantity: quantity, Name: name}, nil
}
