// Package recipe stores recipes together with their ordered ingredient
// lists and the users they are shared with.
package recipe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultImage is stored for recipes saved without an image.
const DefaultImage = "images/GenericRecipe.png"

var (
	ErrInvalidRecipe       = errors.New("invalid recipe")
	ErrNotFound            = errors.New("recipe not found")
	ErrUnknownReference    = errors.New("unknown user or recipe")
	ErrMalformedIngredient = errors.New("malformed ingredient")
)

type Ingredient struct {
	ID       int64  `json:"id,omitempty"`
	Quantity string `json:"quantity" validate:"max=100"`
	Name     string `json:"name" validate:"notblank,max=200"`
}

type Recipe struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name" validate:"notblank,max=200"`
	Image        string       `json:"image"`
	Source       string       `json:"source,omitempty" validate:"max=200"`
	URL          string       `json:"url,omitempty" validate:"omitempty,url"`
	Description  string       `json:"description,omitempty"`
	PrepTime     *int32       `json:"prep_time,omitempty" validate:"omitnil,gte=0"`
	CookTime     *int32       `json:"cook_time,omitempty" validate:"omitnil,gte=0"`
	TotalTime    *int32       `json:"total_time,omitempty" validate:"omitnil,gte=0"`
	Servings     *int32       `json:"servings,omitempty" validate:"omitnil,gte=0"`
	Instructions string       `json:"instructions"`
	Ingredients  []Ingredient `json:"ingredients" validate:"dive"`
	SharedUsers  []string     `json:"shared_users"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validate reports whether r can be stored. Failures wrap ErrInvalidRecipe.
func (r Recipe) Validate() error {
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("%w: %s failed on %q", ErrInvalidRecipe, e.Namespace(), e.Tag())
		}
		return fmt.Errorf("%w: %w", ErrInvalidRecipe, err)
	}
	return nil
}

func (r Recipe) image() string {
	if strings.TrimSpace(r.Image) == "" {
		return DefaultImage
	}
	return r.Image
}
