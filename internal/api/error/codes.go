package error

import "net/http"

type ErrorCode string

const (
	UnknownError            ErrorCode = "unknown_error"
	InternalServerError     ErrorCode = "internal_server_error"
	BadRequest              ErrorCode = "bad_request"
	InvalidCredentials      ErrorCode = "invalid_credentials"
	InvalidAccessToken      ErrorCode = "invalid_access_token"
	ExpiredAccessToken      ErrorCode = "expired_access_token"
	InvalidCSRFToken        ErrorCode = "invalid_csrf_token"
	InsufficientPermissions ErrorCode = "insufficient_permissions"
	WeakPassword            ErrorCode = "weak_password"
	UsernameConflict        ErrorCode = "username_conflict"
	RecipeNotFound          ErrorCode = "recipe_not_found"
	RecipeNotOwned          ErrorCode = "recipe_not_owned"
	InvalidRecipe           ErrorCode = "invalid_recipe"
	MalformedIngredient     ErrorCode = "malformed_ingredient"
	IngredientNotFound      ErrorCode = "ingredient_not_found"
	ImageNotFound           ErrorCode = "image_not_found"
	UnsupportedImage        ErrorCode = "unsupported_image"
	UserNotFound            ErrorCode = "user_not_found"
	InvalidInvite           ErrorCode = "invalid_invite"
	EmailDisabled           ErrorCode = "email_disabled"
)

var errorCodeToStatusCode = map[ErrorCode]int{
	UnknownError:            0, // No error code - unknown
	InternalServerError:     http.StatusInternalServerError,
	BadRequest:              http.StatusBadRequest,
	InvalidCredentials:      http.StatusUnauthorized,
	InvalidAccessToken:      http.StatusUnauthorized,
	ExpiredAccessToken:      http.StatusUnauthorized,
	InvalidCSRFToken:        http.StatusForbidden,
	InsufficientPermissions: http.StatusForbidden,
	WeakPassword:            http.StatusUnprocessableEntity,
	UsernameConflict:        http.StatusConflict,
	RecipeNotFound:          http.StatusNotFound,
	RecipeNotOwned:          http.StatusForbidden,
	InvalidRecipe:           http.StatusUnprocessableEntity,
	MalformedIngredient:     http.StatusUnprocessableEntity,
	IngredientNotFound:      http.StatusNotFound,
	ImageNotFound:           http.StatusNotFound,
	UnsupportedImage:        http.StatusUnsupportedMediaType,
	UserNotFound:            http.StatusNotFound,
	InvalidInvite:           http.StatusUnprocessableEntity,
	EmailDisabled:           http.StatusServiceUnavailable,
}

func (ec ErrorCode) StatusCode() int {
	return errorCodeToStatusCode[ec]
}

func (ec ErrorCode) String() string {
	return string(ec)
}
