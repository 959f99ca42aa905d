package users

import (
	"github.com/matt-dz/recipecenter/internal/auth"
	"github.com/matt-dz/recipecenter/internal/filestore"
)

type IdentityResponse struct {
	auth.Identity
	ProfilePictureURL string `json:"profile_picture_url"`
}

type LoginResponse struct {
	IdentityResponse
	AccessToken string `json:"access_token"`
	CSRFToken   string `json:"csrf_token"`
}

func newIdentityResponse(id auth.Identity, files filestore.Store) IdentityResponse {
	return IdentityResponse{
		Identity:          id,
		ProfilePictureURL: filestore.URLFor(files, id.ProfilePicturePath),
	}
}
