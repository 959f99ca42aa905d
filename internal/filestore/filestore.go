// Package filestore stores recipe images and profile pictures on local
// disk or in an S3 compatible bucket.
package filestore

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/matt-dz/recipecenter/internal/fileserver"
)

const (
	DefaultURLPrefix = "/files"
)

const (
	DriverDisk = "disk"
	DriverS3   = "s3"
)

// Store keeps uploaded files. Paths returned by the Write methods are
// relative keys such as "covers/12.png"; FileURL turns them into links.
type Store interface {
	WriteRecipeImage(ctx context.Context, recipeID int64, suffix, contentType string, data []byte) (key string, err error)
	WriteProfilePicture(ctx context.Context, userID int64, suffix, contentType string, data []byte) (key string, err error)
	Delete(ctx context.Context, key string) error
	FileURL(key string) string
	Owns(key string) bool
}

func recipeImageKey(recipeID int64, suffix string) string {
	return path.Join(fileserver.CoversDir, strconv.FormatInt(recipeID, 10)+suffix)
}

func profilePictureKey(userID int64, suffix string) string {
	return path.Join(fileserver.ProfilesDir, strconv.FormatInt(userID, 10)+suffix)
}

// owns reports whether key lives below one of the upload directories.
// Keys such as the default recipe image are served by the frontend.
func owns(key string) bool {
	top, _, _ := strings.Cut(strings.TrimLeft(key, "/"), "/")
	return top == fileserver.CoversDir || top == fileserver.ProfilesDir
}

// URLFor links key through store when the store owns it. Other keys, such
// as DefaultImage paths, are returned unchanged.
func URLFor(store Store, key string) string {
	if store == nil || key == "" || !store.Owns(key) {
		return key
	}
	return store.FileURL(key)
}

// Disk writes files through a fileserver rooted at a local volume.
type Disk struct {
	urlPathPrefix string
	host          string
	fs            *fileserver.FileServer
}

var _ Store = (*Disk)(nil)

func NewDisk(baseDirectory, urlPathPrefix, host string) *Disk {
	return &Disk{
		urlPathPrefix: "/" + strings.Trim(urlPathPrefix, "/"),
		host:          strings.TrimRight(host, "/"),
		fs:            fileserver.New(baseDirectory),
	}
}

func (d *Disk) WriteRecipeImage(_ context.Context, recipeID int64, suffix, _ string, data []byte) (string, error) {
	key := recipeImageKey(recipeID, suffix)
	if _, err := d.fs.Write(key, data); err != nil {
		return "", fmt.Errorf("writing recipe image: %w", err)
	}
	return key, nil
}

func (d *Disk) WriteProfilePicture(_ context.Context, userID int64, suffix, _ string, data []byte) (string, error) {
	key := profilePictureKey(userID, suffix)
	if _, err := d.fs.Write(key, data); err != nil {
		return "", fmt.Errorf("writing profile picture: %w", err)
	}
	return key, nil
}

func (d *Disk) Delete(_ context.Context, key string) error {
	return d.fs.Delete(key)
}

func (d *Disk) FileURL(key string) string {
	return d.host + d.urlPathPrefix + "/" + strings.TrimLeft(key, "/")
}

func (d *Disk) Owns(key string) bool {
	return owns(key)
}

// URLPrefix is the path the files are served under.
func (d *Disk) URLPrefix() string {
	return d.urlPathPrefix
}

// FileServer exposes the underlying file server so the API can serve the
// stored files.
func (d *Disk) FileServer() *fileserver.FileServer {
	return d.fs
}
