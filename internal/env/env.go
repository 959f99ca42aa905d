// Package env provides a structure for managing application-wide dependencies.
package env

import (
	"context"
	"log/slog"

	"github.com/matt-dz/recipecenter/internal/config"
	"github.com/matt-dz/recipecenter/internal/database"
	"github.com/matt-dz/recipecenter/internal/filestore"
	mHttp "github.com/matt-dz/recipecenter/internal/http"
	"github.com/matt-dz/recipecenter/internal/invite"
	"github.com/matt-dz/recipecenter/internal/jwt"
	"github.com/matt-dz/recipecenter/internal/log"
	"github.com/matt-dz/recipecenter/internal/metrics"
	"github.com/matt-dz/recipecenter/internal/password"
	"github.com/matt-dz/recipecenter/internal/recipe"
	"github.com/matt-dz/recipecenter/internal/shopping"
	"github.com/matt-dz/recipecenter/internal/user"
)

type envKeyType struct{}

var envKey envKeyType

type Env struct {
	Logger   *slog.Logger
	Config   config.Config
	Database *database.Database
	Recipes  *recipe.Repository
	Users    *user.Repository
	Shopping *shopping.Service
	Invites  invite.Mailer
	Files    filestore.Store
	Metrics  *metrics.Metrics
	HTTP     *mHttp.HTTP
}

// Services are the collaborators that do not hang off the database.
type Services struct {
	Invites invite.Mailer
	Files   filestore.Store
	Metrics *metrics.Metrics
	Hasher  password.Hasher
	HTTP    *mHttp.HTTP
}

// New wires the repositories onto db. A nil hasher defaults to
// password.NewMulti.
func New(lg *slog.Logger, conf config.Config, db *database.Database, svc Services) *Env {
	if lg == nil {
		lg = log.NullLogger()
	}
	if svc.Hasher == nil {
		svc.Hasher = password.NewMulti()
	}

	return &Env{
		Logger:   lg,
		Config:   conf,
		Database: db,
		Recipes:  recipe.NewRepository(db, lg),
		Users:    user.NewRepository(db, svc.Hasher, lg),
		Shopping: shopping.NewService(db, lg),
		Invites:  svc.Invites,
		Files:    svc.Files,
		Metrics:  svc.Metrics,
		HTTP:     svc.HTTP,
	}
}

func Null() *Env {
	return &Env{
		Logger: log.NullLogger(),
	}
}

// IsProd reports whether the app runs in production mode.
func (e *Env) IsProd() bool {
	return e.Config.Env == config.EnvProd
}

// AppSecret returns the key access tokens are signed with.
func (e *Env) AppSecret() []byte {
	if e.Config.AppSecret.Value == nil {
		return nil
	}
	return []byte(*e.Config.AppSecret.Value)
}

func (e *Env) AppSecretVersion() string {
	if e.Config.AppSecret.Version == "" {
		return jwt.DefaultKID
	}
	return e.Config.AppSecret.Version
}

func WithCtx(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey, env)
}

// EnvFromCtx returns the env stored in ctx, or a null env.
func EnvFromCtx(ctx context.Context) *Env {
	if env, ok := ctx.Value(envKey).(*Env); ok {
		return env
	}
	return Null()
}
