// Package api sets up and starts the API server with routing and
// middleware.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/matt-dz/recipecenter/internal/api/middleware"
	"github.com/matt-dz/recipecenter/internal/api/routes/admin"
	"github.com/matt-dz/recipecenter/internal/api/routes/auth"
	"github.com/matt-dz/recipecenter/internal/api/routes/invites"
	"github.com/matt-dz/recipecenter/internal/api/routes/ping"
	"github.com/matt-dz/recipecenter/internal/api/routes/recipes"
	"github.com/matt-dz/recipecenter/internal/api/routes/shopping"
	"github.com/matt-dz/recipecenter/internal/api/routes/users"
	"github.com/matt-dz/recipecenter/internal/env"
	"github.com/matt-dz/recipecenter/internal/filestore"
	"github.com/matt-dz/recipecenter/internal/role"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

func addRoutes(router *chi.Mux) {
	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", ping.HandlePing)
		r.Post("/register", users.HandleRegister)
		r.Post("/login", users.HandleLogin)
		r.Post("/logout", users.HandleLogout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authorize(role.RoleUser))

			r.Get("/auth/session/verify", auth.HandleVerifySession)

			r.Get("/me", users.HandleGetMe)
			r.Patch("/me", users.HandleUpdateMe)
			r.Put("/me/picture", users.HandleUploadPicture)

			r.Route("/recipes", func(r chi.Router) {
				r.Get("/", recipes.HandleListRecipes)
				r.Get("/mine", recipes.HandleListMyRecipes)
				r.Post("/", recipes.HandleCreateRecipe)
				r.Get("/{recipeID}", recipes.HandleGetRecipe)

				r.With(middleware.RecipeAccess).Put("/{recipeID}", recipes.HandleUpdateRecipe)
				r.With(middleware.RecipeAccess).Delete("/{recipeID}", recipes.HandleDeleteRecipe)
				r.With(middleware.RecipeAccess).Put("/{recipeID}/image", recipes.HandleUploadRecipeImage)
				r.With(middleware.RecipeAccess).Post("/{recipeID}/image/import", recipes.HandleImportRecipeImage)
				r.With(middleware.RecipeAccess).Post("/{recipeID}/share", recipes.HandleShareRecipe)
				r.With(middleware.RecipeAccess).Delete("/{recipeID}/share/{username}", recipes.HandleUnshareRecipe)
			})

			r.Route("/shopping", func(r chi.Router) {
				r.Get("/", shopping.HandleList)
				r.Delete("/", shopping.HandleReset)
				r.Put("/{recipeID}", shopping.HandleAdd)
				r.Delete("/{recipeID}", shopping.HandleRemove)
				r.Put("/{recipeID}/ingredients/{ingredientID}", shopping.HandleCheckIngredient)
			})

			r.Post("/invites", invites.HandleSendInvite)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.Authorize(role.RoleAdmin))

			r.Get("/users", admin.HandleListUsers)
		})
	})
}

// NewRouter builds the handler tree for env.
func NewRouter(env *env.Env) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.AddRequestID)
	router.Use(middleware.LogRequest(env.Logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(env.Metrics.Middleware)
	router.Use(middleware.InjectEnv(env))
	router.Use(middleware.AddCors)

	addRoutes(router)
	router.Method(http.MethodGet, "/metrics", env.Metrics.Handler())

	if disk, ok := env.Files.(*filestore.Disk); ok {
		prefix := disk.URLPrefix()
		router.Handle(prefix+"/*", disk.FileServer().Handler(prefix))
	}

	return router
}

// Start serves the API on Config.ListenAddr until ctx is cancelled, then
// drains in-flight requests.
func Start(ctx context.Context, env *env.Env) error {
	server := &http.Server{
		Addr:              env.Config.ListenAddr,
		Handler:           NewRouter(env),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		env.Logger.Info("Listening", slog.String("addr", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	env.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
