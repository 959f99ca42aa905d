// Package setup is responsible for setting up components.
package setup

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matt-dz/recipecenter/internal/config"
	"github.com/matt-dz/recipecenter/internal/database"
	"github.com/matt-dz/recipecenter/internal/email"
	"github.com/matt-dz/recipecenter/internal/env"
	"github.com/matt-dz/recipecenter/internal/filestore"
	"github.com/matt-dz/recipecenter/internal/invite"
	"github.com/matt-dz/recipecenter/internal/role"
	"github.com/matt-dz/recipecenter/internal/user"
)

// DatabaseURL builds the connection string for conf, escaping the
// credentials.
func DatabaseURL(conf config.Database) string {
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(conf.User, conf.Password),
		Host:   net.JoinHostPort(conf.Host, strconv.Itoa(int(conf.Port))),
		Path:   "/" + conf.Database,
	}
	return u.String()
}

// Database opens the connection pool and applies the schema when it is
// missing.
func Database(ctx context.Context, conf config.Database) (*database.Database, error) {
	poolConfig, err := pgxpool.ParseConfig(DatabaseURL(conf))
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}
	if conf.MaxConns > 0 {
		poolConfig.MaxConns = conf.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("creating database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db := database.NewDatabase(pool)
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	return db, nil
}

// EmailSender returns an SMTP sender, or a sender that always fails with
// email.ErrNotConfigured when no SMTP host is set.
func EmailSender(conf config.SMTP) email.Sender {
	if !conf.Enabled() {
		return email.DisabledSender{}
	}
	return email.NewSMTPSender(email.Config{
		Host:          conf.Host,
		Port:          int(conf.Port),
		Username:      conf.Username,
		Password:      conf.Password,
		From:          conf.From,
		TLSMode:       email.TLSMode(conf.TLSMode),
		TLSSkipVerify: conf.TLSSkipVerify,
	})
}

func Mailer(conf config.Config) invite.Mailer {
	return invite.NewMailer(EmailSender(conf.SMTP), conf.InviteURL())
}

// FileStore opens the store selected by conf.Driver. Disk files are linked
// relative to the API origin.
func FileStore(ctx context.Context, conf config.Storage) (filestore.Store, error) {
	switch conf.Driver {
	case filestore.DriverDisk, "":
		if conf.Volume == "" {
			return nil, ErrNoVolume
		}
		volume, err := filepath.Abs(conf.Volume)
		if err != nil {
			return nil, fmt.Errorf("resolving storage volume: %w", err)
		}
		prefix := conf.URLPrefix
		if prefix == "" {
			prefix = filestore.DefaultURLPrefix
		}
		return filestore.NewDisk(volume, prefix, ""), nil
	case filestore.DriverS3:
		return filestore.NewS3(ctx, filestore.S3Config{
			Endpoint:        conf.S3.Endpoint,
			Bucket:          conf.S3.Bucket,
			Region:          conf.S3.Region,
			AccessKeyID:     conf.S3.AccessKeyID,
			SecretAccessKey: conf.S3.SecretAccessKey,
			UseSSL:          conf.S3.UseSSL,
			PublicURL:       conf.S3.PublicURL,
		})
	default:
		return nil, NewUnknownStorageDriverError(conf.Driver)
	}
}

// Admin creates the configured admin account when no admin exists yet.
func Admin(ctx context.Context, env *env.Env) error {
	conf := env.Config.Admin
	if conf.Username == "" || conf.Password == "" {
		env.Logger.InfoContext(ctx, "admin username and password not set, skipping admin setup")
		return nil
	}
	if err := conf.Password.Validate(); err != nil {
		return fmt.Errorf("validating admin password: %w", err)
	}

	count, err := env.Users.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		env.Logger.InfoContext(ctx, "admin already setup, skipping setup")
		return nil
	}

	hash, err := env.Users.HashPassword(string(conf.Password))
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	id, err := env.Users.Save(ctx, user.User{
		Username:     conf.Username,
		FirstName:    conf.FirstName,
		LastName:     conf.LastName,
		PasswordHash: hash,
		Roles:        []string{role.LabelAdmin, role.LabelUser},
	})
	if err != nil {
		return fmt.Errorf("creating admin: %w", err)
	}
	env.Logger.InfoContext(ctx, "successfully setup admin!", slog.Int64("user_id", id))

	return nil
}
