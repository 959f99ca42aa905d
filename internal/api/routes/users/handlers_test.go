package users

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"

	apiError "github.com/matt-dz/recipecenter/internal/api/error"
	"github.com/matt-dz/recipecenter/internal/api/token"
	"github.com/matt-dz/recipecenter/internal/config"
	"github.com/matt-dz/recipecenter/internal/database"
	"github.com/matt-dz/recipecenter/internal/env"
	"github.com/matt-dz/recipecenter/internal/filestore"
	"github.com/matt-dz/recipecenter/internal/form"
	rcJwt "github.com/matt-dz/recipecenter/internal/jwt"
	"github.com/matt-dz/recipecenter/internal/log"
	"github.com/matt-dz/recipecenter/internal/metrics"
	"github.com/matt-dz/recipecenter/internal/password"
)

const (
	appSecret    = "test-secret-32-bytes-long-123456"
	testPassword = "TestP@ssw0rd123!"
)

func testEnv(q database.Querier, files filestore.Store, m *metrics.Metrics) *env.Env {
	secret := config.AppSecretValue(appSecret)
	conf := config.Config{
		AppSecret:  config.AppSecret{Value: &secret, Version: "1"},
		HostOrigin: "https://cook.example.com",
	}
	return env.New(log.NullLogger(), conf, &database.Database{Querier: q}, env.Services{
		Files:   files,
		Metrics: m,
		Hasher:  password.NewArgon2id(),
	})
}

func newRequest(e *env.Env, method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(env.WithCtx(req.Context(), e))
}

func withUser(req *http.Request, userID int64) *http.Request {
	return req.WithContext(token.UserIDWithCtx(req.Context(), userID))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiError.Error {
	t.Helper()
	var body apiError.Error
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return body
}

func hashOf(t *testing.T, raw string) string {
	t.Helper()
	hash, err := password.NewArgon2id().Hash(raw)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	return hash
}

func TestHandleRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*database.MockQuerier)
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name: "creates user",
			body: `{"username":"chef","first_name":"Julia","password":"` + testPassword + `"}`,
			setup: func(m *database.MockQuerier) {
				m.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg database.CreateUserParams) (int64, error) {
						if arg.Username != "chef" {
							t.Errorf("username = %q, want chef", arg.Username)
						}
						if len(arg.Roles) != 1 || arg.Roles[0] != "user" {
							t.Errorf("roles = %v, want [user]", arg.Roles)
						}
						return 7, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing password",
			body:       `{"username":"chef"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.BadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"username":"chef","password":"x","admin":true}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.BadRequest,
		},
		{
			name:       "username too short",
			body:       `{"username":"ab","password":"` + testPassword + `"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.BadRequest,
		},
		{
			name:       "weak password",
			body:       `{"username":"chef","password":"password"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apiError.WeakPassword,
		},
		{
			name: "username taken",
			body: `{"username":"chef","password":"` + testPassword + `"}`,
			setup: func(m *database.MockQuerier) {
				m.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Return(int64(0), &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})
			},
			wantStatus: http.StatusConflict,
			wantCode:   apiError.UsernameConflict,
		},
		{
			name: "database error",
			body: `{"username":"chef","password":"` + testPassword + `"}`,
			setup: func(m *database.MockQuerier) {
				m.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiError.InternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDB := database.NewMockQuerier(ctrl)
			if tt.setup != nil {
				tt.setup(mockDB)
			}

			rec := httptest.NewRecorder()
			HandleRegister(rec, newRequest(testEnv(mockDB, nil, nil), http.MethodPost, "/api/register", tt.body))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body)
			}
			if tt.wantCode != "" {
				if got := decodeError(t, rec).Code; got != tt.wantCode {
					t.Errorf("code = %q, want %q", got, tt.wantCode)
				}
				return
			}

			var resp IdentityResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if resp.UserID != 7 || resp.DisplayName != "Julia" {
				t.Errorf("response = %+v", resp)
			}
		})
	}
}

func TestHandleLogin(t *testing.T) {
	stored := database.User{
		UserID:         3,
		Username:       "chef",
		FirstName:      pgtype.Text{String: "Julia", Valid: true},
		LastName:       pgtype.Text{String: "Child", Valid: true},
		HashedPassword: hashOf(t, testPassword),
		Roles:          []string{"user"},
	}

	tests := []struct {
		name       string
		body       string
		setup      func(*database.MockQuerier)
		wantStatus int
		wantCode   apiError.ErrorCode
		wantResult string
	}{
		{
			name: "valid credentials",
			body: `{"username":"chef","password":"` + testPassword + `"}`,
			setup: func(m *database.MockQuerier) {
				m.EXPECT().GetUserByUsername(gomock.Any(), "chef").Return(stored, nil)
			},
			wantStatus: http.StatusOK,
			wantResult: metrics.ResultSuccess,
		},
		{
			name: "wrong password",
			body: `{"username":"chef","password":"WrongP@ssw0rd123!"}`,
			setup: func(m *database.MockQuerier) {
				m.EXPECT().GetUserByUsername(gomock.Any(), "chef").Return(stored, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiError.InvalidCredentials,
			wantResult: metrics.ResultFailure,
		},
		{
			name: "unknown user",
			body: `{"username":"ghost","password":"` + testPassword + `"}`,
			setup: func(m *database.MockQuerier) {
				m.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(database.User{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiError.InvalidCredentials,
			wantResult: metrics.ResultFailure,
		},
		{
			name: "database error",
			body: `{"username":"chef","password":"` + testPassword + `"}`,
			setup: func(m *database.MockQuerier) {
				m.EXPECT().GetUserByUsername(gomock.Any(), "chef").Return(database.User{}, errors.New("timeout"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiError.InternalServerError,
		},
		{
			name:       "empty body",
			body:       ``,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.BadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDB := database.NewMockQuerier(ctrl)
			if tt.setup != nil {
				tt.setup(mockDB)
			}
			m := metrics.New()
			e := testEnv(mockDB, nil, m)

			rec := httptest.NewRecorder()
			HandleLogin(rec, newRequest(e, http.MethodPost, "/api/login", tt.body))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body)
			}
			if tt.wantResult != "" {
				if got := testutil.ToFloat64(m.Logins.WithLabelValues(tt.wantResult)); got != 1 {
					t.Errorf("logins{result=%q} = %v, want 1", tt.wantResult, got)
				}
			}
			if tt.wantCode != "" {
				if got := decodeError(t, rec).Code; got != tt.wantCode {
					t.Errorf("code = %q, want %q", got, tt.wantCode)
				}
				return
			}

			var resp LoginResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if resp.UserID != 3 || resp.DisplayName != "Julia Child" {
				t.Errorf("identity = %+v", resp.IdentityResponse)
			}

			claims, err := rcJwt.ValidateJWT(resp.AccessToken, "1", []byte(appSecret))
			if err != nil {
				t.Fatalf("access token does not validate: %v", err)
			}
			if claims.Subject != "3" || claims.Username != "chef" {
				t.Errorf("claims = %+v", claims)
			}

			cookies := map[string]*http.Cookie{}
			for _, c := range rec.Result().Cookies() {
				cookies[c.Name] = c
			}
			access, ok := cookies[token.AccessTokenName(e)]
			if !ok || access.Value != resp.AccessToken || !access.HttpOnly {
				t.Errorf("access cookie = %+v", access)
			}
			csrf, ok := cookies[token.CSRFTokenName(e)]
			if !ok || csrf.Value != resp.CSRFToken || csrf.HttpOnly {
				t.Errorf("csrf cookie = %+v", csrf)
			}
		})
	}
}

func TestHandleLogout(t *testing.T) {
	e := testEnv(nil, nil, nil)
	rec := httptest.NewRecorder()
	HandleLogout(rec, newRequest(e, http.MethodPost, "/api/logout", ""))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 2 {
		t.Fatalf("got %d cookies, want 2", len(cookies))
	}
	for _, c := range cookies {
		if c.MaxAge >= 0 || c.Value != "" {
			t.Errorf("cookie %s not expired: %+v", c.Name, c)
		}
	}
}

func TestHandleGetMe(t *testing.T) {
	files := filestore.NewDisk(t.TempDir(), "/files", "https://cook.example.com")
	e := testEnv(nil, files, nil)

	t.Run("identity from claims", func(t *testing.T) {
		claims := &rcJwt.Claims{
			Username: "chef",
			Name:     "Julia Child",
			Picture:  "profiles/3.png",
			Roles:    []string{"user"},
		}
		claims.Subject = "3"

		req := newRequest(e, http.MethodGet, "/api/me", "")
		req = req.WithContext(token.AccessTokenWithCtx(req.Context(), claims))
		rec := httptest.NewRecorder()
		HandleGetMe(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", rec.Code, rec.Body)
		}
		var resp IdentityResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp.UserID != 3 || resp.Username != "chef" {
			t.Errorf("identity = %+v", resp)
		}
		if want := "https://cook.example.com/files/profiles/3.png"; resp.ProfilePictureURL != want {
			t.Errorf("profile_picture_url = %q, want %q", resp.ProfilePictureURL, want)
		}
	})

	t.Run("no claims", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HandleGetMe(rec, newRequest(e, http.MethodGet, "/api/me", ""))
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
		}
	})
}

func TestHandleUpdateMe(t *testing.T) {
	stored := func() database.User {
		return database.User{
			UserID:         3,
			Username:       "chef",
			FirstName:      pgtype.Text{String: "Julia", Valid: true},
			HashedPassword: hashOf(t, testPassword),
			Roles:          []string{"user"},
		}
	}

	tests := []struct {
		name       string
		body       string
		setup      func(*database.MockQuerier)
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name: "rename",
			body: `{"last_name":"Child"}`,
			setup: func(m *database.MockQuerier) {
				m.EXPECT().GetUserByID(gomock.Any(), int64(3)).Return(stored(), nil)
				m.EXPECT().
					UpdateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg database.UpdateUserParams) (int64, error) {
						if arg.FirstName.String != "Julia" || arg.LastName.String != "Child" {
							t.Errorf("names = %q %q", arg.FirstName.String, arg.LastName.String)
						}
						return 1, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "change password",
			body: `{"password":"N3w-Secr3t-Passw0rd!","current_password":"` + testPassword + `"}`,
			setup: func(m *database.MockQuerier) {
				m.EXPECT().GetUserByID(gomock.Any(), int64(3)).Return(stored(), nil)
				m.EXPECT().
					UpdateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg database.UpdateUserParams) (int64, error) {
						ok, err := password.NewArgon2id().Verify(arg.HashedPassword, "N3w-Secr3t-Passw0rd!")
						if err != nil || !ok {
							t.Errorf("stored hash does not match new password")
						}
						return 1, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "password without current password",
			body:       `{"password":"N3w-Secr3t-Passw0rd!"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.BadRequest,
		},
		{
			name: "wrong current password",
			body: `{"password":"N3w-Secr3t-Passw0rd!","current_password":"nope"}`,
			setup: func(m *database.MockQuerier) {
				m.EXPECT().GetUserByID(gomock.Any(), int64(3)).Return(stored(), nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiError.InvalidCredentials,
		},
		{
			name: "weak new password",
			body: `{"password":"short","current_password":"` + testPassword + `"}`,
			setup: func(m *database.MockQuerier) {
				m.EXPECT().GetUserByID(gomock.Any(), int64(3)).Return(stored(), nil)
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apiError.WeakPassword,
		},
		{
			name: "deleted user",
			body: `{"first_name":"J"}`,
			setup: func(m *database.MockQuerier) {
				m.EXPECT().GetUserByID(gomock.Any(), int64(3)).Return(database.User{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiError.UserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDB := database.NewMockQuerier(ctrl)
			if tt.setup != nil {
				tt.setup(mockDB)
			}
			e := testEnv(mockDB, nil, nil)

			rec := httptest.NewRecorder()
			HandleUpdateMe(rec, withUser(newRequest(e, http.MethodPatch, "/api/me", tt.body), 3))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body)
			}
			if tt.wantCode != "" {
				if got := decodeError(t, rec).Code; got != tt.wantCode {
					t.Errorf("code = %q, want %q", got, tt.wantCode)
				}
				return
			}
			if len(rec.Result().Cookies()) != 2 {
				t.Errorf("session was not refreshed")
			}
		})
	}
}

func multipartImage(t *testing.T, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile(form.ImageField, "picture.png")
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}
	return body, mw.FormDataContentType()
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestHandleUploadPicture(t *testing.T) {
	t.Run("stores picture", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := database.NewMockQuerier(ctrl)
		files := filestore.NewDisk(t.TempDir(), "/files", "")
		e := testEnv(mockDB, files, nil)

		mockDB.EXPECT().GetUserByID(gomock.Any(), int64(5)).Return(database.User{
			UserID:         5,
			Username:       "chef",
			HashedPassword: hashOf(t, testPassword),
			Roles:          []string{"user"},
		}, nil)
		mockDB.EXPECT().
			UpdateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg database.UpdateUserParams) (int64, error) {
				if arg.ProfilePicturePath.String != "profiles/5.png" {
					t.Errorf("profile picture = %q, want profiles/5.png", arg.ProfilePicturePath.String)
				}
				return 1, nil
			})

		body, contentType := multipartImage(t, pngHeader)
		req := httptest.NewRequest(http.MethodPut, "/api/me/picture", body)
		req.Header.Set("Content-Type", contentType)
		req = withUser(req.WithContext(env.WithCtx(req.Context(), e)), 5)

		rec := httptest.NewRecorder()
		HandleUploadPicture(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", rec.Code, rec.Body)
		}
		exists, err := files.FileServer().Exists("profiles/5.png")
		if err != nil || !exists {
			t.Errorf("picture not written: exists=%v err=%v", exists, err)
		}
	})

	t.Run("rejects text", func(t *testing.T) {
		e := testEnv(nil, filestore.NewDisk(t.TempDir(), "/files", ""), nil)
		body, contentType := multipartImage(t, []byte("just some text"))
		req := httptest.NewRequest(http.MethodPut, "/api/me/picture", body)
		req.Header.Set("Content-Type", contentType)
		req = withUser(req.WithContext(env.WithCtx(req.Context(), e)), 5)

		rec := httptest.NewRecorder()
		HandleUploadPicture(rec, req)

		if got := decodeError(t, rec).Code; got != apiError.UnsupportedImage {
			t.Errorf("code = %q, want %q", got, apiError.UnsupportedImage)
		}
	})

	t.Run("no upload", func(t *testing.T) {
		e := testEnv(nil, filestore.NewDisk(t.TempDir(), "/files", ""), nil)
		rec := httptest.NewRecorder()
		HandleUploadPicture(rec, withUser(newRequest(e, http.MethodPut, "/api/me/picture", `{}`), 5))

		if got := decodeError(t, rec).Code; got != apiError.BadRequest {
			t.Errorf("code = %q, want %q", got, apiError.BadRequest)
		}
	})
}
