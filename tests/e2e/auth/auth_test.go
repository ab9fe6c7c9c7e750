//go:build e2e

package auth_test

import (
	"net/http"
	"strings"
	"testing"

	"groundio/internal/domain/user"
	"groundio/internal/handler/dto/request"
	"groundio/internal/handler/dto/response"
	"groundio/internal/pkg/cookie"
	"groundio/tests/common/authtest"
	"groundio/tests/common/dbtest"
	"groundio/tests/common/httptest"
	"groundio/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL  = "/api/auth/signup"
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "asha@example.com", string(user.RoleCustomer))
	dbtest.CreateTestUser(s.T(), s.DB, "owner@example.com", string(user.RoleMerchant))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleCustomer))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestSignup() {
	s.Run("creates a merchant and signs it in", func() {
		t := s.T()

		reqBody := request.SignupRequest{
			Email:    "new.owner@example.com",
			Password: "Str0ng!Pass",
			Role:     string(user.RoleMerchant),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")

		var res response.LoginResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		require.Equal(t, "merchant", res.Role)
		require.NotEmpty(t, res.AccessToken)
		require.NotNil(t, httptest.ExtractCookie(w, cookie.RefreshTokenCookieName))

		var displayName string
		err := s.DB.QueryRow(t.Context(), "SELECT display_name FROM users WHERE id = $1", res.UserID).Scan(&displayName)
		require.NoError(t, err)
		require.Equal(t, "new.owner", displayName)
	})

	s.Run("role defaults to customer", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL,
			request.SignupRequest{Email: "fresh@example.com", Password: "Str0ng!Pass"}, "")

		var res response.LoginResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		require.Equal(t, "customer", res.Role)
	})

	s.Run("rejects a taken email", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL,
			request.SignupRequest{Email: "asha@example.com", Password: "Str0ng!Pass"}, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("rejects a weak password", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL,
			request.SignupRequest{Email: "weak@example.com", Password: "password"}, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("rejects a password over 72 bytes", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL,
			request.SignupRequest{Email: "long@example.com", Password: "Str0ng!Pass" + strings.Repeat("x", 62)}, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "valid credentials",
			email:          "asha@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
			description:    "valid credentials should sign in",
		},
		{
			name:           "unknown user",
			email:          "nobody@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "unknown email should be rejected",
		},
		{
			name:           "wrong password",
			email:          "asha@example.com",
			password:       "Wr0ng!Password",
			expectedStatus: http.StatusUnauthorized,
			description:    "wrong password should be rejected",
		},
		{
			name:           "inactive user",
			email:          "inactive@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusForbidden,
			description:    "inactive accounts cannot sign in",
		},
		{
			name:           "empty email",
			email:          "",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusBadRequest,
			description:    "empty email should be rejected",
		},
		{
			name:           "empty password",
			email:          "asha@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "empty password should be rejected",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
				require.NotEmpty(t, loginRes.AccessToken, "access token is empty")
				require.NotNil(t, httptest.ExtractCookie(w, cookie.AccessTokenCookieName), "access cookie missing")
				require.NotNil(t, httptest.ExtractCookie(w, cookie.RefreshTokenCookieName), "refresh cookie missing")

				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login was not updated")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("refresh cookie issues a new access token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "asha@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)

		refreshed := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, httptest.ExtractCookies(w), "")
		var body map[string]string
		httptest.AssertSuccessResponse(t, refreshed, http.StatusOK, &body)
		require.NotEmpty(t, body["access_token"])
	})

	s.Run("refresh token in body is accepted", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "asha@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)
		refreshCookie := httptest.ExtractCookie(w, cookie.RefreshTokenCookieName)
		require.NotNil(t, refreshCookie)

		refreshed := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: refreshCookie.Value}, "")
		require.Equal(t, http.StatusOK, refreshed.Code, refreshed.Body.String())
	})

	s.Run("garbage token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "not-a-token"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("missing token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Refresh token required")
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears both cookies", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "asha@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)

		out := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, httptest.ExtractCookies(w), "")
		require.Equal(t, http.StatusNoContent, out.Code)

		for _, name := range []string{cookie.AccessTokenCookieName, cookie.RefreshTokenCookieName} {
			cleared := httptest.ExtractCookie(out, name)
			require.NotNil(t, cleared, name)
			require.Less(t, cleared.MaxAge, 0, name)
		}
	})

	s.Run("requires a session", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		email          string
		role           user.Role
		expectedStatus int
	}{
		{name: "customer", email: "asha@example.com", role: user.RoleCustomer, expectedStatus: http.StatusOK},
		{name: "merchant", email: "owner@example.com", role: user.RoleMerchant, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			token := authtest.LoginUser(t, s.Router, tt.email, dbtest.TestPassword)
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

			var me response.UserResponse
			httptest.AssertSuccessResponse(t, w, tt.expectedStatus, &me)
			require.Equal(t, tt.email, me.Email)
			require.Equal(t, string(tt.role), me.Role)
			require.NotContains(t, w.Body.String(), "password")
		})
	}

	s.Run("expired token is rejected", func() {
		t := s.T()

		token := s.jwtHelper.CreateExpiredToken(t, uuid.New(), user.RoleCustomer)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("refresh token cannot be used as access token", func() {
		t := s.T()

		var userID uuid.UUID
		err := s.DB.QueryRow(t.Context(), "SELECT id FROM users WHERE email = 'asha@example.com'").Scan(&userID)
		require.NoError(t, err)

		token := s.jwtHelper.GenerateRefreshToken(t, userID, user.RoleCustomer)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("missing token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("concurrent sessions stay valid", func() {
		t := s.T()

		first := authtest.LoginUser(t, s.Router, "asha@example.com", dbtest.TestPassword)
		second := authtest.LoginUser(t, s.Router, "asha@example.com", dbtest.TestPassword)

		require.Equal(t, http.StatusOK, httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, first).Code)
		require.Equal(t, http.StatusOK, httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, second).Code)
	})
}
