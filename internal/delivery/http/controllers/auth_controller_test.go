package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medprep/internal/domain"
)

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	token    string
	user     *domain.StaffUser
	loginErr error
	getErr   error

	lastEmail, lastPassword string
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, *domain.StaffUser, error) {
	f.lastEmail, f.lastPassword = email, password
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return f.token, f.user, nil
}

func (f *fakeAuthService) GetByID(ctx context.Context, id string) (*domain.StaffUser, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.user, nil
}

func TestAuthController_Login(t *testing.T) {
	manager := &domain.StaffUser{ID: "u1", Email: "manager@medprep.example", Role: domain.RoleManager}

	tests := []struct {
		name       string
		body       string
		fake       *fakeAuthService
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success",
			body:       `{"email":"manager@medprep.example","password":"pw"}`,
			fake:       &fakeAuthService{token: "tok-123", user: manager},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid credentials",
			body:       `{"email":"manager@medprep.example","password":"wrong"}`,
			fake:       &fakeAuthService{loginErr: domain.ErrInvalidCredentials},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "unauthorized",
		},
		{
			name:       "missing password",
			body:       `{"email":"manager@medprep.example"}`,
			fake:       &fakeAuthService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "malformed json",
			body:       `{`,
			fake:       &fakeAuthService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "repository failure",
			body:       `{"email":"manager@medprep.example","password":"pw"}`,
			fake:       &fakeAuthService{loginErr: errors.New("db down")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAuthController(testLogger(), tt.fake)
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			ctrl.Login(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				_, errCode := decodeEnvelope(t, rr)
				assert.Equal(t, tt.wantCode, errCode)
			}
			if tt.wantStatus == http.StatusOK {
				data, _ := decodeEnvelope(t, rr)
				var resp LoginResponse
				require.NoError(t, json.Unmarshal(data, &resp))
				assert.Equal(t, "tok-123", resp.Token)
				assert.Equal(t, "u1", resp.User.ID)
			}
		})
	}
}

func TestAuthController_Me(t *testing.T) {
	tutor := &domain.StaffUser{ID: "u2", Email: "tutor@medprep.example", Role: domain.RoleTutor, TutorID: "t1"}

	t.Run("success", func(t *testing.T) {
		ctrl := NewAuthController(testLogger(), &fakeAuthService{user: tutor})
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		req = withClaims(req, &domain.TokenClaims{UserID: "u2", Role: domain.RoleTutor, TutorID: "t1"})
		rr := httptest.NewRecorder()
		ctrl.Me(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		data, _ := decodeEnvelope(t, rr)
		var u domain.StaffUser
		require.NoError(t, json.Unmarshal(data, &u))
		assert.Equal(t, "t1", u.TutorID)
	})

	t.Run("no claims", func(t *testing.T) {
		ctrl := NewAuthController(testLogger(), &fakeAuthService{})
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		rr := httptest.NewRecorder()
		ctrl.Me(rr, req)
		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("account deleted since token issued", func(t *testing.T) {
		ctrl := NewAuthController(testLogger(), &fakeAuthService{getErr: domain.ErrUserNotFound})
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		req = withClaims(req, &domain.TokenClaims{UserID: "u9"})
		rr := httptest.NewRecorder()
		ctrl.Me(rr, req)
		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}
