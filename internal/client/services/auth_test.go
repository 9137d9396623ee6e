package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/blindmatch/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	fc := newFakeClient(t)
	fc.replies["POST /auth/register"] = `{"user":{"id":"u1","name":"Ann","email":"a@x"},"token":"T1"}`
	svc := NewAuthService(fc)

	resp, err := svc.Register(context.Background(), RegisterRequest{Name: "Ann", Email: "a@x", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "T1", resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "u1", resp.User.ID)

	assert.JSONEq(t,
		`{"name":"Ann","email":"a@x","password":"pw","bio":"","photoUrl":"","interests":[]}`,
		fc.last().Body)
}

func TestAuthService_Login(t *testing.T) {
	fc := newFakeClient(t)
	fc.replies["POST /auth/login"] = `{"user":{"id":"u1"},"token":"T2"}`
	svc := NewAuthService(fc)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "a@x", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "T2", resp.Token)
	assert.JSONEq(t, `{"email":"a@x","password":"pw"}`, fc.last().Body)
}

func TestAuthService_PropagatesErrors(t *testing.T) {
	fc := newFakeClient(t)
	fc.err = &client.RequestError{Status: 400, Message: "Email taken"}
	svc := NewAuthService(fc)

	resp, err := svc.Register(context.Background(), RegisterRequest{})
	assert.Nil(t, resp)
	var re *client.RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "Email taken", re.Message)

	_, err = svc.Login(context.Background(), LoginRequest{})
	assert.Error(t, err)
}

func TestValidateRegistration(t *testing.T) {
	full := RegisterRequest{Name: "Ann", Email: "a@x", Password: "pw"}

	tests := []struct {
		name    string
		req     RegisterRequest
		confirm string
		wantMsg string
	}{
		{"ok", full, "pw", ""},
		{"missing name", RegisterRequest{Email: "a@x", Password: "pw"}, "pw", "Please fill in all fields"},
		{"missing email", RegisterRequest{Name: "Ann", Password: "pw"}, "pw", "Please fill in all fields"},
		{"missing password", RegisterRequest{Name: "Ann", Email: "a@x"}, "pw", "Please fill in all fields"},
		{"missing confirm", full, "", "Please fill in all fields"},
		{"mismatch", full, "other", "Passwords do not match"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.req, tt.confirm)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}
