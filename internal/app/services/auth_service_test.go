package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selimk/coursehub/internal/app/models"
	"github.com/selimk/coursehub/internal/pkg/apperrors"
)

// fakeResolver answers identity lookups from in-memory maps.
type fakeResolver struct {
	byEmail    map[string]*models.User
	byUsername map[string]*models.User
	failWith   error
}

func (f *fakeResolver) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeResolver) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func TestResolveIdentity(t *testing.T) {
	byEmail := &models.User{ID: 1, Email: "ada@example.edu"}
	byUsername := &models.User{ID: 2, Username: "ada"}

	r := &fakeResolver{
		byEmail:    map[string]*models.User{"ada@example.edu": byEmail},
		byUsername: map[string]*models.User{"ada": byUsername},
	}

	tests := []struct {
		name       string
		identifier string
		want       *models.User
		wantErr    error
	}{
		{name: "email exact match", identifier: "ada@example.edu", want: byEmail},
		{name: "username match", identifier: "ada", want: byUsername},
		{name: "lowercased email fallback", identifier: "Ada@Example.edu", want: byEmail},
		{name: "surrounding whitespace trimmed", identifier: "  ada  ", want: byUsername},
		{name: "unknown identifier", identifier: "nobody", wantErr: apperrors.ErrInvalidCredentials},
		{name: "empty identifier", identifier: "", wantErr: apperrors.ErrInvalidCredentials},
		{name: "blank identifier", identifier: "   ", wantErr: apperrors.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveIdentity(context.Background(), r, tt.identifier)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.ID, got.ID)
		})
	}
}

func TestResolveIdentityEmailPrecedesUsername(t *testing.T) {
	// The same string registered as one identity's email and another's
	// username must resolve to the email owner.
	emailOwner := &models.User{ID: 1, Email: "shared@example.edu"}
	usernameOwner := &models.User{ID: 2, Username: "shared@example.edu"}

	r := &fakeResolver{
		byEmail:    map[string]*models.User{"shared@example.edu": emailOwner},
		byUsername: map[string]*models.User{"shared@example.edu": usernameOwner},
	}

	got, err := resolveIdentity(context.Background(), r, "shared@example.edu")
	require.NoError(t, err)
	assert.Equal(t, emailOwner.ID, got.ID)
}

func TestResolveIdentityPropagatesRepositoryErrors(t *testing.T) {
	boom := errors.New("connection reset")
	r := &fakeResolver{failWith: boom}

	_, err := resolveIdentity(context.Background(), r, "ada")
	assert.ErrorIs(t, err, boom)
}

func TestValidatePasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "secret12", wantErr: false},
		{name: "valid mixed case", password: "Passw0rdExtra", wantErr: false},
		{name: "too short", password: "abc1", wantErr: true},
		{name: "seven characters", password: "abcde12", wantErr: true},
		{name: "letters only", password: "abcdefgh", wantErr: true},
		{name: "digits only", password: "12345678", wantErr: true},
		{name: "symbols count toward length only", password: "pass!@#$word1", wantErr: false},
		{name: "empty", password: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePasswordPolicy(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUsernameFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"ada@example.edu", "ada"},
		{"first.last@school.edu", "first.last"},
		{"noatsign", "noatsign"},
		{"@leadingat", "@leadingat"},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, usernameFromEmail(tt.email))
		})
	}
}
