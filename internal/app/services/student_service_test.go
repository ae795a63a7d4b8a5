package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emredok/studenthub/internal/app/services"
	"github.com/emredok/studenthub/internal/pkg/apperrors"
)

func TestGetProfile(t *testing.T) {
	repo := newFakeStudentRepo()
	authSvc := newTestAuthService(repo)
	svc := services.NewStudentService(repo)

	registered, err := authSvc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), registered.ID)
	require.NoError(t, err)

	assert.Equal(t, "John Doe", profile.Name)
	assert.Equal(t, "2021-CS-042", profile.RegistrationNo)
	assert.Equal(t, "Computer Science", profile.Program)

	// No serialization of the profile may carry credential material
	payload, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "password")
	assert.NotContains(t, string(payload), "$2a$")
}

func TestGetProfileNotFound(t *testing.T) {
	svc := services.NewStudentService(newFakeStudentRepo())

	_, err := svc.GetProfile(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
