package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emredok/studenthub/internal/app/models"
	"github.com/emredok/studenthub/internal/app/models/dto"
	"github.com/emredok/studenthub/internal/app/services"
	"github.com/emredok/studenthub/internal/pkg/apperrors"
	"github.com/emredok/studenthub/internal/pkg/auth"
)

// fakeStudentRepo is an in-memory IStudentRepository
type fakeStudentRepo struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{
		students: make(map[int64]*models.Student),
		nextID:   1,
	}
}

func (r *fakeStudentRepo) Create(ctx context.Context, student *models.Student) (int64, error) {
	for _, existing := range r.students {
		if existing.RegistrationNo == student.RegistrationNo {
			return 0, apperrors.ErrRegistrationNoExists
		}
	}

	stored := *student
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.students[stored.ID] = &stored
	r.nextID++
	return stored.ID, nil
}

func (r *fakeStudentRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (r *fakeStudentRepo) GetByRegistrationNo(ctx context.Context, registrationNo string) (*models.Student, error) {
	for _, student := range r.students {
		if student.RegistrationNo == registrationNo {
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *fakeStudentRepo) RegistrationNoExists(ctx context.Context, registrationNo string) (bool, error) {
	_, err := r.GetByRegistrationNo(ctx, registrationNo)
	return err == nil, nil
}

func (r *fakeStudentRepo) UpdateLastLogin(ctx context.Context, id int64) error {
	student, ok := r.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	now := time.Now()
	student.LastLoginAt = &now
	return nil
}

func newTestAuthService(repo *fakeStudentRepo) *services.AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-signing-secret",
		TokenExpiry: 24 * time.Hour,
		TokenIssuer: "studenthub.test",
	})
	return services.NewAuthService(repo, jwtService, zerolog.Nop())
}

func validRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:           "John Doe",
		Email:          "john.doe@school.edu",
		Password:       "s3cret-pass",
		PhoneNo:        "+90-555-000-0000",
		Address:        "12 Campus Road",
		RegistrationNo: "2021-CS-042",
		Program:        "Computer Science",
	}
}

func TestRegisterSuccess(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := newTestAuthService(repo)

	resp, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	assert.Equal(t, "John Doe", resp.Name)
	assert.Equal(t, "2021-CS-042", resp.RegistrationNo)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(86400), resp.ExpiresIn)

	// The store holds a hash, never the plaintext
	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "s3cret-pass"))
}

func TestRegisterDuplicateRegistrationNo(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	second := validRegisterRequest()
	second.Name = "Someone Else"
	second.Email = "someone.else@school.edu"
	_, err = svc.Register(context.Background(), second)
	assert.ErrorIs(t, err, apperrors.ErrRegistrationNoExists)
}

func TestRegisterMissingFieldOrder(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*dto.RegisterRequest)
	}{
		{"name", func(r *dto.RegisterRequest) { r.Name = "" }},
		{"email", func(r *dto.RegisterRequest) { r.Email = "" }},
		{"address", func(r *dto.RegisterRequest) { r.Address = "" }},
		{"phn_no", func(r *dto.RegisterRequest) { r.PhoneNo = "" }},
		{"password", func(r *dto.RegisterRequest) { r.Password = "" }},
		{"registration_no", func(r *dto.RegisterRequest) { r.RegistrationNo = "" }},
		{"program", func(r *dto.RegisterRequest) { r.Program = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			svc := newTestAuthService(newFakeStudentRepo())

			req := validRegisterRequest()
			tt.mutate(req)

			_, err := svc.Register(context.Background(), req)
			require.ErrorIs(t, err, apperrors.ErrValidationFailed)

			var customErr *apperrors.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, tt.field, customErr.Field)
		})
	}
}

func TestRegisterMissingNameWinsOverLaterFields(t *testing.T) {
	svc := newTestAuthService(newFakeStudentRepo())

	// Several fields missing: the first in validation order is reported
	req := validRegisterRequest()
	req.Name = ""
	req.Program = ""

	_, err := svc.Register(context.Background(), req)
	var customErr *apperrors.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, "name", customErr.Field)
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := newTestAuthService(repo)

	registered, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		RegistrationNo: "2021-CS-042",
		Password:       "s3cret-pass",
	})
	require.NoError(t, err)

	assert.Equal(t, registered.ID, resp.ID)
	assert.Equal(t, "John Doe", resp.Name)
	assert.Equal(t, "2021-CS-042", resp.RegistrationNo)
	assert.NotEmpty(t, resp.Token)

	// Login stamps the last login time
	stored, err := repo.GetByID(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLoginAt)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, wrongPassword := svc.Login(context.Background(), &dto.LoginRequest{
		RegistrationNo: "2021-CS-042",
		Password:       "wrong-pass",
	})
	_, unknownStudent := svc.Login(context.Background(), &dto.LoginRequest{
		RegistrationNo: "1999-XX-000",
		Password:       "s3cret-pass",
	})

	// Same sentinel for both failure modes; callers cannot probe accounts
	assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownStudent, apperrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownStudent.Error())
}
