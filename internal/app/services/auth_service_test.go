package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/app/models/dto"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
	"github.com/rsharma/collegium/internal/pkg/auth"
)

func newAuthService(t *testing.T) (*AuthService, *fakeStudentRepo, *auth.JWTService) {
	t.Helper()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: time.Hour,
		TokenIssuer: "collegium-test",
	})
	studentRepo := &fakeStudentRepo{}
	svc := NewAuthService(&fakeAdminRepo{}, &fakeFacultyRepo{}, studentRepo, jwtService, zerolog.Nop())
	return svc, studentRepo, jwtService
}

func seedStudent(t *testing.T, repo *fakeStudentRepo, username, password string) *models.Student {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	student := &models.Student{
		Name:     "Asha Verma",
		Email:    username + "@example.com",
		Username: username,
		Password: hash,
	}
	if err := repo.CreateWithSubjects(context.Background(), student); err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return student
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, repo, jwtService := newAuthService(t)
	student := seedStudent(t, repo, "STU20260101000", "21-08-2003")

	result, err := svc.Login(context.Background(), models.RoleStudent, dto.LoginRequest{
		Username: "STU20260101000",
		Password: "21-08-2003",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}

	claims, err := jwtService.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.AccountID != student.ID {
		t.Errorf("token subject = %d, want %d", claims.AccountID, student.ID)
	}
	if claims.Email != student.Email {
		t.Errorf("token email = %q, want %q", claims.Email, student.Email)
	}
	if claims.Role != string(models.RoleStudent) {
		t.Errorf("token role = %q, want STUDENT", claims.Role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, repo, _ := newAuthService(t)
	seedStudent(t, repo, "STU20260101000", "right-password")

	result, err := svc.Login(context.Background(), models.RoleStudent, dto.LoginRequest{
		Username: "STU20260101000",
		Password: "wrong-password",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
	if result != nil {
		t.Error("no token may be issued on a failed login")
	}
}

func TestLoginUnknownUsername(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), models.RoleStudent, dto.LoginRequest{
		Username: "STU20260101999",
		Password: "whatever",
	})
	if !errors.Is(err, apperrors.ErrAccountNotFound) {
		t.Errorf("err = %v, want ErrAccountNotFound", err)
	}
}

func TestUpdatePasswordIsIdempotent(t *testing.T) {
	svc, repo, _ := newAuthService(t)
	student := seedStudent(t, repo, "STU20260101000", "21-08-2003")

	req := dto.UpdatePasswordRequest{
		Email:           student.Email,
		NewPassword:     "new-secret",
		ConfirmPassword: "new-secret",
	}
	for i := 0; i < 2; i++ {
		if err := svc.UpdatePassword(context.Background(), models.RoleStudent, req); err != nil {
			t.Fatalf("UpdatePassword call %d: %v", i+1, err)
		}
	}

	if !student.PasswordUpdated {
		t.Error("passwordUpdated must be set after an update")
	}
	if !auth.CheckPassword(student.Password, "new-secret") {
		t.Error("new password must verify after repeated updates")
	}
	if auth.CheckPassword(student.Password, "21-08-2003") {
		t.Error("old password must stop working")
	}
}

func TestUpdatePasswordMismatch(t *testing.T) {
	svc, repo, _ := newAuthService(t)
	student := seedStudent(t, repo, "STU20260101000", "21-08-2003")

	err := svc.UpdatePassword(context.Background(), models.RoleStudent, dto.UpdatePasswordRequest{
		Email:           student.Email,
		NewPassword:     "one-thing",
		ConfirmPassword: "another-thing",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("err = %v, want ErrValidationFailed", err)
	}
	if student.PasswordUpdated {
		t.Error("mismatched confirmation must not change the account")
	}
}
