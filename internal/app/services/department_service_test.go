package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rsharma/collegium/internal/pkg/apperrors"
)

func TestAddDepartmentCodesAreSequential(t *testing.T) {
	svc := NewDepartmentService(&fakeDepartmentRepo{}, zerolog.Nop())

	for i, name := range []string{"CSE", "ECE", "ME"} {
		department, err := svc.AddDepartment(context.Background(), name)
		if err != nil {
			t.Fatalf("AddDepartment(%s): %v", name, err)
		}
		want := []string{"01", "02", "03"}[i]
		if department.Code != want {
			t.Errorf("%s code = %q, want %q", name, department.Code, want)
		}
	}
}

func TestAddDepartmentCodeNotReusedAfterDelete(t *testing.T) {
	repo := &fakeDepartmentRepo{}
	svc := NewDepartmentService(repo, zerolog.Nop())

	for _, name := range []string{"CSE", "ECE"} {
		if _, err := svc.AddDepartment(context.Background(), name); err != nil {
			t.Fatalf("AddDepartment(%s): %v", name, err)
		}
	}
	if err := svc.DeleteDepartment(context.Background(), "CSE"); err != nil {
		t.Fatalf("DeleteDepartment: %v", err)
	}

	department, err := svc.AddDepartment(context.Background(), "ME")
	if err != nil {
		t.Fatalf("AddDepartment(ME): %v", err)
	}
	// "01" belonged to the deleted CSE; the new department moves past "02"
	if department.Code != "03" {
		t.Errorf("code = %q, want %q", department.Code, "03")
	}
}

func TestAddDepartmentDuplicateName(t *testing.T) {
	svc := NewDepartmentService(&fakeDepartmentRepo{}, zerolog.Nop())

	if _, err := svc.AddDepartment(context.Background(), "CSE"); err != nil {
		t.Fatalf("first AddDepartment: %v", err)
	}
	if _, err := svc.AddDepartment(context.Background(), "CSE"); !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
		t.Errorf("err = %v, want ErrDepartmentAlreadyExists", err)
	}
}

func TestDeleteDepartmentUnknown(t *testing.T) {
	svc := NewDepartmentService(&fakeDepartmentRepo{}, zerolog.Nop())

	if err := svc.DeleteDepartment(context.Background(), "Nope"); !errors.Is(err, apperrors.ErrDepartmentNotFound) {
		t.Errorf("err = %v, want ErrDepartmentNotFound", err)
	}
}
