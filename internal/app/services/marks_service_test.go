package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/app/models/dto"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
)

func newMarksFixture() (*MarksService, *fakeMarksRepo, *fakeTestRepo) {
	testRepo := &fakeTestRepo{tests: []*models.Test{
		{ID: 1, SubjectCode: "CS201", Department: "CSE", Year: "2", Section: "A", Name: "Midterm", TotalMarks: 50},
	}, nextID: 1}
	marksRepo := &fakeMarksRepo{}
	studentRepo := &fakeStudentRepo{students: []*models.Student{
		{ID: 1, Name: "A", Department: "CSE", Year: 2, Section: "A"},
	}, nextID: 1}
	svc := NewMarksService(marksRepo, testRepo, studentRepo, zerolog.Nop())
	return svc, marksRepo, testRepo
}

func uploadReq(marks ...dto.MarkEntry) dto.UploadMarksRequest {
	return dto.UploadMarksRequest{
		Department: "CSE",
		Year:       "2",
		Section:    "A",
		Test:       "Midterm",
		Marks:      marks,
	}
}

func TestUploadMarks(t *testing.T) {
	svc, repo, _ := newMarksFixture()

	err := svc.UploadMarks(context.Background(), uploadReq(
		dto.MarkEntry{StudentID: 1, Value: 42},
		dto.MarkEntry{StudentID: 2, Value: 35},
	))
	if err != nil {
		t.Fatalf("UploadMarks: %v", err)
	}
	if len(repo.marks) != 2 {
		t.Errorf("stored rows = %d, want 2", len(repo.marks))
	}
}

func TestUploadMarksRejectedWholesaleOnSecondUpload(t *testing.T) {
	svc, repo, _ := newMarksFixture()

	if err := svc.UploadMarks(context.Background(), uploadReq(dto.MarkEntry{StudentID: 1, Value: 42})); err != nil {
		t.Fatalf("first upload: %v", err)
	}

	err := svc.UploadMarks(context.Background(), uploadReq(
		dto.MarkEntry{StudentID: 2, Value: 35},
		dto.MarkEntry{StudentID: 3, Value: 29},
	))
	if !errors.Is(err, apperrors.ErrMarksAlreadyUploaded) {
		t.Fatalf("err = %v, want ErrMarksAlreadyUploaded", err)
	}
	// The original row survives untouched and nothing new was written
	if len(repo.marks) != 1 || repo.marks[0].StudentID != 1 || repo.marks[0].Marks != 42 {
		t.Errorf("existing rows changed by rejected upload: %+v", repo.marks)
	}
}

func TestUploadMarksDuplicateStudentInBatch(t *testing.T) {
	svc, repo, _ := newMarksFixture()

	err := svc.UploadMarks(context.Background(), uploadReq(
		dto.MarkEntry{StudentID: 1, Value: 42},
		dto.MarkEntry{StudentID: 1, Value: 17},
	))
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
	if len(repo.marks) != 0 {
		t.Error("a rejected batch must not write any rows")
	}
}

func TestUploadMarksUnknownTest(t *testing.T) {
	svc, _, _ := newMarksFixture()

	req := uploadReq(dto.MarkEntry{StudentID: 1, Value: 42})
	req.Test = "Final"
	if err := svc.UploadMarks(context.Background(), req); !errors.Is(err, apperrors.ErrTestNotFound) {
		t.Errorf("err = %v, want ErrTestNotFound", err)
	}
}

func TestTestResultsJoinsMarksAndTests(t *testing.T) {
	svc, marksRepo, testRepo := newMarksFixture()
	testRepo.tests = append(testRepo.tests, &models.Test{
		ID: 2, SubjectCode: "CS202", Department: "CSE", Year: "2", Section: "A", Name: "Final", TotalMarks: 100,
	})
	marksRepo.marks = []*models.Marks{
		{ID: 1, StudentID: 1, TestID: 1, Marks: 42},
	}

	rows, err := svc.TestResults(context.Background(), 1)
	if err != nil {
		t.Fatalf("TestResults: %v", err)
	}
	// Only the test with an uploaded mark appears
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	want := dto.TestResultRow{Marks: 42, TotalMarks: 50, SubjectCode: "CS201", TestName: "Midterm"}
	if rows[0] != want {
		t.Errorf("row = %+v, want %+v", rows[0], want)
	}
}
