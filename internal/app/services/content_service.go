package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/app/models/dto"
	"github.com/rsharma/collegium/internal/app/repositories"
)

// ContentService manages notices, study materials and student feedback
type ContentService struct {
	noticeRepo   repositories.NoticeRepository
	materialRepo repositories.StudyMaterialRepository
	feedbackRepo repositories.FeedbackRepository
	logger       zerolog.Logger
}

// NewContentService creates a new ContentService
func NewContentService(
	noticeRepo repositories.NoticeRepository,
	materialRepo repositories.StudyMaterialRepository,
	feedbackRepo repositories.FeedbackRepository,
	logger zerolog.Logger,
) *ContentService {
	return &ContentService{
		noticeRepo:   noticeRepo,
		materialRepo: materialRepo,
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

// CreateNotice publishes a notice; resubmitting the same (topic, content,
// date) tuple is a duplicate.
func (s *ContentService) CreateNotice(ctx context.Context, req dto.CreateNoticeRequest) (*models.Notice, error) {
	notice := &models.Notice{
		From:      req.From,
		Topic:     req.Topic,
		Content:   req.Content,
		Date:      req.Date,
		NoticeFor: req.NoticeFor,
	}

	if err := s.noticeRepo.Create(ctx, notice); err != nil {
		return nil, err
	}

	s.logger.Info().Str("topic", notice.Topic).Msg("Notice published")
	return notice, nil
}

// GetNotices lists every notice, newest first
func (s *ContentService) GetNotices(ctx context.Context) ([]*models.Notice, error) {
	return s.noticeRepo.List(ctx)
}

// AddStudyMaterial shares a document with a class
func (s *ContentService) AddStudyMaterial(ctx context.Context, req dto.AddStudyMaterialRequest) (*models.StudyMaterial, error) {
	material := &models.StudyMaterial{
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
		Subject:     req.Subject,
		Department:  req.Department,
		Year:        req.Year,
		Section:     req.Section,
	}

	if err := s.materialRepo.Create(ctx, material); err != nil {
		return nil, err
	}

	s.logger.Info().Str("title", material.Title).Msg("Study material shared")
	return material, nil
}

// GetStudyMaterials lists documents shared with a class
func (s *ContentService) GetStudyMaterials(ctx context.Context, department string, year int, section string) ([]*models.StudyMaterial, error) {
	return s.materialRepo.ListByClass(ctx, department, year, section)
}

// SubmitFeedback records a student's feedback about a subject
func (s *ContentService) SubmitFeedback(ctx context.Context, studentID int64, req dto.SubmitFeedbackRequest) (*models.Feedback, error) {
	feedback := &models.Feedback{
		StudentID: studentID,
		Subject:   req.Subject,
		Content:   req.Content,
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

// GetFeedback lists a student's submitted feedback, newest first
func (s *ContentService) GetFeedback(ctx context.Context, studentID int64) ([]*models.Feedback, error) {
	return s.feedbackRepo.ListByStudent(ctx, studentID)
}
