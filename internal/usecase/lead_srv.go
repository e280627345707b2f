package usecase

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LeadService interface {
	// Public intake
	CreateLead(ctx context.Context, req *request.CreateLeadRequest) (*response.LeadResponse, error)

	// Staff endpoints
	GetLeads(ctx context.Context, pg *request.PaginatedRequest) ([]response.LeadResponse, error)
	UpdateLeadStatus(ctx context.Context, leadID string, req *request.UpdateLeadStatusRequest) error
}

type leadService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewLeadService(repo *repository.Repository, log *zap.Logger) LeadService {
	return &leadService{
		repo: repo,
		log:  log.With(zap.String("service", "lead")),
	}
}

func (s *leadService) CreateLead(ctx context.Context, req *request.CreateLeadRequest) (*response.LeadResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create lead validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	phone, err := utils.NormalizePhone("phone", req.Phone)
	if err != nil {
		s.log.Warn("Lead phone rejected", zap.String("phone", req.Phone))
		return nil, err
	}

	lead := &entity.Lead{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:    req.Name,
		Phone:   phone,
		Email:   req.Email,
		Message: req.Message,
		Source:  entity.LeadSource(req.Source),
		Status:  entity.LeadStatusNew,
	}

	if err := s.repo.Lead.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}

	s.log.Info("Lead created",
		zap.String("lead_id", lead.ID.String()),
		zap.String("source", req.Source),
	)

	resp := response.LeadToResponse(lead)
	return &resp, nil
}

func (s *leadService) GetLeads(ctx context.Context, pg *request.PaginatedRequest) ([]response.LeadResponse, error) {
	leads, err := s.repo.Lead.FindAll(ctx, pg.Limit(), pg.Offset())
	if err != nil {
		s.log.Error("Failed to list leads", zap.Error(err))
		return nil, fmt.Errorf("list leads: %w", err)
	}

	responses := make([]response.LeadResponse, len(leads))
	for i, lead := range leads {
		responses[i] = response.LeadToResponse(lead)
	}

	return responses, nil
}

func (s *leadService) UpdateLeadStatus(ctx context.Context, leadID string, req *request.UpdateLeadStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(leadID)
	if err != nil {
		return fmt.Errorf("invalid lead ID format %s: %w", leadID, err)
	}

	if err := s.repo.Lead.UpdateStatus(ctx, id, entity.LeadStatus(req.Status)); err != nil {
		return fmt.Errorf("update lead status: %w", err)
	}

	s.log.Info("Lead status updated",
		zap.String("lead_id", leadID),
		zap.String("status", req.Status),
	)

	return nil
}
