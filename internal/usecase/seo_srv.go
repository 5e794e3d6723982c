package usecase

import (
	"context"
	"fmt"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/data/repository"
	"rental-booking/internal/dto/request"
	"rental-booking/internal/dto/response"
	"rental-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SeoService manages the per-page metadata served to the storefront.
type SeoService interface {
	GetByPath(ctx context.Context, pagePath string) (*response.PageMetaResponse, error)
	ListAll(ctx context.Context) ([]response.PageMetaResponse, error)
	Upsert(ctx context.Context, req *request.UpsertPageMetaRequest) (*response.PageMetaResponse, error)
	Delete(ctx context.Context, pageMetaID string) error
}

type seoService struct {
	pageMeta repository.PageMetaRepository
	log      *zap.Logger
}

func NewSeoService(pageMeta repository.PageMetaRepository, log *zap.Logger) SeoService {
	return &seoService{
		pageMeta: pageMeta,
		log:      log.With(zap.String("service", "seo")),
	}
}

func (s *seoService) GetByPath(ctx context.Context, pagePath string) (*response.PageMetaResponse, error) {
	if pagePath == "" {
		return nil, fmt.Errorf("validation failed: path is required")
	}

	meta, err := s.pageMeta.FindByPath(ctx, pagePath)
	if err != nil {
		return nil, fmt.Errorf("load page meta %s: %w", pagePath, err)
	}
	if meta == nil {
		return nil, fmt.Errorf("page meta not found: %s", pagePath)
	}

	resp := response.PageMetaToResponse(meta)
	return &resp, nil
}

func (s *seoService) ListAll(ctx context.Context) ([]response.PageMetaResponse, error) {
	metas, err := s.pageMeta.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list page meta", zap.Error(err))
		return nil, fmt.Errorf("list page meta: %w", err)
	}

	responses := make([]response.PageMetaResponse, len(metas))
	for i, meta := range metas {
		responses[i] = response.PageMetaToResponse(meta)
	}

	return responses, nil
}

func (s *seoService) Upsert(ctx context.Context, req *request.UpsertPageMetaRequest) (*response.PageMetaResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Upsert page meta validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	meta := &entity.PageMeta{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PagePath:    req.PagePath,
		Title:       req.Title,
		Description: req.Description,
		OGImageURL:  req.OGImageURL,
	}

	if err := s.pageMeta.Upsert(ctx, meta); err != nil {
		return nil, fmt.Errorf("upsert page meta: %w", err)
	}

	s.log.Info("Page meta upserted", zap.String("page_path", req.PagePath))

	resp := response.PageMetaToResponse(meta)
	return &resp, nil
}

func (s *seoService) Delete(ctx context.Context, pageMetaID string) error {
	id, err := uuid.Parse(pageMetaID)
	if err != nil {
		return fmt.Errorf("invalid page meta ID format %s: %w", pageMetaID, err)
	}

	if err := s.pageMeta.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete page meta %s: %w", pageMetaID, err)
	}

	return nil
}
