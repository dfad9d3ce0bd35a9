package feedback

import (
	"context"
	"strings"

	"mfgops-be/internal/auth"
)

type Service interface {
	Create(ctx context.Context, identity auth.Identity, params CreateFeedbackParams) (*Feedback, error)
	MyFeedback(ctx context.Context, identity auth.Identity) ([]*Feedback, error)
	CompanyFeedback(ctx context.Context, identity auth.Identity) ([]*Feedback, error)
	Resolve(ctx context.Context, identity auth.Identity, id int64) (*Feedback, error)
	Delete(ctx context.Context, identity auth.Identity, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(
	ctx context.Context,
	identity auth.Identity,
	params CreateFeedbackParams,
) (*Feedback, error) {

	if strings.TrimSpace(params.Message) == "" {
		return nil, ErrMessageRequired
	}
	return s.repo.Create(ctx, identity.UserID, identity.CompanyID, params.Message)
}

func (s *service) MyFeedback(ctx context.Context, identity auth.Identity) ([]*Feedback, error) {
	return s.repo.GetByUserID(ctx, identity.UserID)
}

func (s *service) CompanyFeedback(ctx context.Context, identity auth.Identity) ([]*Feedback, error) {
	return s.repo.GetByCompanyID(ctx, identity.CompanyID)
}

func (s *service) Resolve(ctx context.Context, identity auth.Identity, id int64) (*Feedback, error) {
	f, err := s.repo.MarkResolved(ctx, id, identity.CompanyID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrFeedbackNotFound
	}
	return f, nil
}

func (s *service) Delete(ctx context.Context, identity auth.Identity, id int64) error {
	return s.repo.Delete(ctx, id, identity.UserID)
}
