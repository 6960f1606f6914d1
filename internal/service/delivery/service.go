package delivery

import (
	"context"
	"time"

	"ecommerce-backend/internal/domain"
	deliveryrepo "ecommerce-backend/internal/repository/delivery"
)

type Service struct {
	repo deliveryrepo.Repository
	now  func() time.Time
}

func New(repo deliveryrepo.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]domain.DeliveryOption, error) {
	opts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = []domain.DeliveryOption{}
	}
	return opts, nil
}

// ListWithEstimates returns every option with the delivery time it would give
// an order placed now.
func (s *Service) ListWithEstimates(ctx context.Context) ([]domain.DeliveryOptionEstimate, error) {
	opts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	nowMs := s.now().UnixMilli()
	out := make([]domain.DeliveryOptionEstimate, 0, len(opts))
	for _, o := range opts {
		out = append(out, domain.DeliveryOptionEstimate{
			DeliveryOption:          o,
			EstimatedDeliveryTimeMs: o.EstimatedDeliveryMs(nowMs),
		})
	}
	return out, nil
}
