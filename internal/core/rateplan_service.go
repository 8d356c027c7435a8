package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coverledger/go-rating/internal/platform/ids"
)

// RatePlanService is the admin surface for rating configuration. All
// configuration invariants are enforced here, at write time, so the
// quote path can assume plans it reads are well-formed.
type RatePlanService interface {
	Create(ctx context.Context, p RatePlan) (RatePlan, error)
	Update(ctx context.Context, p RatePlan) (RatePlan, error)
	Get(ctx context.Context, code string) (RatePlan, error)
	ListByProduct(ctx context.Context, productCode string) ([]RatePlan, error)

	// SetActive soft-disables (or re-enables) a plan. Disabled plans
	// stop quoting immediately but keep their configuration.
	SetActive(ctx context.Context, code string, active bool) (RatePlan, error)

	// Delete hard-deletes a plan. Refused while any policy or
	// application still references it.
	Delete(ctx context.Context, code string) error
}

type ratePlanService struct {
	products ProductRepo
	plans    RatePlanRepo
	refs     ReferenceCounter
	clock    func() time.Time
}

func NewRatePlanService(products ProductRepo, plans RatePlanRepo, refs ReferenceCounter) RatePlanService {
	return &ratePlanService{
		products: products,
		plans:    plans,
		refs:     refs,
		clock:    time.Now,
	}
}

func (s *ratePlanService) Create(ctx context.Context, p RatePlan) (RatePlan, error) {
	if err := p.Validate(); err != nil {
		return RatePlan{}, err
	}

	if _, err := s.products.GetByID(ctx, p.ProductID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return RatePlan{}, fmt.Errorf("%w: product %q", ErrNotFound, p.ProductID)
		}
		return RatePlan{}, err
	}

	if _, err := s.plans.GetByCode(ctx, p.Code); err == nil {
		return RatePlan{}, fmt.Errorf("%w: plan code %q already exists", ErrConflict, p.Code)
	} else if !errors.Is(err, ErrNotFound) {
		return RatePlan{}, err
	}

	now := s.clock()
	p.ID = ids.New()
	p.Active = true
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.plans.Create(ctx, p); err != nil {
		return RatePlan{}, err
	}
	return p, nil
}

func (s *ratePlanService) Update(ctx context.Context, p RatePlan) (RatePlan, error) {
	existing, err := s.getByCode(ctx, p.Code)
	if err != nil {
		return RatePlan{}, err
	}

	p.ID = existing.ID
	p.ProductID = existing.ProductID
	p.Active = existing.Active
	p.CreatedAt = existing.CreatedAt

	if err := p.Validate(); err != nil {
		return RatePlan{}, err
	}
	p.UpdatedAt = s.clock()

	if err := s.plans.Update(ctx, p); err != nil {
		return RatePlan{}, err
	}
	return p, nil
}

func (s *ratePlanService) Get(ctx context.Context, code string) (RatePlan, error) {
	return s.getByCode(ctx, code)
}

func (s *ratePlanService) ListByProduct(ctx context.Context, productCode string) ([]RatePlan, error) {
	product, err := s.products.GetByCode(ctx, productCode)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrProductNotFound, productCode)
		}
		return nil, err
	}
	return s.plans.ListByProduct(ctx, product.ID)
}

func (s *ratePlanService) SetActive(ctx context.Context, code string, active bool) (RatePlan, error) {
	p, err := s.getByCode(ctx, code)
	if err != nil {
		return RatePlan{}, err
	}

	p.Active = active
	p.UpdatedAt = s.clock()

	if err := s.plans.Update(ctx, p); err != nil {
		return RatePlan{}, err
	}
	return p, nil
}

func (s *ratePlanService) Delete(ctx context.Context, code string) error {
	p, err := s.getByCode(ctx, code)
	if err != nil {
		return err
	}

	refs, err := s.refs.CountPlanReferences(ctx, p.Code)
	if err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("%w: %d reference(s)", ErrPlanInUse, refs)
	}

	return s.plans.Delete(ctx, p.ID)
}

func (s *ratePlanService) getByCode(ctx context.Context, code string) (RatePlan, error) {
	if code == "" {
		return RatePlan{}, fmt.Errorf("%w: missing plan code", ErrValidation)
	}
	p, err := s.plans.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RatePlan{}, fmt.Errorf("%w: %q", ErrPlanNotFound, code)
		}
		return RatePlan{}, err
	}
	return p, nil
}
