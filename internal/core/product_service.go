package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coverledger/go-rating/internal/platform/ids"
)

// ProductService is the admin surface for product configuration.
type ProductService interface {
	Create(ctx context.Context, p Product) (Product, error)
	Update(ctx context.Context, p Product) (Product, error)
	Get(ctx context.Context, code string) (Product, error)
	List(ctx context.Context) ([]Product, error)

	// Delete hard-deletes a product. Refused while the product still
	// owns any rate plan.
	Delete(ctx context.Context, code string) error
}

type productService struct {
	products ProductRepo
	plans    RatePlanRepo
	clock    func() time.Time
}

func NewProductService(products ProductRepo, plans RatePlanRepo) ProductService {
	return &productService{
		products: products,
		plans:    plans,
		clock:    time.Now,
	}
}

func (s *productService) Create(ctx context.Context, p Product) (Product, error) {
	if err := p.Validate(); err != nil {
		return Product{}, err
	}

	if _, err := s.products.GetByCode(ctx, p.Code); err == nil {
		return Product{}, fmt.Errorf("%w: %q", ErrProductExists, p.Code)
	} else if !errors.Is(err, ErrNotFound) {
		return Product{}, err
	}

	now := s.clock()
	p.ID = ids.New()
	p.Active = true
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.products.Create(ctx, p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *productService) Update(ctx context.Context, p Product) (Product, error) {
	if err := p.Validate(); err != nil {
		return Product{}, err
	}

	existing, err := s.products.GetByCode(ctx, p.Code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Product{}, fmt.Errorf("%w: %q", ErrProductNotFound, p.Code)
		}
		return Product{}, err
	}

	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = s.clock()

	if err := s.products.Update(ctx, p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *productService) Get(ctx context.Context, code string) (Product, error) {
	if code == "" {
		return Product{}, fmt.Errorf("%w: missing product code", ErrValidation)
	}
	p, err := s.products.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Product{}, fmt.Errorf("%w: %q", ErrProductNotFound, code)
		}
		return Product{}, err
	}
	return p, nil
}

func (s *productService) List(ctx context.Context) ([]Product, error) {
	return s.products.List(ctx)
}

func (s *productService) Delete(ctx context.Context, code string) error {
	p, err := s.products.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: %q", ErrProductNotFound, code)
		}
		return err
	}

	plans, err := s.plans.ListByProduct(ctx, p.ID)
	if err != nil {
		return err
	}
	if len(plans) > 0 {
		return fmt.Errorf("%w: %q owns %d plan(s)", ErrProductHasPlans, code, len(plans))
	}

	return s.products.Delete(ctx, p.ID)
}
