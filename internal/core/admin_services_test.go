package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverledger/go-rating/internal/core"
)

func newAdminServices(refs *fakeRefs) (core.ProductService, core.RatePlanService, *fakeProductRepo, *fakePlanRepo) {
	products := &fakeProductRepo{byID: map[string]core.Product{"prod-1": testProduct()}}
	plans := &fakePlanRepo{plans: []core.RatePlan{testPlan()}}
	return core.NewProductService(products, plans),
		core.NewRatePlanService(products, plans, refs),
		products, plans
}

func TestProductService_CreateRejectsDuplicateCode(t *testing.T) {
	svc, _, _, _ := newAdminServices(&fakeRefs{})

	dup := testProduct()
	dup.ID = ""
	_, err := svc.Create(context.Background(), dup)
	assert.ErrorIs(t, err, core.ErrConflict)
}

func TestProductService_CreateAssignsIDAndActivates(t *testing.T) {
	svc, _, _, _ := newAdminServices(&fakeRefs{})

	p := testProduct()
	p.ID = ""
	p.Code = "health-plus"
	created, err := svc.Create(context.Background(), p)

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Active)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestProductService_DeleteRefusedWhilePlansExist(t *testing.T) {
	svc, _, _, _ := newAdminServices(&fakeRefs{})

	err := svc.Delete(context.Background(), "term-life")
	assert.ErrorIs(t, err, core.ErrConflict)
}

func TestProductService_DeleteAfterPlansRemoved(t *testing.T) {
	svc, _, products, plans := newAdminServices(&fakeRefs{})
	plans.plans = nil

	require.NoError(t, svc.Delete(context.Background(), "term-life"))
	_, err := products.GetByCode(context.Background(), "term-life")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRatePlanService_CreateValidatesConfiguration(t *testing.T) {
	_, svc, _, _ := newAdminServices(&fakeRefs{})

	bad := testPlan()
	bad.Code = "broken-plan"
	bad.Rates.AgeBands[1].MinAge = 27 // gap after [18,25]

	_, err := svc.Create(context.Background(), bad)
	assert.ErrorIs(t, err, core.ErrInvalidConfig)
}

func TestRatePlanService_CreateRequiresExistingProduct(t *testing.T) {
	_, svc, _, _ := newAdminServices(&fakeRefs{})

	p := testPlan()
	p.Code = "orphan"
	p.ProductID = "missing"

	_, err := svc.Create(context.Background(), p)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRatePlanService_SetActiveSoftDisables(t *testing.T) {
	_, svc, _, plans := newAdminServices(&fakeRefs{})

	updated, err := svc.SetActive(context.Background(), "term-life-10", false)
	require.NoError(t, err)
	assert.False(t, updated.Active)

	// Configuration survives the disable.
	stored, err := plans.GetByCode(context.Background(), "term-life-10")
	require.NoError(t, err)
	assert.False(t, stored.Active)
	assert.Equal(t, "1200", stored.Base.Annual.String())
}

func TestRatePlanService_DeleteRefusedWhileReferenced(t *testing.T) {
	_, svc, _, _ := newAdminServices(&fakeRefs{count: 3})

	err := svc.Delete(context.Background(), "term-life-10")
	assert.ErrorIs(t, err, core.ErrConflict)
}

func TestRatePlanService_DeleteWithoutReferences(t *testing.T) {
	_, svc, _, plans := newAdminServices(&fakeRefs{count: 0})

	require.NoError(t, svc.Delete(context.Background(), "term-life-10"))
	_, err := plans.GetByCode(context.Background(), "term-life-10")
	assert.ErrorIs(t, err, core.ErrNotFound)
}
