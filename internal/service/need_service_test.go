package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"EquiLearn/internal/model"
	"EquiLearn/internal/pkg"
)

type fakeNeedStore struct {
	rows   map[uint64]*model.Need
	nextID uint64
}

func (f *fakeNeedStore) Create(_ context.Context, need *model.Need) error {
	f.nextID++
	need.ID = f.nextID
	need.CreatedAt = time.Now()
	f.rows[need.ID] = need
	return nil
}

func (f *fakeNeedStore) ListByStatus(_ context.Context, status model.NeedStatus) ([]model.Need, error) {
	var out []model.Need
	for _, n := range f.rows {
		if n.Status == status {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNeedStore) UpdateStatus(_ context.Context, id uint64, status model.NeedStatus) error {
	n, ok := f.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	n.Status = status
	return nil
}

func newNeedFixture() (*NeedService, *fakeNeedStore) {
	store := &fakeNeedStore{rows: map[uint64]*model.Need{}}
	svc := &NeedService{
		needs:   store,
		schools: &fakeSchoolFinder{schools: map[uint64]*model.School{10: {ID: 10, Name: "Lincoln Elementary"}}},
	}
	return svc, store
}

func TestCreateNeedStartsPending(t *testing.T) {
	svc, store := newNeedFixture()

	need, err := svc.CreateNeed(context.Background(), &model.Need{
		SchoolID:         10,
		Title:            "Chromebooks",
		Description:      "Laptops for the computer lab",
		Category:         "technology",
		Urgency:          "high",
		TotalNeeded:      5,
		CostPerItem:      300,
		CurrentDonations: 99,                 // client-supplied progress is discarded
		Status:           model.NeedApproved, // so is client-supplied status
	})
	require.NoError(t, err)
	assert.Equal(t, model.NeedPending, need.Status)
	assert.Equal(t, int64(0), need.CurrentDonations)
	assert.Equal(t, model.NeedPending, store.rows[need.ID].Status)
}

func TestCreateNeedValidation(t *testing.T) {
	svc, _ := newNeedFixture()

	_, err := svc.CreateNeed(context.Background(), &model.Need{SchoolID: 10, Title: "x"})
	assert.ErrorIs(t, err, pkg.ErrValidation)

	_, err = svc.CreateNeed(context.Background(), &model.Need{
		SchoolID: 10, Title: "x", Description: "y", Category: "z", Urgency: "high",
		TotalNeeded: 0, CostPerItem: 300,
	})
	assert.ErrorIs(t, err, pkg.ErrValidation)

	_, err = svc.CreateNeed(context.Background(), &model.Need{
		SchoolID: 10, Title: "x", Description: "y", Category: "z", Urgency: "high",
		TotalNeeded: 5, CostPerItem: -1,
	})
	assert.ErrorIs(t, err, pkg.ErrValidation)
}

func TestListPendingIncludesSchoolName(t *testing.T) {
	svc, _ := newNeedFixture()

	_, err := svc.CreateNeed(context.Background(), &model.Need{
		SchoolID: 10, Title: "Chromebooks", Description: "d", Category: "technology",
		Urgency: "high", TotalNeeded: 5, CostPerItem: 300,
	})
	require.NoError(t, err)

	pending, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Lincoln Elementary", pending[0].SchoolName)
	assert.Equal(t, 1500.0, pending[0].TotalCost)
}

func TestApproveAndReject(t *testing.T) {
	svc, store := newNeedFixture()
	store.rows[1] = &model.Need{ID: 1, Status: model.NeedPending}
	store.rows[2] = &model.Need{ID: 2, Status: model.NeedPending}
	store.nextID = 2

	require.NoError(t, svc.Approve(context.Background(), 1))
	assert.Equal(t, model.NeedApproved, store.rows[1].Status)

	require.NoError(t, svc.Reject(context.Background(), 2))
	assert.Equal(t, model.NeedRejected, store.rows[2].Status)
}

func TestTransitionMissingNeed(t *testing.T) {
	svc, _ := newNeedFixture()

	err := svc.Approve(context.Background(), 404)
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	err = svc.Reject(context.Background(), 404)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}
