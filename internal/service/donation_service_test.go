package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"EquiLearn/internal/model"
	"EquiLearn/internal/pkg"
)

type fakeDonationStore struct {
	needs     map[uint64]*model.Need
	donations []*model.Donation
}

func (f *fakeDonationStore) Create(_ context.Context, d *model.Donation) error {
	d.ID = uint64(len(f.donations) + 1)
	f.donations = append(f.donations, d)
	return nil
}

func (f *fakeDonationStore) CreateDirect(_ context.Context, d *model.Donation) (int64, error) {
	need, ok := f.needs[*d.NeedID]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	if need.Status != model.NeedApproved {
		return 0, fmt.Errorf("need %d is not approved: %w", need.ID, pkg.ErrValidation)
	}
	d.ID = uint64(len(f.donations) + 1)
	f.donations = append(f.donations, d)
	return need.ApplyFunding(d.Amount), nil
}

func (f *fakeDonationStore) ListByDonor(_ context.Context, donorID uint64) ([]model.Donation, error) {
	var out []model.Donation
	for _, d := range f.donations {
		if d.DonorID == donorID {
			out = append(out, *d)
		}
	}
	return out, nil
}

type fakeNeedFinder struct {
	needs map[uint64]*model.Need
}

func (f *fakeNeedFinder) FindByID(_ context.Context, id uint64) (*model.Need, error) {
	need, ok := f.needs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return need, nil
}

type fakeSchoolFinder struct {
	schools map[uint64]*model.School
}

func (f *fakeSchoolFinder) FindByID(_ context.Context, id uint64) (*model.School, error) {
	school, ok := f.schools[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return school, nil
}

type fakeResolver struct {
	users        map[uint64]*model.User
	mintedAnon   int
	lastAnonName string
}

func (f *fakeResolver) ResolveDonor(_ context.Context, userID *uint64, donorName string) (*model.User, error) {
	if userID != nil {
		user, ok := f.users[*userID]
		if !ok {
			return nil, fmt.Errorf("user %d: %w", *userID, pkg.ErrNotFound)
		}
		return user, nil
	}
	f.mintedAnon++
	if donorName == "" {
		donorName = "Anonymous Donor"
	}
	f.lastAnonName = donorName
	return &model.User{ID: 9000 + uint64(f.mintedAnon), Name: donorName, Role: model.RoleDonor}, nil
}

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) Invalidate(_ context.Context) error {
	f.calls++
	return nil
}

func ptr(v uint64) *uint64 { return &v }

func newDonationFixture() (*DonationService, *fakeDonationStore, *fakeResolver, *fakeInvalidator) {
	needs := map[uint64]*model.Need{
		1: {ID: 1, SchoolID: 10, Title: "Chromebooks", TotalNeeded: 5, CurrentDonations: 2, CostPerItem: 300, Status: model.NeedApproved},
		2: {ID: 2, SchoolID: 10, Title: "Pencils", TotalNeeded: 100, CostPerItem: 1, Status: model.NeedPending},
	}
	store := &fakeDonationStore{needs: needs}
	resolver := &fakeResolver{users: map[uint64]*model.User{
		5: {ID: 5, Name: "Dana", Email: "dana@example.com", Role: model.RoleDonor},
	}}
	stats := &fakeInvalidator{}
	svc := &DonationService{
		donations: store,
		needs:     &fakeNeedFinder{needs: needs},
		schools:   &fakeSchoolFinder{schools: map[uint64]*model.School{10: {ID: 10, Name: "Lincoln Elementary"}}},
		resolver:  resolver,
		stats:     stats,
	}
	return svc, store, resolver, stats
}

func TestDonateDirectFundsNeed(t *testing.T) {
	svc, store, _, stats := newDonationFixture()

	result, err := svc.Donate(context.Background(), ptr(5), DonateRequest{
		NeedID:       ptr(1),
		Amount:       900,
		DonationType: model.DonationDirect,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.ItemsFunded)
	assert.Equal(t, int64(5), store.needs[1].CurrentDonations)
	assert.Equal(t, uint64(5), result.Donation.DonorID)
	assert.Equal(t, 1, stats.calls)
}

func TestDonateDirectMissingNeed(t *testing.T) {
	svc, _, _, _ := newDonationFixture()

	_, err := svc.Donate(context.Background(), ptr(5), DonateRequest{
		NeedID:       ptr(404),
		Amount:       100,
		DonationType: model.DonationDirect,
	})
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestDonateDirectUnapprovedNeed(t *testing.T) {
	svc, _, _, _ := newDonationFixture()

	_, err := svc.Donate(context.Background(), ptr(5), DonateRequest{
		NeedID:       ptr(2),
		Amount:       100,
		DonationType: model.DonationDirect,
	})
	assert.ErrorIs(t, err, pkg.ErrValidation)
}

func TestDonateAnonymousMintsDonor(t *testing.T) {
	svc, store, resolver, _ := newDonationFixture()

	result, err := svc.Donate(context.Background(), nil, DonateRequest{
		NeedID:       ptr(1),
		Amount:       300,
		DonationType: model.DonationDirect,
		DonorName:    "Secret Santa",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resolver.mintedAnon)
	assert.Equal(t, "Secret Santa", resolver.lastAnonName)
	assert.Equal(t, int64(1), result.ItemsFunded)
	assert.NotZero(t, store.donations[0].DonorID)
}

func TestDonatePoolSkipsNeedCrediting(t *testing.T) {
	svc, store, _, _ := newDonationFixture()

	result, err := svc.Donate(context.Background(), ptr(5), DonateRequest{
		Amount:       50,
		DonationType: model.DonationPool,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.ItemsFunded)
	assert.Equal(t, int64(2), store.needs[1].CurrentDonations)
}

func TestDonateValidation(t *testing.T) {
	svc, _, _, _ := newDonationFixture()

	_, err := svc.Donate(context.Background(), ptr(5), DonateRequest{Amount: 0, DonationType: model.DonationDirect})
	assert.ErrorIs(t, err, pkg.ErrValidation)

	_, err = svc.Donate(context.Background(), ptr(5), DonateRequest{Amount: -10, DonationType: model.DonationDirect})
	assert.ErrorIs(t, err, pkg.ErrValidation)

	_, err = svc.Donate(context.Background(), ptr(5), DonateRequest{Amount: 10, DonationType: "lottery"})
	assert.ErrorIs(t, err, pkg.ErrValidation)
}

func TestHistoryEnrichesNeedAndSchool(t *testing.T) {
	svc, _, _, _ := newDonationFixture()

	_, err := svc.Donate(context.Background(), ptr(5), DonateRequest{
		NeedID:       ptr(1),
		Amount:       300,
		DonationType: model.DonationDirect,
		Message:      "go team",
	})
	require.NoError(t, err)
	_, err = svc.Donate(context.Background(), ptr(5), DonateRequest{
		Amount:       20,
		DonationType: model.DonationPool,
	})
	require.NoError(t, err)

	views, err := svc.History(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "Chromebooks", views[0].NeedTitle)
	assert.Equal(t, "Lincoln Elementary", views[0].SchoolName)
	assert.Equal(t, "go team", views[0].Message)
	assert.Empty(t, views[1].NeedTitle)
	assert.Empty(t, views[1].SchoolName)
}
