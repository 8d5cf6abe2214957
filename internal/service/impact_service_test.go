package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"EquiLearn/internal/model"
)

type fakeSummer struct{ total float64 }

func (f *fakeSummer) SumAmount(_ context.Context) (float64, error) { return f.total, nil }

type fakeSchoolCounter struct{ verified int64 }

func (f *fakeSchoolCounter) CountVerified(_ context.Context) (int64, error) { return f.verified, nil }

type fakeNeedCounter struct{ approved int64 }

func (f *fakeNeedCounter) CountByStatus(_ context.Context, status model.NeedStatus) (int64, error) {
	if status == model.NeedApproved {
		return f.approved, nil
	}
	return 0, nil
}

type fakeStatsCache struct {
	stored *ImpactStats
	gets   int
	sets   int
}

func (f *fakeStatsCache) Get(_ context.Context, dst any) (bool, error) {
	f.gets++
	if f.stored == nil {
		return false, nil
	}
	*dst.(*ImpactStats) = *f.stored
	return true, nil
}

func (f *fakeStatsCache) Set(_ context.Context, stats any) error {
	f.sets++
	s := *stats.(*ImpactStats)
	f.stored = &s
	return nil
}

func TestStatsComputesAggregates(t *testing.T) {
	cache := &fakeStatsCache{}
	svc := &ImpactService{
		donations: &fakeSummer{total: 1250.50},
		schools:   &fakeSchoolCounter{verified: 4},
		needs:     &fakeNeedCounter{approved: 7},
		cache:     cache,
	}

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1250.50, stats.TotalDonations)
	assert.Equal(t, int64(4), stats.SchoolsHelped)
	assert.Equal(t, int64(7), stats.NeedsFunded)
	assert.Equal(t, int64(12), stats.StudentsImpacted) // floor(1250.50/100)
	assert.Equal(t, 1, cache.sets)
}

func TestStatsEmptyStore(t *testing.T) {
	svc := &ImpactService{
		donations: &fakeSummer{},
		schools:   &fakeSchoolCounter{},
		needs:     &fakeNeedCounter{},
		cache:     &fakeStatsCache{},
	}

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalDonations)
	assert.Zero(t, stats.SchoolsHelped)
	assert.Zero(t, stats.NeedsFunded)
	assert.Zero(t, stats.StudentsImpacted)
}

func TestStatsServesFromCache(t *testing.T) {
	cache := &fakeStatsCache{stored: &ImpactStats{TotalDonations: 999}}
	svc := &ImpactService{
		donations: &fakeSummer{total: 1},
		schools:   &fakeSchoolCounter{verified: 1},
		needs:     &fakeNeedCounter{approved: 1},
		cache:     cache,
	}

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 999.0, stats.TotalDonations)
	assert.Zero(t, cache.sets)
}
