package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"doer/internal/domain"
	"doer/internal/ports"
	portsmocks "doer/internal/ports/mocks"
)

func TestMigrationService_UpgradeContext(t *testing.T) {
	ctx := context.Background()
	y2019 := domain.Year{domain.NewDate(2019, time.May, 2): {Priorities: []domain.Priority{domain.NewPriority("A")}}}
	y2020 := domain.Year{}

	repo := portsmocks.NewMockDayRepository(t)
	repo.EXPECT().Years(ctx).Return([]int{2019, 2020}, nil)
	repo.EXPECT().Year(ctx, 2019).Return(y2019, nil)
	repo.EXPECT().Year(ctx, 2020).Return(y2020, nil)
	repo.EXPECT().SetYear(ctx, 2019, y2019).Return(nil).Once()
	repo.EXPECT().SetYear(ctx, 2020, y2020).Return(nil).Once()
	repo.EXPECT().Close().Return(nil)

	service := NewMigrationService(mockFactory(map[string]ports.DayRepository{"work": repo}))
	result, err := service.UpgradeContext(ctx, "work")

	require.NoError(t, err)
	assert.Equal(t, []int{2019, 2020}, result.Years)
}

func TestMigrationService_UpgradeStopsOnCorruptYear(t *testing.T) {
	ctx := context.Background()
	corrupt := &domain.CorruptDataError{Reason: "bad"}

	repo := portsmocks.NewMockDayRepository(t)
	repo.EXPECT().Years(ctx).Return([]int{2019, 2020}, nil)
	repo.EXPECT().Year(ctx, 2019).Return(nil, corrupt)
	repo.EXPECT().Close().Return(nil)

	service := NewMigrationService(mockFactory(map[string]ports.DayRepository{"work": repo}))
	result, err := service.UpgradeContext(ctx, "work")

	assert.ErrorIs(t, err, domain.ErrCorruptData)
	assert.Empty(t, result.Years)
}

func TestMigrationService_MergeContexts(t *testing.T) {
	ctx := context.Background()
	d1 := domain.NewDate(2024, time.March, 1)
	d2 := domain.NewDate(2024, time.March, 2)
	sourceDay := domain.Day{Priorities: []domain.Priority{domain.NewPriority("from home")}}
	destDay := domain.Day{Priorities: []domain.Priority{domain.NewPriority("at work")}}

	source := portsmocks.NewMockDayRepository(t)
	source.EXPECT().Years(ctx).Return([]int{2024}, nil)
	source.EXPECT().Year(ctx, 2024).Return(domain.Year{d1: sourceDay, d2: sourceDay}, nil)
	source.EXPECT().Close().Return(nil)

	dest := portsmocks.NewMockDayRepository(t)
	dest.EXPECT().Year(ctx, 2024).Return(domain.Year{d1: destDay}, nil)
	dest.EXPECT().SetYear(ctx, 2024, domain.Year{d1: destDay, d2: sourceDay}).Return(nil).Once()
	dest.EXPECT().Close().Return(nil)

	service := NewMigrationService(mockFactory(map[string]ports.DayRepository{"home": source, "work": dest}))
	result, err := service.MergeContexts(ctx, MergeContextsParams{Source: "home", Dest: "work"})

	require.NoError(t, err)
	assert.Equal(t, &MergeContextsResult{CopiedDays: 1, SkippedDays: 1}, result)
}

func TestMigrationService_MergeContextsOverwrite(t *testing.T) {
	ctx := context.Background()
	d1 := domain.NewDate(2024, time.March, 1)
	sourceDay := domain.Day{Notes: []string{"home"}}

	source := portsmocks.NewMockDayRepository(t)
	source.EXPECT().Years(ctx).Return([]int{2024}, nil)
	source.EXPECT().Year(ctx, 2024).Return(domain.Year{d1: sourceDay}, nil)
	source.EXPECT().Close().Return(nil)

	dest := portsmocks.NewMockDayRepository(t)
	dest.EXPECT().Year(ctx, 2024).Return(domain.Year{d1: {Notes: []string{"work"}}}, nil)
	dest.EXPECT().SetYear(ctx, 2024, domain.Year{d1: sourceDay}).Return(nil).Once()
	dest.EXPECT().Close().Return(nil)

	service := NewMigrationService(mockFactory(map[string]ports.DayRepository{"home": source, "work": dest}))
	result, err := service.MergeContexts(ctx, MergeContextsParams{Source: "home", Dest: "work", Overwrite: true})

	require.NoError(t, err)
	assert.Equal(t, 1, result.CopiedDays)
}

func TestMigrationService_MergeNothingNewWritesNothing(t *testing.T) {
	ctx := context.Background()
	d1 := domain.NewDate(2024, time.March, 1)
	day := domain.Day{Notes: []string{"x"}}

	source := portsmocks.NewMockDayRepository(t)
	source.EXPECT().Years(ctx).Return([]int{2024}, nil)
	source.EXPECT().Year(ctx, 2024).Return(domain.Year{d1: day}, nil)
	source.EXPECT().Close().Return(nil)

	dest := portsmocks.NewMockDayRepository(t)
	dest.EXPECT().Year(ctx, 2024).Return(domain.Year{d1: day}, nil)
	dest.EXPECT().Close().Return(nil)

	service := NewMigrationService(mockFactory(map[string]ports.DayRepository{"home": source, "work": dest}))
	result, err := service.MergeContexts(ctx, MergeContextsParams{Source: "home", Dest: "work"})

	require.NoError(t, err)
	assert.Equal(t, &MergeContextsResult{SkippedDays: 1}, result)
	dest.AssertNotCalled(t, "SetYear", mock.Anything, mock.Anything, mock.Anything)
}

func TestMigrationService_MergeErrors(t *testing.T) {
	ctx := context.Background()
	service := NewMigrationService(mockFactory(nil))

	_, err := service.MergeContexts(ctx, MergeContextsParams{Source: "work", Dest: "work"})
	assert.Error(t, err)

	_, err = service.MergeContexts(ctx, MergeContextsParams{Source: "../x", Dest: "work"})
	assert.True(t, errors.Is(err, domain.ErrInvalidContext))
}
