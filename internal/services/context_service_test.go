package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"doer/internal/config"
	"doer/internal/domain"
	"doer/internal/ports"
	portsmocks "doer/internal/ports/mocks"
	servicesmocks "doer/internal/services/mocks"
)

func setupStoreRoot(t *testing.T, contexts ...string) string {
	root := t.TempDir()
	for _, name := range contexts {
		require.NoError(t, os.Mkdir(filepath.Join(root, name), 0755))
	}
	return root
}

func mockFactory(repos map[string]ports.DayRepository) ports.DayRepositoryFactory {
	return func(name string) (ports.DayRepository, error) {
		repo, ok := repos[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidContext, name)
		}
		return repo, nil
	}
}

func TestContextService_ListIncludesCurrent(t *testing.T) {
	root := setupStoreRoot(t, "work", "personal")

	service := NewContextService(root, "default", nil, nil)
	names, err := service.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"default", "personal", "work"}, names)
	assert.Equal(t, "default", service.Current())
}

func TestContextService_ListEmptyRoot(t *testing.T) {
	service := NewContextService(filepath.Join(t.TempDir(), "missing"), "default", nil, nil)

	names, err := service.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"default"}, names)
}

func TestContextService_Set(t *testing.T) {
	repo := portsmocks.NewMockDayRepository(t)
	repo.EXPECT().Close().Return(nil)

	settings := servicesmocks.NewMockSettingsStore(t)
	settings.EXPECT().Load().Return(&config.Settings{DataDir: "/data"}, nil)
	settings.EXPECT().Save(&config.Settings{DataDir: "/data", Context: "personal"}).Return(nil).Once()

	service := NewContextService(t.TempDir(), "work", mockFactory(map[string]ports.DayRepository{"personal": repo}), settings)
	err := service.Set(context.Background(), "personal")

	require.NoError(t, err)
	assert.Equal(t, "personal", service.Current())
}

func TestContextService_SetInvalidName(t *testing.T) {
	settings := servicesmocks.NewMockSettingsStore(t)

	service := NewContextService(t.TempDir(), "work", mockFactory(nil), settings)
	err := service.Set(context.Background(), "../escape")

	assert.ErrorIs(t, err, domain.ErrInvalidContext)
	assert.Equal(t, "work", service.Current())
}

func TestContextService_SetSaveFails(t *testing.T) {
	repo := portsmocks.NewMockDayRepository(t)
	repo.EXPECT().Close().Return(nil)

	settings := servicesmocks.NewMockSettingsStore(t)
	settings.EXPECT().Load().Return(&config.Settings{}, nil)
	settings.EXPECT().Save(mock.Anything).Return(errors.New("permission denied"))

	service := NewContextService(t.TempDir(), "work", mockFactory(map[string]ports.DayRepository{"personal": repo}), settings)
	err := service.Set(context.Background(), "personal")

	assert.ErrorContains(t, err, "permission denied")
	assert.Equal(t, "work", service.Current())
}

func TestContextService_Summaries(t *testing.T) {
	root := setupStoreRoot(t, "work", "personal")
	today := domain.NewDate(2024, time.March, 6)
	last := domain.NewDate(2024, time.March, 5)

	work := portsmocks.NewMockDayRepository(t)
	work.EXPECT().LastDate(mock.Anything, today).Return(last, nil)
	work.EXPECT().Day(mock.Anything, last).Return(domain.Day{
		Priorities: []domain.Priority{{Name: "A", Done: true}, {Name: "B"}, {Name: "C", Done: true}},
	}, nil)
	work.EXPECT().Close().Return(nil)

	personal := portsmocks.NewMockDayRepository(t)
	personal.EXPECT().LastDate(mock.Anything, today).Return(domain.Date{}, domain.ErrNoData)
	personal.EXPECT().Close().Return(nil)

	factory := mockFactory(map[string]ports.DayRepository{"work": work, "personal": personal})
	service := NewContextService(root, "work", factory, nil)

	summaries, err := service.Summaries(context.Background(), today)

	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, ContextSummary{Name: "personal"}, summaries[0])
	assert.False(t, summaries[0].HasData())

	assert.Equal(t, ContextSummary{Name: "work", Current: true, LastDate: last, Total: 3, Done: 2}, summaries[1])
	assert.True(t, summaries[1].HasData())
}

func TestContextService_SummariesPropagatesErrors(t *testing.T) {
	root := setupStoreRoot(t, "work")
	today := domain.NewDate(2024, time.March, 6)

	work := portsmocks.NewMockDayRepository(t)
	work.EXPECT().LastDate(mock.Anything, today).Return(domain.Date{}, &domain.CorruptDataError{Path: "2024.json"})
	work.EXPECT().Close().Return(nil)

	service := NewContextService(root, "work", mockFactory(map[string]ports.DayRepository{"work": work}), nil)
	_, err := service.Summaries(context.Background(), today)

	assert.ErrorIs(t, err, domain.ErrCorruptData)
	assert.ErrorContains(t, err, `context "work"`)
}
