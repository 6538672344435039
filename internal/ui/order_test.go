package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doer/internal/domain"
)

func priorities(names ...string) []domain.Priority {
	result := make([]domain.Priority, len(names))
	for i, name := range names {
		result[i] = domain.NewPriority(name)
	}
	return result
}

// pickByName returns a ChooseFunc that picks names in order, then stops
func pickByName(t *testing.T, names ...string) ChooseFunc {
	return func(remaining []domain.Priority, rank int) (int, error) {
		if len(names) == 0 {
			return StopChoosing, nil
		}
		next := names[0]
		names = names[1:]
		for i, p := range remaining {
			if p.Name == next {
				return i, nil
			}
		}
		t.Fatalf("rank %d: %q not offered", rank, next)
		return StopChoosing, nil
	}
}

func TestOrderPriorities(t *testing.T) {
	ordered, err := OrderPriorities(priorities("A", "B", "C"), pickByName(t, "C", "A"))

	require.NoError(t, err)
	assert.Equal(t, priorities("C", "A", "B"), ordered, "last candidate is placed without asking")
}

func TestOrderPriorities_StopEarly(t *testing.T) {
	ordered, err := OrderPriorities(priorities("A", "B", "C"), pickByName(t, "B"))

	require.NoError(t, err)
	assert.Equal(t, priorities("B"), ordered)
}

func TestOrderPriorities_CapsAtMax(t *testing.T) {
	candidates := priorities("1", "2", "3", "4", "5", "6", "7", "8")
	first := func(remaining []domain.Priority, rank int) (int, error) {
		return 0, nil
	}

	ordered, err := OrderPriorities(candidates, first)

	require.NoError(t, err)
	assert.Len(t, ordered, domain.MaxPriorities)
	assert.Equal(t, candidates[:domain.MaxPriorities], ordered)
}

func TestOrderPriorities_RanksAreOneBased(t *testing.T) {
	var ranks []int
	record := func(remaining []domain.Priority, rank int) (int, error) {
		ranks = append(ranks, rank)
		return 0, nil
	}

	_, err := OrderPriorities(priorities("A", "B", "C"), record)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ranks)
}

func TestOrderPriorities_KeepsDoneState(t *testing.T) {
	candidates := []domain.Priority{{Name: "A", Done: true}, domain.NewPriority("B")}

	ordered, err := OrderPriorities(candidates, pickByName(t, "B"))

	require.NoError(t, err)
	assert.Equal(t, []domain.Priority{domain.NewPriority("B"), {Name: "A", Done: true}}, ordered)
}

func TestOrderPriorities_Errors(t *testing.T) {
	boom := errors.New("aborted")

	_, err := OrderPriorities(priorities("A", "B"), func([]domain.Priority, int) (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = OrderPriorities(priorities("A", "B"), func([]domain.Priority, int) (int, error) {
		return 5, nil
	})
	assert.Error(t, err)
}

func TestOrderPriorities_Empty(t *testing.T) {
	ordered, err := OrderPriorities(nil, pickByName(t))

	require.NoError(t, err)
	assert.Empty(t, ordered)
}

func TestMergeItems(t *testing.T) {
	existing := []domain.Priority{{Name: "A", Done: true}}

	merged := MergeItems(existing, []string{" B ", "", "A", "C", "B"})

	assert.Equal(t, []domain.Priority{{Name: "A", Done: true}, domain.NewPriority("B"), domain.NewPriority("C")}, merged)
	assert.Len(t, existing, 1)
}
