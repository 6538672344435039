package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doer/test/integration/harness"
)

func TestPlanAndShow(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "plan", "2024-03-01", "--item", "write report", "--item", "review")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "write report")

	result = harness.RunCommand(t, env, "tick", "1", "--date", "2024-03-01")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "show", "2024-03-01", "--format", "json")
	harness.AssertSuccess(t, result)

	var day struct {
		Context    string `json:"context"`
		Date       string `json:"date"`
		Priorities []struct {
			Done bool   `json:"done"`
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"priorities"`
	}
	harness.DecodeJSON(t, result, &day)

	assert.Equal(t, "default", day.Context)
	assert.Equal(t, "2024-03-01", day.Date)
	require.Len(t, day.Priorities, 2)
	assert.True(t, day.Priorities[0].Done)
	assert.Equal(t, 2, day.Priorities[1].ID)
	assert.False(t, day.Priorities[1].Done)
}

func TestPlanWritesVersionedYearFile(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "plan", "2024-03-01", "-i", "A")
	harness.AssertSuccess(t, result)

	doc := harness.DecodeYearFile(t, env, "default", 2024)
	assert.Equal(t, "1.3.0", doc["version"])

	days := doc["days"].(map[string]any)
	day := days["2024-03-01"].(map[string]any)
	assert.Equal(t, []any{map[string]any{"name": "A", "done": false}}, day["priorities"])
}

func TestPlanKeepsAtMostSix(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	args := []string{"plan", "2024-03-01"}
	for _, item := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		args = append(args, "-i", item)
	}
	result := harness.RunCommand(t, env, args...)
	harness.AssertSuccess(t, result)
	harness.AssertStderrContains(t, result, "only the first 6 priorities are kept")

	result = harness.RunCommand(t, env, "tick", "7", "--date", "2024-03-01")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "id 7 invalid, maximum is 6")
}

func TestTickInvalidID(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "plan", "2024-03-01", "-i", "A", "-i", "B", "-i", "C"))

	result := harness.RunCommand(t, env, "tick", "10", "--date", "2024-03-01")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "Error: id 10 invalid, maximum is 3")
}

func TestFocusAndBreaks(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "break", "start")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "no focus")

	harness.AssertSuccess(t, harness.RunCommand(t, env, "focus", "deep", "work"))

	result = harness.RunCommand(t, env, "break", "end")
	harness.AssertFailure(t, result)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "break", "start"))
	result = harness.RunCommand(t, env, "break", "start")
	harness.AssertFailure(t, result)

	result = harness.RunCommand(t, env, "show", "--format", "json")
	harness.AssertSuccess(t, result)

	var day struct {
		Focus   string `json:"focus"`
		InBreak bool   `json:"in_break"`
	}
	harness.DecodeJSON(t, result, &day)
	assert.Equal(t, "deep work", day.Focus)
	assert.True(t, day.InBreak)
}

func TestLastWithoutData(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "last")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No data to show")
}

func TestLastShowsNewestDay(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "plan", "2023-12-30", "-i", "old"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "plan", "2024-03-01", "-i", "new"))

	result := harness.RunCommand(t, env, "last", "--format", "json")
	harness.AssertSuccess(t, result)

	var day struct {
		Date string `json:"date"`
	}
	harness.DecodeJSON(t, result, &day)
	assert.Equal(t, "2024-03-01", day.Date)
}

func TestShowEmptyDay(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "show", "2024-03-01")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Nothing planned")
}
