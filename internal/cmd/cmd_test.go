package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doer/internal/config"
	"doer/internal/domain"
)

var planDate = domain.NewDate(2024, time.March, 1)

func setupHome(t *testing.T) {
	t.Helper()
	t.Setenv("DOER_HOME", t.TempDir())
	t.Setenv("DOER_CONTEXT", "")
	t.Setenv("DOER_DEBUG", "")
	t.Setenv("DOER_DEBUG_FILE", "")
}

// runCLI parses args like main does and runs the selected command
func runCLI(t *testing.T, args ...string) (*CLI, error) {
	t.Helper()

	settings, err := config.LoadSettings()
	require.NoError(t, err)

	var cli CLI
	cli.SetSettings(settings)
	parser, err := kong.New(&cli,
		kong.Name("doer"),
		kong.Vars{"version": "test"},
		kong.Bind(&cli),
		kong.Exit(func(code int) { t.Fatalf("unexpected exit %d", code) }),
	)
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	require.NoError(t, err)
	t.Cleanup(func() { cli.Close() })

	return &cli, kctx.Run()
}

func TestPlanWithItemsThenTick(t *testing.T) {
	setupHome(t)

	_, err := runCLI(t, "plan", "2024-03-01", "-i", "write report", "-i", "review")
	require.NoError(t, err)

	cli, err := runCLI(t, "tick", "2", "--date", "2024-03-01")
	require.NoError(t, err)

	day, err := cli.Container.DayService.Day(context.Background(), planDate)
	require.NoError(t, err)
	assert.Equal(t, []domain.Priority{domain.NewPriority("write report"), {Name: "review", Done: true}}, day.Priorities)
}

func TestTickOutOfRange(t *testing.T) {
	setupHome(t)

	_, err := runCLI(t, "plan", "2024-03-01", "-i", "A", "-i", "B")
	require.NoError(t, err)

	_, err = runCLI(t, "tick", "5", "--date", "2024-03-01")
	assert.EqualError(t, err, "id 5 invalid, maximum is 2")

	_, err = runCLI(t, "untick", "1", "--date", "2024-02-01")
	assert.EqualError(t, err, "no priorities planned for 2024-02-01")
}

func TestContextFlag(t *testing.T) {
	setupHome(t)

	cli, err := runCLI(t, "--context", "home", "plan", "2024-03-01", "-i", "garden")
	require.NoError(t, err)
	assert.Equal(t, "home", cli.Container.DayService.Context())

	cli, err = runCLI(t, "show", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultContext, cli.Container.DayService.Context())

	day, err := cli.Container.DayService.Day(context.Background(), planDate)
	require.NoError(t, err)
	assert.True(t, day.IsEmpty(), "contexts do not share days")
}

func TestContextSetPersists(t *testing.T) {
	setupHome(t)

	_, err := runCLI(t, "context", "set", "work")
	require.NoError(t, err)

	settings, err := config.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "work", settings.Context)

	cli, err := runCLI(t, "context")
	require.NoError(t, err)
	assert.Equal(t, "work", cli.Container.ContextService.Current())
}

func TestContextSetRejectsBadName(t *testing.T) {
	setupHome(t)

	_, err := runCLI(t, "context", "set", "..")

	assert.ErrorIs(t, err, domain.ErrInvalidContext)
}

func TestCopyOnto(t *testing.T) {
	setupHome(t)

	_, err := runCLI(t, "plan", "2024-03-01", "-i", "A", "-i", "B")
	require.NoError(t, err)
	_, err = runCLI(t, "tick", "1", "--date", "2024-03-01")
	require.NoError(t, err)

	cli, err := runCLI(t, "copy", "2024-03-01", "2024-03-04", "--open-only")
	require.NoError(t, err)

	day, err := cli.Container.DayService.Day(context.Background(), planDate.AddDays(3))
	require.NoError(t, err)
	assert.Equal(t, []domain.Priority{domain.NewPriority("B")}, day.Priorities)

	_, err = runCLI(t, "copy", "2024-03-01", "2024-03-01")
	assert.Error(t, err)
}

func TestNoteAndEnd(t *testing.T) {
	setupHome(t)

	_, err := runCLI(t, "note", "--date", "2024-03-01", "call", "Ana")
	require.NoError(t, err)
	cli, err := runCLI(t, "end", "2024-03-01")
	require.NoError(t, err)

	day, err := cli.Container.DayService.Day(context.Background(), planDate)
	require.NoError(t, err)
	assert.Equal(t, []string{"call Ana"}, day.Notes)
	assert.True(t, day.IsEnded())
}

func TestInvalidDate(t *testing.T) {
	setupHome(t)

	_, err := runCLI(t, "show", "someday")

	assert.ErrorContains(t, err, `invalid date "someday"`)
}

func TestCheckTick(t *testing.T) {
	assert.NoError(t, checkTick(domain.TickResult{Applied: true}, 1, planDate))
	assert.EqualError(t, checkTick(domain.TickResult{MaxIndex: 2}, 10, planDate), "id 10 invalid, maximum is 3")
	assert.EqualError(t, checkTick(domain.TickResult{MaxIndex: -1}, 1, planDate), "no priorities planned for 2024-03-01")
}
