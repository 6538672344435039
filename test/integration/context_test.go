package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"doer/test/integration/harness"
)

func TestContextDefault(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "context")

	harness.AssertSuccess(t, result)
	assert.Equal(t, "default\n", result.Stdout)
}

func TestContextPrecedence(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings("context = \"work\"\n")

	result := harness.RunCommand(t, env, "context", "show")
	harness.AssertSuccess(t, result)
	assert.Equal(t, "work\n", result.Stdout)

	env.SetEnv("DOER_CONTEXT", "home")
	result = harness.RunCommand(t, env, "context", "show")
	harness.AssertSuccess(t, result)
	assert.Equal(t, "home\n", result.Stdout)

	result = harness.RunCommand(t, env, "--context", "side", "context", "show")
	harness.AssertSuccess(t, result)
	assert.Equal(t, "side\n", result.Stdout)
}

func TestContextSetAndList(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "plan", "2024-03-01", "-i", "A", "-i", "B"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "tick", "1", "--date", "2024-03-01"))

	result := harness.RunCommand(t, env, "context", "set", "work")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Default context is now 'work'")

	result = harness.RunCommand(t, env, "context", "list")
	harness.AssertSuccess(t, result)
	assert.Equal(t, "  default\n* work\n", result.Stdout)

	result = harness.RunCommand(t, env, "context", "list", "--summary")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "2024-03-01")
	harness.AssertStdoutContains(t, result, "1/2")
}

func TestContextsAreIsolated(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "-c", "work", "plan", "2024-03-01", "-i", "ship"))

	result := harness.RunCommand(t, env, "-c", "home", "show", "2024-03-01")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Nothing planned")
}

func TestContextInvalidName(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "context", "set", "a/b")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "invalid context name")
}
