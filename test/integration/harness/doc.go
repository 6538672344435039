// Package harness provides utilities for integration testing the doer CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - DOER_HOME: Isolated per test (temp directory)
//   - DOER_CONTEXT: Cleared so the configured context applies
//   - DOER_DEBUG: Disabled to reduce noise
package harness
