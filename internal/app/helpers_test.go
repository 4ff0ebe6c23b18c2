package app

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/optipng/internal/testutil"
)

// setupAppTest creates a new app instance for system testing. It fails the
// test when the app cannot be built and closes it on cleanup.
func setupAppTest(t *testing.T, cfg *Config) (*App, *testutil.SafeBuffer) {
	t.Helper()

	logBuffer := &testutil.SafeBuffer{}
	testApp, err := New(logBuffer, cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, testApp.Close())
		if os.Getenv("OPTIPNG_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}
