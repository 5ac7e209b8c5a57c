//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartsOnHomePage(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("ICAR-CISH"), "should show the brand")
	require.True(t, tf.SeePlain("Central Institute for Subtropical Horticulture"), "should show the hero title")

	require.NoError(t, tf.Quit())
	require.NoError(t, tf.WaitExit(2*time.Second))
}

func TestStartViewFlag(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("--view", "news"))
	require.True(t, tf.SeePlain("Latest News & Updates"), "should open on the news page")
}

func TestResearchPageSearch(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("ICAR-CISH"))

	require.NoError(t, tf.SendKeys("P"))
	require.True(t, tf.SeePlain("Showing 6 research projects"), "projects page should list everything")

	tf.Mark()
	require.NoError(t, tf.SendKeys("/"))
	require.NoError(t, tf.Type("durian"))
	require.True(t, tf.SeePlain("No projects found matching your criteria"), "search filters while typing")

	tf.Mark()
	require.NoError(t, tf.SendKeys(KeyEsc))
	require.True(t, tf.SeePlain("Showing 6 research projects"), "esc clears the search")
}

func TestCtrlCExits(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("ICAR-CISH"))

	require.NoError(t, tf.SendKeys(KeyCtrlC))
	require.NoError(t, tf.WaitExit(2*time.Second))
}

func TestLogFileRecordsSession(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("ICAR-CISH"))
	require.NoError(t, tf.SendKeys("N"))
	require.True(t, tf.SeePlain("Latest News & Updates"))
	require.NoError(t, tf.Quit())
	require.NoError(t, tf.WaitExit(2*time.Second))

	data, err := os.ReadFile(tf.LogPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"session"`)
	assert.Contains(t, string(data), "view changed")
}

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err)
	assert.Contains(t, string(out), "Usage")
	assert.Contains(t, string(out), "--interval")
	assert.Contains(t, string(out), "list")
}

func TestListCommand(t *testing.T) {
	t.Parallel()

	cfg := filepath.Join(t.TempDir(), "config.toml")
	out, err := exec.Command(binPath, "list", "institutes", "--facet", "region=South", "--config", cfg).CombinedOutput()
	require.NoError(t, err, string(out))
	assert.Contains(t, string(out), "CMFRI")
	assert.NotContains(t, string(out), "IARI")
}
