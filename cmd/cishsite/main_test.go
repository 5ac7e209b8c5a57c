package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"cishsite/internal/config"
	"cishsite/internal/eventbus"
)

// execute runs the CLI against a config path that does not exist, so the
// defaults apply regardless of the user's own config
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "missing.toml")))
	err := cmd.Execute()
	return out.String(), err
}

func TestListProjectsByStatus(t *testing.T) {
	out, err := execute(t, "list", "projects", "--facet", "status=completed")
	require.NoError(t, err)

	assert.Contains(t, out, "Integrated Pest Management in Citrus Orchards")
	assert.NotContains(t, out, "Climate-Resilient Mango Varieties")
	assert.Contains(t, out, "Showing 1 research projects")
}

func TestListInstitutesByRegionAndText(t *testing.T) {
	out, err := execute(t, "list", "institutes", "-f", "region=North", "--search", "lucknow")
	require.NoError(t, err)

	assert.Contains(t, out, "CISH")
	assert.NotContains(t, out, "IARI")
	assert.NotContains(t, out, "CMFRI")
}

func TestListVarietiesUsesPreset(t *testing.T) {
	out, err := execute(t, "list", "varieties", "--varieties", "mango")
	require.NoError(t, err)
	assert.Contains(t, out, "Amrapali")
	assert.Contains(t, out, "Dashehari")
}

func TestListWithoutMatches(t *testing.T) {
	out, err := execute(t, "list", "news", "--search", "durian")
	require.NoError(t, err)
	assert.Equal(t, "No articles found matching your criteria.\n", out)
}

func TestListRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown kind", []string{"list", "weather"}, "invalid argument"},
		{"unknown facet", []string{"list", "projects", "--facet", "region=North"}, "unknown facet"},
		{"unknown value", []string{"list", "projects", "--facet", "status=Abandoned"}, "unknown status"},
		{"malformed facet", []string{"list", "news", "--facet", "category"}, "expected name=value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfigAppliesFlagOverrides(t *testing.T) {
	out, err := execute(t, "config", "--view", "news", "--interval", "2s", "--varieties", "mango")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, toml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, config.ViewNews, cfg.UI.StartView)
	assert.Equal(t, 2000, cfg.Carousel.IntervalMS)
	assert.Equal(t, config.PresetMango, cfg.Varieties.Preset)
}

func TestInvalidFlagsAreReported(t *testing.T) {
	_, err := execute(t, "config", "--interval", "10ms")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interval_ms")

	_, err = execute(t, "config", "--view", "about")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_view")
}

func TestInvalidFileValuesWarnAndFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[carousel]\ninterval_ms = 10\n"), 0644))

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"config", "--config", path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, errOut.String(), "warning: config "+path)
	assert.Contains(t, errOut.String(), "interval_ms")

	var cfg config.Config
	require.NoError(t, toml.Unmarshal(out.Bytes(), &cfg))
	assert.Equal(t, 4000, cfg.Carousel.IntervalMS)
}

func TestMissingContentFileFallsBack(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Content.Path = filepath.Join(t.TempDir(), "nope.yaml")

	repo, err := loadContent(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "ICAR-CISH", repo.Site().Name)
}

func TestAnalyticsSubscriberReleasesBus(t *testing.T) {
	defer goleak.VerifyNone(t)

	bus := eventbus.New(zap.NewNop())
	subscribeAnalytics(bus, zap.NewNop())
	bus.Publish(eventbus.ViewChangedEvent{From: "home", To: "news"})
	bus.Publish(eventbus.SlideChangedEvent{Section: "varieties", Index: 1, Auto: true})
	bus.Close()
}
