package generate_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"anjalsubedi/expense-tracker/cmd/generate"
	"anjalsubedi/expense-tracker/cmd/root"
	"anjalsubedi/expense-tracker/internal/config"
	"anjalsubedi/expense-tracker/internal/container"
	"anjalsubedi/expense-tracker/internal/logging"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useContainer(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ","
	cfg.Files.Expenses = filepath.Join(dir, "expenses.csv")
	cfg.Files.Summary = filepath.Join(dir, "monthly_summary.csv")
	cfg.Files.Plot = filepath.Join(dir, "spending_plot.png")
	cfg.Generator.Records = 12
	cfg.Generator.WindowDays = 90
	cfg.Generator.MinAmount = "100"
	cfg.Generator.MaxAmount = "5000"
	cfg.Chart.WidthInches = 4
	cfg.Chart.HeightInches = 3

	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)

	root.AppConfig, root.AppContainer = cfg, c
	t.Cleanup(func() { root.AppConfig, root.AppContainer = nil, nil })
	return cfg
}

func run(t *testing.T, cmd *cobra.Command) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	err := cmd.RunE(cmd, nil)
	return out.String(), err
}

func TestGenerateCommand_Metadata(t *testing.T) {
	assert.Equal(t, "generate", generate.Cmd.Use)
	assert.NotEmpty(t, generate.Cmd.Short)
	assert.NotNil(t, generate.Cmd.RunE)
}

func TestGenerateCommand_CreatesThenSkips(t *testing.T) {
	cfg := useContainer(t)

	out, err := run(t, generate.Cmd)
	require.NoError(t, err)
	assert.Contains(t, out, "Generated 12 sample records")

	content, err := os.ReadFile(cfg.Files.Expenses)
	require.NoError(t, err)
	assert.Len(t, bytes.Split(bytes.TrimSpace(content), []byte("\n")), 13)

	out, err = run(t, generate.Cmd)
	require.NoError(t, err)
	assert.Contains(t, out, "already exists. Skipping generation.")

	again, err := os.ReadFile(cfg.Files.Expenses)
	require.NoError(t, err)
	assert.Equal(t, content, again)
}

func TestGenerateCommand_NoContainer(t *testing.T) {
	root.AppContainer = nil
	_, err := run(t, generate.Cmd)
	assert.Error(t, err)
}
