package summarize_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"anjalsubedi/expense-tracker/cmd/summarize"
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

func TestSummarizeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "summarize", summarize.Cmd.Use)
	assert.NotEmpty(t, summarize.Cmd.Short)
	assert.NotNil(t, summarize.Cmd.RunE)
}

func TestSummarizeCommand_WritesSummaryOnly(t *testing.T) {
	cfg := useContainer(t)
	require.NoError(t, os.WriteFile(cfg.Files.Expenses, []byte(`Date,Category,Description,Amount (Rs)
2024-03-02,Shopping,Jacket,8000.01
2024-03-09,Utilities,Power bill,1200
`), 0600))

	out, err := run(t, summarize.Cmd)
	require.NoError(t, err)
	assert.Contains(t, out, "Loaded 2 records")
	assert.Contains(t, out, "Summary saved to")

	summary, err := os.ReadFile(cfg.Files.Summary)
	require.NoError(t, err)
	assert.Equal(t, `Month,Category,Amount (Rs),Over Budget
2024-03,Shopping,8000.01,Yes
2024-03,Utilities,1200.00,No
`, string(summary))
	assert.NoFileExists(t, cfg.Files.Plot)
}

func TestSummarizeCommand_MissingExpenses(t *testing.T) {
	cfg := useContainer(t)

	out, err := run(t, summarize.Cmd)
	require.NoError(t, err)
	assert.Contains(t, out, "not found.")
	assert.NoFileExists(t, cfg.Files.Summary)
}
