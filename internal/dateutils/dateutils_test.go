package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		dateStr     string
		expectedOk  bool
		expectedY   int
		expectedM   time.Month
		expectedD   int
		expectedFmt string
	}{
		{"ISO format", "2024-01-05", true, 2024, time.January, 5, DateLayoutISO},
		{"ISO with padding", "  2024-03-31 ", true, 2024, time.March, 31, DateLayoutISO},
		{"Full timestamp", "2024-01-15 10:30:45", true, 2024, time.January, 15, DateLayoutFull},
		{"RFC3339", "2024-02-01T08:00:00Z", true, 2024, time.February, 1, DateLayoutRFC3339},
		{"Slashes", "2024/02/29", true, 2024, time.February, 29, "2006/01/02"},
		{"Dotted is month first", "02.01.2024", true, 2024, time.February, 1, DateLayoutDotted},
		{"Dotted day first rejected", "15.01.2023", false, 0, 0, 0, ""},
		{"US format", "01/15/2023", true, 2023, time.January, 15, DateLayoutUS},
		{"Empty string", "", false, 0, 0, 0, ""},
		{"Invalid format", "not a date", false, 0, 0, 0, ""},
		{"Impossible day", "2023-02-30", false, 0, 0, 0, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, layout, err := ParseDate(tc.dateStr)

			if !tc.expectedOk {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedY, date.Year())
			assert.Equal(t, tc.expectedM, date.Month())
			assert.Equal(t, tc.expectedD, date.Day())
			assert.Equal(t, tc.expectedFmt, layout)
		})
	}
}

func TestToISODate(t *testing.T) {
	d := time.Date(2024, time.March, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-07", ToISODate(d))
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	d := time.Date(2024, time.July, 19, 14, 22, 3, 99, loc)

	assert.Equal(t, time.Date(2024, time.July, 19, 0, 0, 0, 0, loc), StartOfDay(d))
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "2024-01-05 10:00:00", CleanDateString("  2024-01-05   10:00:00\t"))
}
