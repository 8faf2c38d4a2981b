package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_InfoByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Debug().Msg("hidden")
	log.Info().Str("file", "transactions.csv").Msg("loaded ledger")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "loaded ledger")
	assert.Contains(t, out, "file=transactions.csv")
}

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)

	log.Debug().Int("count", 3).Msg("seeded")
	assert.Contains(t, buf.String(), "seeded")
	assert.Contains(t, buf.String(), "count=3")
}
