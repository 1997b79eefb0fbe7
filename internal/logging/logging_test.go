package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/taxdrag/internal/calculation"
	"github.com/rpgo/taxdrag/internal/domain"
)

func TestNewWithWriter_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, false)
	l.Debugf("hidden %d", 1)
	l.Infof("hidden %d", 2)
	l.Warnf("shown %d", 3)
	require.NoError(t, l.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 3")
	assert.Contains(t, out, "warn")
}

func TestNewWithWriter_DebugWiredIntoEngine(t *testing.T) {
	var buf bytes.Buffer
	eng := calculation.NewEngine()
	eng.SetLogger(NewWithWriter(&buf, true))

	_, err := eng.Run(context.Background(), domain.SimulationInput{
		Principal:  1000000,
		GrowthRate: 1000,
		TaxRate:    5000,
		Years:      2,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "debug")
	assert.Contains(t, out, "year 2: taxable=11025.00 advantaged=12100.00")
	assert.Contains(t, out, "projection complete")
}
