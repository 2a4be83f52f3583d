package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, sampleAnnotation(), true))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, TSVHeader, lines[0])
	assert.Equal(t, "lambda\tphage1\t5\t8\t+\ttRNA-Pro(ggg)\t4\t20", lines[1])
	assert.Equal(t, "lambda\t-\t9\t12\t-\ttmRNA peptide:AA\t4\t20", lines[2])
}

func TestWriteTSV_NoHeaderNoGenes(t *testing.T) {
	var buf bytes.Buffer
	a := sampleAnnotation()
	a.Genes = nil
	require.NoError(t, WriteTSV(&buf, a, false))
	assert.Empty(t, buf.String())
}
