package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBuildData(t *testing.T) {
	orig := buildVersion
	buildVersion = "v9.9.9"
	t.Cleanup(func() { buildVersion = orig })

	var buf bytes.Buffer
	PrintBuildData(&buf)

	assert.Contains(t, buf.String(), "Build version: v9.9.9\n")
	assert.Contains(t, buf.String(), "Build date: N/A\n")
	assert.Contains(t, buf.String(), "Build commit: N/A\n")
}
