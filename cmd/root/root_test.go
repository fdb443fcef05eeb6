package root

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"finsight/statement-import/internal/config"
)

func TestDelimiter(t *testing.T) {
	orig := Cfg
	defer func() { Cfg = orig }()

	Cfg = nil
	assert.Equal(t, ',', Delimiter())

	Cfg = &config.Config{}
	Cfg.CSV.Delimiter = ";"
	assert.Equal(t, ';', Delimiter())
}

func TestInitRegistersSharedFlags(t *testing.T) {
	Init()

	assert.NotNil(t, Cmd.PersistentFlags().Lookup("input"))
	assert.NotNil(t, Cmd.PersistentFlags().Lookup("output"))
}
