package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigAcceptsDefaultPassword(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.CheckPassword(DefaultPassword))
	assert.False(t, cfg.CheckPassword("otra"))
}

func TestSetPassword(t *testing.T) {
	cfg := DefaultConfig()

	assert.NoError(t, cfg.SetPassword("nueva-clave"))
	assert.True(t, cfg.CheckPassword("nueva-clave"))
	assert.False(t, cfg.CheckPassword(DefaultPassword))
}
