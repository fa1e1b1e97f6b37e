package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "***", MaskSecret(""))
	assert.Equal(t, "***", MaskSecret("short"))
	assert.Equal(t, "AbCd***MnOp", MaskSecret("AbCdEfGhIjKlMnOp"))
}

func TestMaskSignature(t *testing.T) {
	assert.Equal(t, "***", MaskSignature("abc"))
	assert.Equal(t, "kCB3hp***", MaskSignature("kCB3hpHb1LJhXgQp5yN5w0tIEcL6v4LuU1+Pmw3wnHQ="))
}
