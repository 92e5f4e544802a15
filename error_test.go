package agentic_test

import (
	"errors"
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
)

func Test_error_001(t *testing.T) {
	assert := assert.New(t)

	err := agentic.ErrRequestFailed.With("connection refused")
	assert.True(errors.Is(err, agentic.ErrRequestFailed))
	assert.False(errors.Is(err, agentic.ErrNotFound))
	assert.Equal("request failed: connection refused", err.Error())
}

func Test_error_002(t *testing.T) {
	assert := assert.New(t)

	err := agentic.ErrNotFound.Withf("location %q", "Nowhereville")
	assert.Equal(`not found: location "Nowhereville"`, err.Error())

	var code agentic.Err
	assert.True(errors.As(err, &code))
	assert.Equal(agentic.ErrNotFound, code)
}

func Test_error_003(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("error code 99", agentic.Err(99).Error())
	assert.Equal("malformed response", agentic.ErrMalformedResponse.Error())
	assert.Equal("unknown timezone", agentic.ErrUnknownTimezone.Error())
}
