package google

import (
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
	schema "github.com/vedanth-p/Agentic-AI-playground/pkg/schema"
	tool "github.com/vedanth-p/Agentic-AI-playground/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// UNIT TESTS

func Test_generateRequest_001(t *testing.T) {
	// Minimal request with a single user message
	assert := assert.New(t)

	conversation := schema.Conversation{schema.NewMessage(schema.RoleUser, "Hello")}
	req, err := generateRequest(&conversation)
	assert.NoError(err)
	if assert.Len(req.Contents, 1) {
		assert.Equal("user", req.Contents[0].Role)
		assert.Equal("Hello", req.Contents[0].Parts[0].Text)
	}
	assert.Nil(req.SystemInstruction)
	assert.Nil(req.GenerationConfig.Temperature)
	assert.Nil(req.Tools)
}

func Test_generateRequest_002(t *testing.T) {
	// System prompt is set as the system instruction
	assert := assert.New(t)

	conversation := schema.Conversation{schema.NewMessage(schema.RoleUser, "Hi")}
	req, err := generateRequest(&conversation, WithSystemPrompt("You are a helpful agent."))
	assert.NoError(err)
	if assert.NotNil(req.SystemInstruction) {
		assert.Len(req.SystemInstruction.Parts, 1)
		assert.Equal("You are a helpful agent.", req.SystemInstruction.Parts[0].Text)
		assert.Empty(req.SystemInstruction.Role)
	}
}

func Test_generateRequest_003(t *testing.T) {
	// Temperature and max tokens
	assert := assert.New(t)

	conversation := schema.Conversation{schema.NewMessage(schema.RoleUser, "Hi")}
	req, err := generateRequest(&conversation, WithTemperature(0.7), WithMaxTokens(2048))
	assert.NoError(err)
	if assert.NotNil(req.GenerationConfig.Temperature) {
		assert.InDelta(0.7, *req.GenerationConfig.Temperature, 1e-9)
	}
	assert.Equal(2048, req.GenerationConfig.MaxOutputTokens)

	_, err = generateRequest(&conversation, WithTemperature(3))
	assert.ErrorIs(err, agentic.ErrBadParameter)
	_, err = generateRequest(&conversation, WithMaxTokens(0))
	assert.ErrorIs(err, agentic.ErrBadParameter)
}

func Test_generateRequest_004(t *testing.T) {
	// Toolkit becomes function declarations
	assert := assert.New(t)

	tk, err := tool.NewToolkit(tool.NewEcho())
	require.NoError(t, err)

	conversation := schema.Conversation{schema.NewMessage(schema.RoleUser, "Echo hello")}
	req, err := generateRequest(&conversation, WithToolkit(tk))
	assert.NoError(err)
	if assert.Len(req.Tools, 1) && assert.Len(req.Tools[0].FunctionDeclarations, 1) {
		assert.Equal("echo", req.Tools[0].FunctionDeclarations[0].Name)
	}

	// Empty toolkit declares nothing
	empty, err := tool.NewToolkit()
	require.NoError(t, err)
	req, err = generateRequest(&conversation, WithToolkit(empty))
	assert.NoError(err)
	assert.Nil(req.Tools)
}
