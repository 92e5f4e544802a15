package google

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	schema "github.com/vedanth-p/Agentic-AI-playground/pkg/schema"
	tool "github.com/vedanth-p/Agentic-AI-playground/pkg/tool"
)

func strPtr(s string) *string {
	return &s
}

///////////////////////////////////////////////////////////////////////////////
// CONVERSATION → GOOGLE (outbound)

func Test_marshal_001(t *testing.T) {
	assert := assert.New(t)

	conversation := schema.Conversation{
		{Role: schema.RoleSystem, Content: []schema.ContentBlock{{Text: strPtr("ignored")}}},
		schema.NewMessage(schema.RoleUser, "Hello"),
		{Role: schema.RoleAssistant},
		schema.NewMessage(schema.RoleAssistant, "Hi"),
	}
	contents, err := geminiContentsFromConversation(&conversation)
	assert.NoError(err)
	if assert.Len(contents, 2) {
		assert.Equal("user", contents[0].Role)
		assert.Equal("Hello", contents[0].Parts[0].Text)
		assert.Equal("model", contents[1].Role)
		assert.Equal("Hi", contents[1].Parts[0].Text)
	}
}

func Test_marshal_002(t *testing.T) {
	assert := assert.New(t)

	msg := &schema.Message{
		Role: schema.RoleAssistant,
		Content: []schema.ContentBlock{
			{ToolCall: &schema.ToolCall{ID: "1", Name: "get_weather", Input: json.RawMessage(`{"city":"Berlin"}`)}},
		},
		Meta: map[string]any{metaThoughtSignature: "c2ln"},
	}
	content, err := geminiContentFromMessage(msg)
	assert.NoError(err)
	if assert.Len(content.Parts, 1) {
		part := content.Parts[0]
		assert.Equal("c2ln", part.ThoughtSignature)
		if assert.NotNil(part.FunctionCall) {
			assert.Equal("get_weather", part.FunctionCall.Name)
			assert.Equal(map[string]any{"city": "Berlin"}, part.FunctionCall.Args)
		}
	}

	// Malformed arguments
	msg.Content[0].ToolCall.Input = json.RawMessage(`{`)
	_, err = geminiContentFromMessage(msg)
	assert.Error(err)
}

func Test_marshal_003(t *testing.T) {
	assert := assert.New(t)

	msg := &schema.Message{
		Role: schema.RoleUser,
		Content: []schema.ContentBlock{
			schema.NewToolResult("1", "get_weather", tool.Success("The weather in Berlin is Overcast with a temperature of 15.2°C.")),
			schema.NewToolError("2", "get_current_time", errors.New("bad parameter")),
			schema.NewToolResult("3", "echo", "plain"),
			schema.NewToolResult("4", "", "dropped"),
		},
	}
	content, err := geminiContentFromMessage(msg)
	assert.NoError(err)
	assert.Equal("user", content.Role)
	if assert.Len(content.Parts, 3) {
		assert.Equal("get_weather", content.Parts[0].FunctionResponse.Name)
		assert.Equal(map[string]any{
			"status": "success",
			"report": "The weather in Berlin is Overcast with a temperature of 15.2°C.",
		}, content.Parts[0].FunctionResponse.Response)
		assert.Equal(map[string]any{"output": "bad parameter", "error": true}, content.Parts[1].FunctionResponse.Response)
		assert.Equal(map[string]any{"output": "plain"}, content.Parts[2].FunctionResponse.Response)
	}
}

func Test_marshal_004(t *testing.T) {
	assert := assert.New(t)

	tk, err := tool.NewToolkit(tool.NewEcho())
	require.NoError(t, err)

	decls, err := geminiFunctionDeclsFromToolkit(tk)
	assert.NoError(err)
	if assert.Len(decls, 1) {
		assert.Equal("echo", decls[0].Name)
		assert.NotEmpty(decls[0].Description)
		assert.Equal("object", decls[0].ParametersJSONSchema["type"])
		assert.Contains(decls[0].ParametersJSONSchema["properties"], "text")
	}

	decls, err = geminiFunctionDeclsFromToolkit(nil)
	assert.NoError(err)
	assert.Empty(decls)
}

///////////////////////////////////////////////////////////////////////////////
// GOOGLE → MESSAGE (inbound)

func Test_unmarshal_001(t *testing.T) {
	assert := assert.New(t)

	var response geminiGenerateResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"candidates": [{
			"content": {"role": "model", "parts": [
				{"text": "thinking...", "thought": true},
				{"functionCall": {"name": "get_weather", "args": {"city": "Berlin"}}, "thoughtSignature": "c2ln"}
			]},
			"finishReason": "STOP"
		}]
	}`), &response))

	msg := messageFromGeminiResponse(&response)
	assert.Equal(schema.RoleAssistant, msg.Role)
	assert.Equal(schema.ResultToolCall, msg.Result)
	assert.Equal("c2ln", msg.Meta[metaThoughtSignature])
	calls := msg.ToolCalls()
	if assert.Len(calls, 1) {
		assert.NotEmpty(calls[0].ID)
		assert.Equal("get_weather", calls[0].Name)
		assert.JSONEq(`{"city":"Berlin"}`, string(calls[0].Input))
	}
	assert.Empty(msg.Text())
}

func Test_unmarshal_002(t *testing.T) {
	tests := []struct {
		body   string
		result schema.ResultType
		text   string
	}{
		{`{"candidates":[{"content":{"role":"model","parts":[{"text":"It is sunny."}]},"finishReason":"STOP"}]}`, schema.ResultStop, "It is sunny."},
		{`{"candidates":[{"content":{"role":"model","parts":[{"text":"It is"}]},"finishReason":"MAX_TOKENS"}]}`, schema.ResultMaxTokens, "It is"},
		{`{"candidates":[{"finishReason":"SAFETY"}]}`, schema.ResultBlocked, ""},
		{`{"candidates":[{"finishReason":"MALFORMED_FUNCTION_CALL"}]}`, schema.ResultError, ""},
		{`{"promptFeedback":{"blockReason":"OTHER"}}`, schema.ResultBlocked, ""},
		{`{}`, schema.ResultOther, ""},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var response geminiGenerateResponse
			require.NoError(t, json.Unmarshal([]byte(tt.body), &response))
			msg := messageFromGeminiResponse(&response)
			assert.Equal(t, tt.result, msg.Result)
			assert.Equal(t, tt.text, msg.Text())
		})
	}
}

func Test_unmarshal_003(t *testing.T) {
	assert := assert.New(t)

	// Arguments which cannot be encoded are reported on the call
	block, ok := blockFromGeminiPart(&geminiPart{FunctionCall: &geminiFunctionCall{
		ID:   "call-1",
		Name: "get_weather",
		Args: map[string]any{"city": math.Inf(1)},
	}})
	if assert.True(ok) && assert.NotNil(block.ToolCall) {
		assert.Equal("call-1", block.ToolCall.ID)
		assert.Nil(block.ToolCall.Input)
		assert.Contains(block.ToolCall.Error, "invalid arguments")
	}

	// Well-formed arguments carry no error
	block, ok = blockFromGeminiPart(&geminiPart{FunctionCall: &geminiFunctionCall{Name: "get_weather", Args: map[string]any{"city": "Berlin"}}})
	if assert.True(ok) && assert.NotNil(block.ToolCall) {
		assert.Empty(block.ToolCall.Error)
		assert.JSONEq(`{"city":"Berlin"}`, string(block.ToolCall.Input))
	}
}
