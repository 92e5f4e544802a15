package schema_test

import (
	"encoding/json"
	"errors"
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"
	schema "github.com/vedanth-p/Agentic-AI-playground/pkg/schema"
)

func ptr(s string) *string {
	return &s
}

func Test_message_001(t *testing.T) {
	assert := assert.New(t)

	msg := schema.NewMessage(schema.RoleUser, "What is the weather in Berlin?")
	assert.Equal("user", msg.Role)
	assert.Len(msg.Content, 1)
	assert.Equal("What is the weather in Berlin?", msg.Text())
	assert.Empty(msg.ToolCalls())
}

func Test_message_002(t *testing.T) {
	assert := assert.New(t)

	msg := schema.Message{
		Role: schema.RoleAssistant,
		Content: []schema.ContentBlock{
			{Text: ptr("Let me check.")},
			{ToolCall: &schema.ToolCall{ID: "1", Name: "get_weather", Input: json.RawMessage(`{"city":"Berlin"}`)}},
			{Text: ptr("One moment.")},
			{ToolCall: &schema.ToolCall{ID: "2", Name: "get_current_time", Input: json.RawMessage(`{"city":"Berlin"}`)}},
		},
	}
	assert.Equal("Let me check.\nOne moment.", msg.Text())
	calls := msg.ToolCalls()
	if assert.Len(calls, 2) {
		assert.Equal("get_weather", calls[0].Name)
		assert.Equal("get_current_time", calls[1].Name)
	}
}

func Test_message_003(t *testing.T) {
	assert := assert.New(t)

	block := schema.NewToolResult("1", "get_weather", map[string]string{"status": "success", "report": "sunny"})
	if assert.NotNil(block.ToolResult) {
		assert.Equal("1", block.ToolResult.ID)
		assert.Equal("get_weather", block.ToolResult.Name)
		assert.False(block.ToolResult.IsError)
		assert.JSONEq(`{"status":"success","report":"sunny"}`, string(block.ToolResult.Content))
	}

	// Unmarshallable values become errors
	block = schema.NewToolResult("2", "echo", make(chan int))
	if assert.NotNil(block.ToolResult) {
		assert.True(block.ToolResult.IsError)
	}

	block = schema.NewToolError("3", "echo", errors.New("boom"))
	if assert.NotNil(block.ToolResult) {
		assert.True(block.ToolResult.IsError)
		assert.Equal(`"boom"`, string(block.ToolResult.Content))
	}
}

func Test_message_004(t *testing.T) {
	assert := assert.New(t)

	msg := schema.Message{Role: schema.RoleAssistant, Content: []schema.ContentBlock{{Text: ptr("Hi")}}, Result: schema.ResultToolCall}
	data, err := json.Marshal(msg)
	assert.NoError(err)
	assert.JSONEq(`{"role":"assistant","content":[{"text":"Hi"}],"result":"tool_call"}`, string(data))

	var decoded schema.Message
	assert.NoError(json.Unmarshal(data, &decoded))
	assert.Equal(schema.ResultToolCall, decoded.Result)

	assert.Error(json.Unmarshal([]byte(`{"result":"bogus"}`), &decoded))
}

func Test_conversation_001(t *testing.T) {
	assert := assert.New(t)

	var conversation schema.Conversation
	assert.Nil(conversation.Last())

	conversation.Append(*schema.NewMessage(schema.RoleUser, "Hello"))
	conversation.Append(*schema.NewMessage(schema.RoleAssistant, "Hi there"))
	assert.Len(conversation, 2)
	if assert.NotNil(conversation.Last()) {
		assert.Equal("Hi there", conversation.Last().Text())
	}
	assert.NotEmpty(conversation.String())
}
