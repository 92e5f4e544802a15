package google

import (
	"encoding/json"
	"fmt"

	// Packages
	uuid "github.com/google/uuid"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
	schema "github.com/vedanth-p/Agentic-AI-playground/pkg/schema"
	tool "github.com/vedanth-p/Agentic-AI-playground/pkg/tool"
)

const (
	metaThoughtSignature = "thought_signature"
	roleModel            = "model"
)

///////////////////////////////////////////////////////////////////////////////
// CONVERSATION → GEMINI WIRE FORMAT (OUTBOUND)

// geminiContentsFromConversation converts a conversation to wire contents.
// System messages are skipped; they are sent as the system instruction.
func geminiContentsFromConversation(conversation *schema.Conversation) ([]*geminiContent, error) {
	if conversation == nil {
		return nil, nil
	}
	contents := make([]*geminiContent, 0, len(*conversation))
	for _, msg := range *conversation {
		if msg.Role == schema.RoleSystem {
			continue
		}
		if msg.Role == schema.RoleAssistant && len(msg.Content) == 0 {
			continue
		}
		c, err := geminiContentFromMessage(msg)
		if err != nil {
			return nil, err
		}
		contents = append(contents, c)
	}
	return contents, nil
}

// geminiContentFromMessage converts a single message, mapping the assistant
// role to "model"
func geminiContentFromMessage(msg *schema.Message) (*geminiContent, error) {
	parts := make([]*geminiPart, 0, len(msg.Content))

	var signature string
	if v, ok := msg.Meta[metaThoughtSignature].(string); ok {
		signature = v
	}

	for _, block := range msg.Content {
		switch {
		case block.Text != nil:
			parts = append(parts, &geminiPart{Text: *block.Text})
		case block.ToolCall != nil:
			args := make(map[string]any)
			if len(block.ToolCall.Input) > 0 {
				if err := json.Unmarshal(block.ToolCall.Input, &args); err != nil {
					return nil, agentic.ErrInternalServerError.Withf("unmarshal tool call args: %v", err)
				}
			}
			part := &geminiPart{FunctionCall: &geminiFunctionCall{Name: block.ToolCall.Name, Args: args}}
			if signature != "" {
				part.ThoughtSignature = signature
				signature = ""
			}
			parts = append(parts, part)
		case block.ToolResult != nil:
			if part := geminiPartFromToolResult(block.ToolResult); part != nil {
				parts = append(parts, part)
			}
		}
	}

	role := msg.Role
	if role == schema.RoleAssistant {
		role = roleModel
	}
	return &geminiContent{Parts: parts, Role: role}, nil
}

// geminiPartFromToolResult converts a tool result to a function response.
// Object results are passed as the response; anything else is wrapped.
func geminiPartFromToolResult(tr *schema.ToolResult) *geminiPart {
	if tr.Name == "" {
		return nil
	}

	response := make(map[string]any)
	if len(tr.Content) > 0 {
		var content any
		if err := json.Unmarshal(tr.Content, &content); err != nil {
			response["output"] = string(tr.Content)
		} else if obj, ok := content.(map[string]any); ok && !tr.IsError {
			response = obj
		} else {
			response["output"] = content
		}
	}
	if tr.IsError {
		response["error"] = true
	}

	return &geminiPart{
		FunctionResponse: &geminiFunctionResult{Name: tr.Name, Response: response},
	}
}

///////////////////////////////////////////////////////////////////////////////
// TOOL CONVERSION

// geminiFunctionDeclsFromToolkit declares each tool as a function, with the
// tool input schema as parametersJsonSchema
func geminiFunctionDeclsFromToolkit(tk *tool.Toolkit) ([]*geminiFunctionDeclaration, error) {
	if tk == nil {
		return nil, nil
	}
	tools := tk.Tools()
	decls := make([]*geminiFunctionDeclaration, 0, len(tools))
	for _, t := range tools {
		decl := &geminiFunctionDeclaration{
			Name:        t.Name(),
			Description: t.Description(),
		}
		s, err := t.Schema()
		if err != nil {
			return nil, agentic.ErrBadParameter.Withf("%s: %v", t.Name(), err)
		}
		if s != nil {
			data, err := json.Marshal(s)
			if err != nil {
				return nil, agentic.ErrBadParameter.Withf("%s: %v", t.Name(), err)
			}
			if err := json.Unmarshal(data, &decl.ParametersJSONSchema); err != nil {
				return nil, agentic.ErrBadParameter.Withf("%s: %v", t.Name(), err)
			}
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

///////////////////////////////////////////////////////////////////////////////
// GEMINI WIRE FORMAT → MESSAGE (INBOUND)

// messageFromGeminiResponse converts the first candidate to a message.
// Returns an empty assistant message if there are no candidates.
func messageFromGeminiResponse(response *geminiGenerateResponse) *schema.Message {
	message := &schema.Message{Role: schema.RoleAssistant}
	if response == nil || len(response.Candidates) == 0 {
		if response != nil && response.PromptFeedback != nil && response.PromptFeedback.BlockReason != "" {
			message.Result = schema.ResultBlocked
		} else {
			message.Result = schema.ResultOther
		}
		return message
	}

	candidate := response.Candidates[0]
	message.Result = resultFromGeminiFinishReason(candidate.FinishReason)
	if candidate.Content == nil {
		return message
	}

	for _, part := range candidate.Content.Parts {
		if part.ThoughtSignature != "" {
			if message.Meta == nil {
				message.Meta = make(map[string]any)
			}
			message.Meta[metaThoughtSignature] = part.ThoughtSignature
		}
		if block, ok := blockFromGeminiPart(part); ok {
			message.Content = append(message.Content, block)
		}
	}

	// Function calls override the finish reason
	if len(message.ToolCalls()) > 0 {
		message.Result = schema.ResultToolCall
	}
	return message
}

// blockFromGeminiPart converts a part to a content block. Thoughts and empty
// parts are dropped.
func blockFromGeminiPart(part *geminiPart) (schema.ContentBlock, bool) {
	switch {
	case part.Thought:
		return schema.ContentBlock{}, false
	case part.FunctionCall != nil:
		id := part.FunctionCall.ID
		if id == "" {
			id = uuid.New().String()
		}
		call := &schema.ToolCall{ID: id, Name: part.FunctionCall.Name}
		if part.FunctionCall.Args != nil {
			if data, err := json.Marshal(part.FunctionCall.Args); err != nil {
				call.Error = fmt.Sprintf("invalid arguments: %v", err)
			} else {
				call.Input = data
			}
		}
		return schema.ContentBlock{ToolCall: call}, true
	case part.Text != "":
		text := part.Text
		return schema.ContentBlock{Text: &text}, true
	}
	return schema.ContentBlock{}, false
}

///////////////////////////////////////////////////////////////////////////////
// FINISH REASON → RESULT TYPE

func resultFromGeminiFinishReason(reason string) schema.ResultType {
	switch reason {
	case geminiFinishReasonStop, "":
		return schema.ResultStop
	case geminiFinishReasonMaxTokens:
		return schema.ResultMaxTokens
	case geminiFinishReasonSafety, geminiFinishReasonRecitation, geminiFinishReasonBlocklist,
		geminiFinishReasonProhibitedContent, geminiFinishReasonSPII:
		return schema.ResultBlocked
	case geminiFinishReasonMalformedFunctionCall, geminiFinishReasonUnexpectedToolCall:
		return schema.ResultError
	default:
		return schema.ResultOther
	}
}
