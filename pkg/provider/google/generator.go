package google

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
	schema "github.com/vedanth-p/Agentic-AI-playground/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Generate sends the conversation to the model and returns the next
// assistant message. The conversation is not modified.
func (c *Client) Generate(ctx context.Context, model string, conversation *schema.Conversation, opts ...Opt) (*schema.Message, error) {
	if conversation == nil || len(*conversation) == 0 {
		return nil, agentic.ErrBadParameter.With("conversation is empty")
	}
	if model == "" {
		model = DefaultModel
	}

	// Build request
	request, err := generateRequest(conversation, opts...)
	if err != nil {
		return nil, err
	}
	payload, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	// Send it
	var response geminiGenerateResponse
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("models", model+":generateContent")); err != nil {
		return nil, agentic.ErrRequestFailed.With(err)
	}

	return messageFromGeminiResponse(&response), nil
}

///////////////////////////////////////////////////////////////////////////////
// REQUEST BUILDING

// GenerateRequest builds a generate request without sending it.
// Useful for debugging.
func GenerateRequest(conversation *schema.Conversation, opts ...Opt) (any, error) {
	return generateRequest(conversation, opts...)
}

func generateRequest(conversation *schema.Conversation, opts ...Opt) (*geminiGenerateRequest, error) {
	options, err := applyOpts(opts...)
	if err != nil {
		return nil, err
	}

	contents, err := geminiContentsFromConversation(conversation)
	if err != nil {
		return nil, err
	}
	request := &geminiGenerateRequest{
		Contents: contents,
	}

	// System instruction
	if options.systemPrompt != "" {
		request.SystemInstruction = geminiNewTextContent("", options.systemPrompt)
	}

	// Generation config
	request.GenerationConfig.Temperature = options.temperature
	request.GenerationConfig.MaxOutputTokens = options.maxTokens

	// Tools from toolkit
	decls, err := geminiFunctionDeclsFromToolkit(options.toolkit)
	if err != nil {
		return nil, err
	}
	if len(decls) > 0 {
		request.Tools = []*geminiTool{{FunctionDeclarations: decls}}
	}

	return request, nil
}
