package main

import (
	"encoding/json"
	"fmt"

	// Packages
	agentic "github.com/vedanth-p/Agentic-AI-playground"
	tool "github.com/vedanth-p/Agentic-AI-playground/pkg/tool"
	table "github.com/vedanth-p/Agentic-AI-playground/pkg/ui/table"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type WeatherCmd struct {
	City string `arg:"" help:"City name"`
}

type TimeCmd struct {
	City string `arg:"" help:"City name"`
}

type ListToolsCmd struct{}

// toolTable renders tools as rows of name and description
type toolTable []tool.Tool

type RunToolCmd struct {
	Name  string `arg:"" help:"Tool name"`
	Input string `arg:"" optional:"" help:"Tool input as a JSON object"`
}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *WeatherCmd) Run(globals *Globals) error {
	return runTool(globals, "get_weather", map[string]string{"city": cmd.City})
}

func (cmd *TimeCmd) Run(globals *Globals) error {
	return runTool(globals, "get_current_time", map[string]string{"city": cmd.City})
}

func (cmd *ListToolsCmd) Run(globals *Globals) error {
	toolkit, err := globals.Toolkit()
	if err != nil {
		return err
	}
	fmt.Println(table.Render(toolTable(toolkit.Tools())))
	return nil
}

func (cmd *RunToolCmd) Run(globals *Globals) error {
	var input json.RawMessage
	if cmd.Input != "" {
		if !json.Valid([]byte(cmd.Input)) {
			return agentic.ErrBadParameter.Withf("input is not valid JSON: %q", cmd.Input)
		}
		input = json.RawMessage(cmd.Input)
	}
	return runTool(globals, cmd.Name, input)
}

////////////////////////////////////////////////////////////////////////////////
// TABLE

func (toolTable) Header() []string {
	return []string{"NAME", "DESCRIPTION"}
}

func (t toolTable) Len() int {
	return len(t)
}

func (t toolTable) Row(i int) []any {
	return []any{table.Bold{Value: t[i].Name()}, t[i].Description()}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// runTool runs a tool and prints the result. An error result is printed and
// then returned, so the exit status reflects it.
func runTool(globals *Globals, name string, input any) error {
	toolkit, err := globals.Toolkit()
	if err != nil {
		return err
	}
	output, err := toolkit.Run(globals.ctx, name, input)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	if result, ok := output.(tool.Result); ok && !result.OK() {
		return agentic.ErrRequestFailed.With(result.Message())
	}
	return nil
}
