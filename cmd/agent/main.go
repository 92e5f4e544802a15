package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	godotenv "github.com/joho/godotenv"
	client "github.com/mutablelogic/go-client"
	logrus "github.com/sirupsen/logrus"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
	agent "github.com/vedanth-p/Agentic-AI-playground/pkg/agent"
	google "github.com/vedanth-p/Agentic-AI-playground/pkg/provider/google"
	session "github.com/vedanth-p/Agentic-AI-playground/pkg/session"
	tool "github.com/vedanth-p/Agentic-AI-playground/pkg/tool"
	weather "github.com/vedanth-p/Agentic-AI-playground/pkg/weather"
	version "github.com/vedanth-p/Agentic-AI-playground/pkg/version"
	worldtime "github.com/vedanth-p/Agentic-AI-playground/pkg/worldtime"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// HTTP client
	Timeout   time.Duration `name:"timeout" env:"AGENT_TIMEOUT" default:"10s" help:"Timeout for each outbound request"`
	UserAgent string        `name:"user-agent" env:"AGENT_USER_AGENT" help:"User agent for outbound requests"`

	// Services
	WeatherConfig `embed:"" help:"Weather configuration"`
	GeminiConfig  `embed:"" help:"Gemini configuration"`

	// Context
	ctx      context.Context
	execName string
	log      *logrus.Logger
}

type WeatherConfig struct {
	NominatimUrl string `name:"nominatim-url" env:"NOMINATIM_URL" help:"Nominatim geocoding endpoint"`
	OpenMeteoUrl string `name:"openmeteo-url" env:"OPENMETEO_URL" help:"Open-Meteo forecast endpoint"`
}

type GeminiConfig struct {
	GeminiAPIKey string `name:"gemini-api-key" env:"GOOGLE_API_KEY" help:"Google Gemini API key"`
	Model        string `name:"model" env:"AGENT_MODEL" default:"gemini-2.5-flash" help:"Gemini model name"`
}

type CLI struct {
	Globals

	// Tools
	Weather WeatherCmd   `cmd:"" name:"weather" help:"Report the current weather in a city"`
	Time    TimeCmd      `cmd:"" name:"time" help:"Report the current time in a city"`
	Tools   ListToolsCmd `cmd:"" name:"tools" help:"Return a list of tools"`
	Run     RunToolCmd   `cmd:"" name:"run" help:"Run a tool with JSON input"`

	// Agent
	Chat  ChatCmd  `cmd:"" name:"chat" help:"Start a chat session with the agent"`
	Serve ServeCmd `cmd:"" name:"serve" help:"Serve the tools and agent over HTTP"`
	MCP   MCPCmd   `cmd:"" name:"mcp" help:"Serve the tools to an MCP client over standard input and output"`

	// Other
	Version VersionCmd `cmd:"" name:"version" help:"Print the version"`
}

type VersionCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Environment from .env, if present
	_ = godotenv.Load()

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Weather and time agent command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.execName = execName()

	// Create a logger
	cli.Globals.log = logrus.New()
	cli.Globals.log.SetOutput(os.Stderr)
	cli.Globals.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cli.Debug {
		cli.Globals.log.SetLevel(logrus.DebugLevel)
	} else {
		cli.Globals.log.SetLevel(logrus.InfoLevel)
	}

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *VersionCmd) Run(globals *Globals) error {
	fmt.Println(version.New(globals.execName))
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}

// clientOpts returns the options shared by all outbound clients
func (g *Globals) clientOpts() []client.ClientOpt {
	result := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		result = append(result, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.Timeout > 0 {
		result = append(result, client.OptTimeout(g.Timeout))
	}
	if g.UserAgent != "" {
		result = append(result, client.OptUserAgent(g.UserAgent))
	}
	return result
}

// agentClientOpts identifies this binary unless a user agent is set
func (g *Globals) agentClientOpts() []client.ClientOpt {
	return append([]client.ClientOpt{client.OptUserAgent(version.UserAgent(g.execName))}, g.clientOpts()...)
}

// Toolkit returns the weather, time and echo tools
func (g *Globals) Toolkit() (*tool.Toolkit, error) {
	tools, err := g.agentTools()
	if err != nil {
		return nil, err
	}
	return tool.NewToolkit(append(tools, tool.NewEcho())...)
}

// agentTools returns the tools the weather and time agent is given
func (g *Globals) agentTools() ([]tool.Tool, error) {
	tools, err := weather.NewTools(g.NominatimUrl, g.OpenMeteoUrl, g.clientOpts(), weather.WithTimeout(g.Timeout), weather.WithLogger(g.log))
	if err != nil {
		return nil, err
	}
	return append(tools, worldtime.NewTool(nil)), nil
}

// Runner returns an agent runner backed by Gemini and an in-memory session
// store
func (g *Globals) Runner(opt ...agent.RunnerOpt) (*agent.Runner, session.Store, error) {
	if g.GeminiAPIKey == "" {
		return nil, nil, agentic.ErrBadParameter.With("no API key configured. Set --gemini-api-key (or GOOGLE_API_KEY)")
	}
	tools, err := g.agentTools()
	if err != nil {
		return nil, nil, err
	}
	toolkit, err := tool.NewToolkit(tools...)
	if err != nil {
		return nil, nil, err
	}
	generator, err := google.New(g.GeminiAPIKey, g.agentClientOpts()...)
	if err != nil {
		return nil, nil, err
	}
	a, err := agent.New(toolkit, agent.WithModel(g.Model))
	if err != nil {
		return nil, nil, err
	}
	store := session.NewMemoryStore()
	runner, err := agent.NewRunner(a, generator, store, append([]agent.RunnerOpt{agent.WithLogger(g.log)}, opt...)...)
	if err != nil {
		return nil, nil, err
	}
	return runner, store, nil
}
