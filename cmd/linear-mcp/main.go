// linear-mcp: Linear MCP server.
//
// Exposes Linear issue tracking (issue CRUD, search, teams, projects,
// workflow states) as MCP tools over stdio, with routing across multiple
// configured workspaces.
//
// Usage:
//
//	linear-mcp serve    # Start MCP server (stdio transport)
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mberan/linear-mcp/internal/config"
	"github.com/mberan/linear-mcp/internal/logger"
	linearserver "github.com/mberan/linear-mcp/internal/server"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("linear-mcp v%s\n", linearserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	// .env is a local-development convenience; absence is not an error.
	_ = godotenv.Load()

	if err := logger.Init(os.Getenv("LOG_LEVEL")); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	set, err := config.Parse(os.Getenv(config.EnvVar))
	if err != nil {
		// Configuration errors are startup-fatal: there is no degraded
		// mode without a credential. Point at the expected shapes.
		if errors.Is(err, config.ErrMissingConfig) || errors.Is(err, config.ErrNoCredential) {
			return fmt.Errorf("%w\n\n%s", err, config.ShapeHint)
		}
		return err
	}

	logger.Get().Info("starting linear-mcp",
		zap.String("version", linearserver.Version),
		zap.Int("workspaces", len(set.Workspaces)),
		zap.String("activeWorkspace", set.ActiveID))

	s := linearserver.New(set, nil)
	return server.ServeStdio(s)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `linear-mcp v%s — Linear MCP Server

Usage:
  linear-mcp serve    Start the MCP server (stdio transport)

Configuration:
  %s holds either a bare Linear API key or a URL-encoded JSON
  document describing several workspaces. Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "linear": {
        "command": "linear-mcp",
        "args": ["serve"],
        "env": { "%s": "lin_api_..." }
      }
    }
  }
`, linearserver.Version, config.EnvVar, config.EnvVar)
}
