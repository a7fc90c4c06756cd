package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/image-scan-mcp/internal/config"
	"github.com/ironsheep/image-scan-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-scan-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("image-scan-mcp - MCP server for image scanning and processing")
			fmt.Println()
			fmt.Println("Usage: image-scan-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  MCP_HTTP=1                   Serve streamable HTTP instead of stdio")
			fmt.Println("  MCP_HOST=127.0.0.1           HTTP listen host")
			fmt.Println("  MCP_PORT=8974                HTTP listen port")
			fmt.Println("  MCP_PATH=/mcp                HTTP URL path")
			fmt.Println("  IMAGE_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("By default this server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := config.Load()
	if cfg.LogLevel == "debug" {
		log.Printf("Image Scan MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New()

	var err error
	if cfg.HTTP {
		err = srv.RunHTTP(cfg.Addr(), cfg.Path)
	} else {
		err = srv.Run()
	}
	if err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
