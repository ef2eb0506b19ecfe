package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/image-edit-mcp/internal/config"
	"github.com/ironsheep/image-edit-mcp/internal/server"
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
			fmt.Printf("image-edit-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("image-edit-mcp - MCP server for interactive image editing")
			fmt.Println()
			fmt.Println("Usage: image-edit-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  IMAGE_EDIT_LOG_LEVEL=debug        Enable debug logging")
			fmt.Println("  IMAGE_EDIT_DISPLAY_WIDTH=800      Default display width")
			fmt.Println("  IMAGE_EDIT_DISPLAY_HEIGHT=600     Default display height")
			fmt.Println("  IMAGE_EDIT_POLICY=current         Edit the current image (current) or always the loaded one (original)")
			fmt.Println("  IMAGE_EDIT_RECT_COLOR=#FF0000     Rectangle outline color")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Camera capture requires a build with -tags gocv.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Ignoring invalid configuration: %v", err)
	}

	if cfg.Debug {
		log.Printf("Image Edit MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Policy %s, display %dx%d", cfg.Policy, cfg.DisplayWidth, cfg.DisplayHeight)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
