package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/vire-gate/internal/common"
	gatemcp "github.com/bobmcallan/vire-gate/internal/mcp"
	"github.com/bobmcallan/vire-gate/internal/storage/badger"
	"github.com/bobmcallan/vire-gate/internal/validate"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop)")
	configFile := flag.String("config", "vire-gate.toml", "Path to config file")
	flag.Parse()

	cfg, err := common.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	common.LoadVersionFromFile()

	logger := common.NewLoggerFromConfig(cfg.Logging)

	// Entity registry backing the existence checks
	db, err := badger.NewBadgerDB(logger, &cfg.Storage.Badger)
	if err != nil {
		log.Fatalf("Failed to open entity registry: %v", err)
	}
	defer db.Close()
	store := badger.NewEntityStore(db, logger)

	processor := validate.NewProcessor()
	for _, entity := range []string{"portfolio", "ticker"} {
		processor.RegisterChecker(entity, store)
	}

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(gatemcp.VersionTool(), gatemcp.VersionToolHandler())
	count := gatemcp.RegisterTools(mcpServer, processor, toolDefinitions(store), logger)
	logger.Info().Int("tools", count).Str("version", common.GetVersion()).Msg("tool catalog registered")

	if *stdio {
		// Stdio transport — reads stdin, writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	port := cfg.Server.Port

	// Streamable HTTP transport — listens on configured port
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	log.Printf("Starting MCP Streamable HTTP on :%s", port)

	if err := httpServer.Start(":" + port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
