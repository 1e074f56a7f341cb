package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/devref/docsearch/api"
	"github.com/devref/docsearch/config"
	"github.com/devref/docsearch/internal/engine"
)

func main() {
	// Define command-line flags
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		configPath = flag.String("config", "", "Path to a TOML config file")
		port       = flag.String("port", "", "Port to run the server on (overrides config)")
		corpusPath = flag.String("corpus", "", "Path to a corpus JSON file (overrides config; empty uses the embedded corpus)")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("DocSearch - documentation search service\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                              # Serve the embedded corpus on port 5000\n", os.Args[0])
		fmt.Printf("  %s --port 9000                  # Serve on port 9000\n", os.Args[0])
		fmt.Printf("  %s --corpus ./docs/corpus.json  # Serve a custom corpus\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("DocSearch v1.0.0\n")
		return
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != "" {
		settings.Port = *port
	}
	if *corpusPath != "" {
		settings.CorpusPath = *corpusPath
	}
	if problems := settings.Validate(); len(problems) > 0 {
		log.Fatalf("Invalid configuration: %s", strings.Join(problems, "; "))
	}

	// Build the ranking engine: corpus load + weighting model, once, eagerly
	searchEngine, err := engine.NewEngine(settings.CorpusPath)
	if err != nil {
		log.Fatalf("Failed to initialize search engine: %v", err)
	}
	log.Printf("Corpus loaded: %d entries", searchEngine.CorpusSize())

	if settings.WatchCorpus {
		stop, err := searchEngine.WatchCorpus()
		if err != nil {
			log.Fatalf("Failed to watch corpus: %v", err)
		}
		defer func() {
			if err := stop(); err != nil {
				log.Printf("Warning: failed to stop corpus watcher: %v", err)
			}
		}()
		log.Printf("Watching corpus file: %s", settings.CorpusPath)
	}

	// Initialize Gin router
	router := gin.Default()
	router.Use(api.CORSMiddleware())
	router.Use(api.RequestSizeLimitMiddleware(settings.MaxRequestBodyBytes))
	if settings.RateLimitPerSecond > 0 {
		limiter := rate.NewLimiter(rate.Limit(settings.RateLimitPerSecond), settings.RateLimitBurst)
		router.Use(api.RateLimitMiddleware(limiter))
	}

	// Setup API routes
	api.SetupRoutes(router, searchEngine)

	// Start the server
	log.Printf("Starting server on port %s...", settings.Port)
	if err := router.Run(":" + settings.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
