package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"doorinsights/internal/app"
)

// main is the application entry point and orchestrator setup
func main() {
	// Parse command line flags
	var (
		helpFlag    = flag.Bool("help", false, "Show help message")
		versionFlag = flag.Bool("version", false, "Show version information")
		inputFlag   = flag.String("input", "", "Path to the word-level transcript JSON document")
	)
	flag.Parse()

	if *helpFlag {
		printHelp()
		os.Exit(0)
	}

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	if *inputFlag == "" {
		fmt.Fprintln(os.Stderr, "Error: -input is required")
		printHelp()
		os.Exit(2)
	}

	// Run the main application logic
	if err := runApplication(*inputFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

// runApplication contains the core application logic that can be tested
func runApplication(inputPath string) error {
	// Gateway credentials may live in a .env file
	_ = godotenv.Load()

	// Create structured logger for main
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("Door Insights starting up",
		zap.String("component", "main"),
		zap.String("version", "1.2"))

	// Create application instance using orchestrator
	application, err := app.NewApplication()
	if err != nil {
		logger.Error("Failed to create application",
			zap.Error(err),
			zap.String("component", "main"))
		return fmt.Errorf("failed to create application: %w", err)
	}

	// Set up context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start signal handler goroutine
	go func() {
		sig := <-sigChan
		logger.Info("Received shutdown signal",
			zap.String("signal", sig.String()),
			zap.String("component", "main"))
		cancel()
	}()

	if err := application.Run(ctx, inputPath); err != nil {
		logger.Error("Application runtime error",
			zap.Error(err),
			zap.String("component", "main"))
		return fmt.Errorf("application runtime error: %w", err)
	}

	logger.Info("Door Insights finished successfully",
		zap.String("component", "main"))
	return nil
}

// printHelp displays command line usage information
func printHelp() {
	fmt.Println("Door Insights - Transcript Segmentation and Classification Engine")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("    doorinsights -input <transcript.json> [OPTIONS]")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("    -input     Path to the word-level transcript JSON document")
	fmt.Println("    -help      Show this help message")
	fmt.Println("    -version   Show version information")
	fmt.Println()
	fmt.Println("CONFIGURATION:")
	fmt.Println("    Configuration is loaded from environment variables, or from the")
	fmt.Println("    file named by CONFIG_PATH. Gateway credentials may be placed in")
	fmt.Println("    a .env file. See config.example.yaml for available options.")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("    doorinsights -input route-2031.json")
	fmt.Println("    REPORT_PATH=summary.xlsx doorinsights -input route-2031.json")
}

// printVersion displays version and build information
func printVersion() {
	fmt.Println("Door Insights")
	fmt.Println("Version: 1.2")
	fmt.Println("Build: Segmentation and Classification Engine")
}
