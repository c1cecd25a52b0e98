package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"prot_buddy_go/benchmark"
	"prot_buddy_go/config"
	"prot_buddy_go/logger"
	"prot_buddy_go/tools/protein_profile"
	"prot_buddy_go/tools/sanity_check"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`Prot Buddy - Custom Help Menu
Usage:
  prot_buddy <tool> [options]

Tools:
  protparam		Physicochemical properties of protein sequences
			(molecular weight, aromaticity, instability index,
			isoelectric point, secondary structure fractions)
  check			Run diagnostic test on a reference antibody chain

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Displays computational resource usage and
			pertinent operating system information

Environment (also read from ./.env):
  PROT_BUDDY_FORMAT	Default report format (text, csv, json)
  PROT_BUDDY_WORKERS	Default worker count (<= 0 uses one per CPU)
  PROT_BUDDY_LOG_LEVEL	debug, info, warn or error`,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("Prot Buddy - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tProt Buddy:\t\t%s\n", config.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tProtParam:\t\t%s\n", config.ProtParam)
	fmt.Printf("\tSanity Check:\t\t%s\n", config.Sanity_check)
	fmt.Printf("\tBenchmark:\t\t%s\n", config.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Scan for executable-specific help flags
	if len(os.Args) == 2 && (os.Args[1] == "-h" || os.Args[1] == "-help") {
		printCustomHelp()
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		os.Exit(1)
	}
	if err := logger.InitLogger(logger.ParseLevel(settings.LogLevel)); err != nil {
		fmt.Fprintln(os.Stderr, "Error starting logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()
	if !settings.EnvFile {
		logger.Debug("No .env found, using local environment")
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	logger.Debug("Dispatching tool", zap.String("tool", toolName), zap.Strings("args", cleanedArgs))

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "protparam":
			protein_profile.Run(cleanedArgs)
		case "check":
			sanity_check.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("prot_buddy %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
