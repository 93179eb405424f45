package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/namematch/internal/config"
	"github.com/namematch/internal/matcher"
	"github.com/namematch/internal/store"
	"github.com/namematch/internal/web"
)

func main() {
	config.LoadEnv()

	rootCmd := &cobra.Command{
		Use:   "namematch",
		Short: "Name directory matching",
		Long:  `Resolves noisy, misspelled, or transliterated queries to the best-matching name in a directory`,
	}

	rootCmd.AddCommand(createMatchCmd())
	rootCmd.AddCommand(createServeCmd())
	rootCmd.AddCommand(createPingCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// createMatchCmd creates the match subcommand.
func createMatchCmd() *cobra.Command {
	var candidatesFile string
	var explain bool
	var trace bool

	matchCmd := &cobra.Command{
		Use:   "match <query>",
		Short: "Resolve a query against the directory",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			engine, candidates, err := buildEngine(candidatesFile)
			if err != nil {
				log.Fatalf("Failed to load directory: %v", err)
			}
			engine.SetDebug(trace)

			result, ok := engine.Match(candidates, args[0])
			if !ok {
				fmt.Println("No match")
				os.Exit(1)
			}

			if explain {
				fmt.Printf("%s (stage=%s score=%.3f)\n", result.Candidate, result.Stage, result.Score)
			} else {
				fmt.Println(result.Candidate)
			}
		},
	}

	matchCmd.Flags().StringVarP(&candidatesFile, "candidates", "c", "", "file with one candidate name per line (default: load from database)")
	matchCmd.Flags().BoolVar(&explain, "explain", false, "print the matching stage and score")
	matchCmd.Flags().BoolVar(&trace, "trace", false, "enable pipeline trace output")

	return matchCmd
}

// createServeCmd creates the serve subcommand.
func createServeCmd() *cobra.Command {
	var candidatesFile string

	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP search API",
		Run: func(cmd *cobra.Command, args []string) {
			engine, candidates, err := buildEngine(candidatesFile)
			if err != nil {
				log.Fatalf("Failed to load directory: %v", err)
			}

			server := web.NewServer(web.ConfigFromEnv(), engine, candidates)
			if err := server.Start(); err != nil {
				log.Fatalf("Server failed: %v", err)
			}
		},
	}
}

// createPingCmd creates a command to test database connectivity.
func createPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Test database connectivity",
		Run: func(cmd *cobra.Command, args []string) {
			conn, err := store.NewConnection()
			if err != nil {
				log.Fatalf("Failed to connect to database: %v", err)
			}
			defer conn.Close()

			candidates, err := conn.LoadCandidates()
			if err != nil {
				log.Fatalf("Failed to load directory: %v", err)
			}
			fmt.Printf("Database connection successful, %d names in directory\n", len(candidates))
		},
	}
}

// buildEngine loads candidates and tables from a file or the database.
// File-based runs use the built-in tables.
func buildEngine(candidatesFile string) (*matcher.Engine, []string, error) {
	if candidatesFile != "" {
		candidates, err := readCandidatesFile(candidatesFile)
		if err != nil {
			return nil, nil, err
		}
		return matcher.NewDefaultEngine(), candidates, nil
	}

	conn, err := store.NewConnection()
	if err != nil {
		return nil, nil, err
	}
	defer conn.Close()

	candidates, err := conn.LoadCandidates()
	if err != nil {
		return nil, nil, err
	}
	tables, err := conn.LoadTables()
	if err != nil {
		return nil, nil, err
	}

	return matcher.NewEngine(tables), candidates, nil
}

func readCandidatesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open candidates file: %w", err)
	}
	defer f.Close()

	var candidates []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			candidates = append(candidates, line)
		}
	}
	return candidates, scanner.Err()
}
