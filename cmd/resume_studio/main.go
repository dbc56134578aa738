// Package main provides the entry point for the Resume Studio CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_studio",
	Short: "Resume Studio Markdown resume toolkit",
	Long:  "Resume Studio parses Markdown resumes into structured documents and renders them as HTML or PDF, with optional LLM-backed resume generation and a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
