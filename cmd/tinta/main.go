package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tintalang/tinta/language/lexer"
)

var (
	version = "0.1.0"
	verbose bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "tinta",
	Short: "Tinta is a CLI tool for working with Tinta sources",
	Long:  `Tinta is a CLI tool for tokenizing and checking Tinta source files.`,
}

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Tinta source file",
	Long:  `Tokenize a Tinta source file and print its token stream.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filePath := args[0]
		source, err := os.ReadFile(filePath)
		if err != nil {
			log.Fatalf("Failed to read file: %v", err)
		}

		tokens, err := lexer.Tokenize(string(source))
		if err != nil {
			log.Fatalf("Failed to tokenize %s: %v", filePath, err)
		}

		for _, tok := range tokens {
			if tok.Value != "" {
				fmt.Printf("%d:%d\t%s\t%q\n", tok.Pos.Line, tok.Pos.Column, tok.Kind, tok.Value)
			} else {
				fmt.Printf("%d:%d\t%s\n", tok.Pos.Line, tok.Pos.Column, tok.Kind)
			}
		}

		if verbose {
			// The count includes the trailing EOF token.
			fmt.Printf("\nTokenized %s: %d tokens\n", filePath, len(tokens))
		}
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check a Tinta source file for lexical errors",
	Long:  `Tokenize a Tinta source file and report only whether it is lexically valid.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filePath := args[0]
		source, err := os.ReadFile(filePath)
		if err != nil {
			log.Fatalf("Failed to read file: %v", err)
		}

		tokens, err := lexer.Tokenize(string(source))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", filePath, err)
			os.Exit(1)
		}

		fmt.Printf("%s: ok (%d tokens)\n", filePath, len(tokens))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tinta version %s\n", version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
