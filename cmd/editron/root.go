package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"editron/pkg/compiler"
	"editron/pkg/listing"
	"editron/pkg/utils"
)

var rootCmd = &cobra.Command{
	Use:   "editron",
	Short: "Editron front end: lexer and IR generator",
	Long: `Editron turns source text into tokens and flat three-address IR.

Commands:
  tokens  Print the token stream of a source file
  ir      Print the generated IR (optionally symbols, tokens, PNG listing)
  check   Lex and generate, reporting only errors
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		log.Print(err)
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newTokensCmd(), newIRCmd(), newCheckCmd())
}

// sourceArg returns the optional file argument.
func sourceArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream (default file: " + utils.DefaultSource + ")",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, src, err := utils.ReadSource(sourceArg(args))
			if err != nil {
				return err
			}
			tokens, err := compiler.Lex(src)
			if err != nil {
				return fmt.Errorf("lex error: %w", err)
			}
			printTokens(cmd.OutOrStdout(), tokens)
			return nil
		},
	}
}

type irOptions struct {
	symbols bool
	tokens  bool
	pngPath string
}

func newIRCmd() *cobra.Command {
	opts := &irOptions{}
	cmd := &cobra.Command{
		Use:   "ir [file]",
		Short: "Print the generated IR (default file: " + utils.DefaultSource + ")",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIR(cmd.OutOrStdout(), sourceArg(args), opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.symbols, "symbols", "s", false, "also print the symbol table")
	cmd.Flags().BoolVarP(&opts.tokens, "tokens", "t", false, "also print the token stream")
	cmd.Flags().StringVar(&opts.pngPath, "png", "", "render the listing to a PNG file")
	return cmd
}

func runIR(w io.Writer, path string, opts *irOptions) error {
	fullPath, src, err := utils.ReadSource(path)
	if err != nil {
		return err
	}
	prog, err := compiler.Compile(src)
	if err != nil {
		return err
	}

	if opts.tokens {
		printTokens(w, prog.Tokens)
		fmt.Fprintln(w)
	}

	text := "IR\n" + compiler.FormatProgram(prog.Instructions)
	if len(prog.Instructions) == 0 {
		text += "  (no instructions)\n"
	}
	if opts.symbols {
		text += "\n" + prog.Symbols.String()
	}
	fmt.Fprint(w, text)

	if opts.pngPath != "" {
		if err := listing.SavePNG(opts.pngPath, listing.Lines(text)); err != nil {
			return fmt.Errorf("failed to write listing %q: %w", opts.pngPath, err)
		}
		log.Printf("%s: listing written to %s", fullPath, opts.pngPath)
	}
	return nil
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Lex and generate, exiting non-zero on the first error",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fullPath, src, err := utils.ReadSource(sourceArg(args))
			if err != nil {
				return err
			}
			prog, err := compiler.Compile(src)
			if err != nil {
				return fmt.Errorf("%s: %w", fullPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d tokens, %d instructions, %d symbols)\n",
				fullPath, len(prog.Tokens), len(prog.Instructions), prog.Symbols.Len())
			return nil
		},
	}
}

func printTokens(w io.Writer, tokens []compiler.Token) {
	fmt.Fprintf(w, "Tokens (%d)\n", len(tokens))
	for _, tok := range tokens {
		fmt.Fprintln(w, " ", tok)
	}
}
