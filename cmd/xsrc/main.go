// Command xsrc reads a YAML API schema and emits a JavaScript client.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/xsrc/pkgs/codemodel"
	"github.com/aledsdavies/xsrc/pkgs/ir"
	"github.com/aledsdavies/xsrc/pkgs/jsgen"
	"github.com/aledsdavies/xsrc/pkgs/schema"
)

var (
	schemaFile string
	target     string
	outFile    string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "xsrc",
		Short:         "Generate an HTTP client from a YAML API schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.PersistentFlags().StringVarP(&schemaFile, "file", "f", "", "path to the YAML schema (required)")
	cmd.PersistentFlags().StringVarP(&target, "target", "t", "js", "target language (only \"js\" is supported)")
	cmd.PersistentFlags().StringVarP(&outFile, "out", "o", "output.js", "output file path")
	cmd.MarkPersistentFlagRequired("file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if target != "js" {
		return fmt.Errorf("unsupported target %q (only \"js\" is supported)", target)
	}

	data, err := os.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("reading schema file: %w", err)
	}

	root, err := schema.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing schema: %w", err)
	}

	tree, err := ir.Transform(root)
	if err != nil {
		return fmt.Errorf("building intermediate representation: %w", err)
	}

	if errs := ir.Validate(tree); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return fmt.Errorf("invalid scope references:\n%s", strings.Join(msgs, "\n"))
	}

	code, err := jsgen.Rewrite(tree)
	if err != nil {
		return fmt.Errorf("generating code model: %w", err)
	}

	out := []byte(codemodel.Render(code))
	if err := os.WriteFile(outFile, out, 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	return nil
}

func main() {
	exitCode := 0
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = 1
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
