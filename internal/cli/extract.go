package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/usecase/extract"
)

func extractCmd(opts *globalOptions) *cobra.Command {
	var sf sessionFlags
	var input string
	var path string
	var strict bool
	var format string

	c := &cobra.Command{
		Use:   "extract",
		Short: "Convert every number a JSONPath expression selects in a JSON document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			body, err := readInput(cmd.InOrStdin(), input)
			if err != nil {
				return err
			}

			values, err := extract.Values(body, path)
			if err != nil {
				return err
			}

			uc, req, err := buildConvert(cmd, opts, &sf, strict)
			if err != nil {
				return err
			}

			out, err := uc.ExecuteAll(cmd.Context(), req, values)
			if err != nil {
				return err
			}
			if len(out) == 0 && format != "json" {
				fmt.Fprintln(cmd.OutOrStdout(), "(no numeric values found)")
				return nil
			}
			return printConversions(cmd.OutOrStdout(), out, format)
		},
	}

	sf.bind(c)
	c.Flags().StringVarP(&input, "input", "i", "-", "JSON file to read ('-' for stdin)")
	c.Flags().StringVar(&path, "path", "", "JSONPath expression selecting the values (required)")
	c.Flags().BoolVar(&strict, "strict", false, "Fail on unknown categories or units instead of printing 0")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("path")
	return c
}

func readInput(stdin io.Reader, input string) ([]byte, error) {
	in := strings.TrimSpace(input)
	if in == "" || in == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	}

	b, err := os.ReadFile(in)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "cli.extract",
			Kind: domain.KindNotFound,
			Path: in,
			Err:  err,
		}
	}
	return b, nil
}
