package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/usecase"
)

func convertCmd(opts *globalOptions) *cobra.Command {
	var sf sessionFlags
	var strict bool
	var format string

	c := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Convert a single value between two units",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, ok := domain.ParseValue(args[0])
			if !ok {
				return fmt.Errorf("invalid value %q: %w", args[0], domain.ErrInvalidInput)
			}

			uc, req, err := buildConvert(cmd, opts, &sf, strict)
			if err != nil {
				return err
			}
			req.Value = value

			out, err := uc.Execute(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printConversions(cmd.OutOrStdout(), []domain.Conversion{out}, format)
		},
	}

	sf.bind(c)
	c.Flags().BoolVar(&strict, "strict", false, "Fail on unknown categories or units instead of printing 0")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

// buildConvert resolves the config, applies flag overrides and returns a
// use case with a request matching the resulting session.
func buildConvert(cmd *cobra.Command, opts *globalOptions, sf *sessionFlags, strict bool) (*usecase.ConvertValue, usecase.ConvertRequest, error) {
	loaded, err := resolveConfig(opts.configPath)
	if err != nil {
		return nil, usecase.ConvertRequest{}, err
	}
	cfg := sf.apply(cmd, loaded.cfg)

	p := cfg.Precision
	req := usecase.ConvertRequest{
		Category:  cfg.Category,
		FromUnit:  cfg.FromUnit,
		ToUnit:    cfg.ToUnit,
		Precision: &p,
		Strict:    strict,
	}
	return usecase.NewConvertValue(cfg), req, nil
}

func printConversions(w io.Writer, out []domain.Conversion, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(out) == 1 {
			return enc.Encode(out[0])
		}
		return enc.Encode(out)
	case "pretty", "":
		for _, c := range out {
			fmt.Fprintf(w, "%s %s = %s %s\n",
				formatNumber(c.From.Value), c.From.Unit,
				formatNumber(c.To.Value), c.To.Unit,
			)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
