package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/andriiyaremenko/typeinspect"
	"github.com/andriiyaremenko/typeinspect/descriptor"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type report struct {
	ID            string `yaml:"id"`
	QualifiedName string `yaml:"qualifiedName"`
	SimpleName    string `yaml:"simpleName"`
	WrappedName   string `yaml:"wrappedName,omitempty"`
	WrappedType   string `yaml:"wrappedType,omitempty"`
	Error         string `yaml:"error,omitempty"`
}

func newDescribeCmd(newLogger func(*cobra.Command) (*slog.Logger, error)) *cobra.Command {
	var (
		file   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe every type of a manifest",
		Long:  `Loads a YAML type manifest and prints qualified, simple and wrapped names of each type.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}

			entries, err := descriptor.NewLoader(descriptor.WithLogger(logger)).Load(file)
			if err != nil {
				return err
			}

			reports := describe(entries)
			for _, r := range reports {
				if r.Error != "" {
					logger.Warn("type is not list-like", "id", r.ID, "error", r.Error)
				}
			}

			return render(cmd.OutOrStdout(), output, reports)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the type manifest")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, yaml)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func describe(entries []descriptor.Entry) []report {
	reports := make([]report, 0, len(entries))

	for _, e := range entries {
		r := report{
			ID:            e.ID,
			QualifiedName: typeinspect.QualifiedName(e.Type),
			SimpleName:    typeinspect.SimpleName(e.Type),
		}

		name, err := typeinspect.WrappedName(e.Type)
		if err != nil {
			r.Error = err.Error()
			reports = append(reports, r)

			continue
		}

		r.WrappedName = name

		if c := typeinspect.ErasedClass(e.Type); typeinspect.IsPrimitiveArray(c) ||
			typeinspect.IsList(c) || typeinspect.IsArray(c) {
			wrapped, err := typeinspect.WrappedType(e.Type)
			if err != nil {
				r.Error = err.Error()
			} else {
				r.WrappedType = wrapped.String()
			}
		}

		reports = append(reports, r)
	}

	return reports
}

func render(w io.Writer, output string, reports []report) error {
	switch output {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("failed to encode reports: %w", err)
		}

		return enc.Close()
	case "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tQUALIFIED\tSIMPLE\tWRAPPED NAME\tWRAPPED TYPE")

		for _, r := range reports {
			wrappedName := r.WrappedName
			if r.Error != "" {
				wrappedName = "error: " + r.Error
			}

			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				r.ID, r.QualifiedName, r.SimpleName, wrappedName, orDash(r.WrappedType))
		}

		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
