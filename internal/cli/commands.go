package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"column-mapper/internal/column"
	"column-mapper/internal/mapping"
)

func (a *app) presetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List known column mappings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jsonOutput, _ := cmd.Flags().GetBool("json")
			file, _ := cmd.Flags().GetString("file")

			reg, err := a.registry(file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")

				return enc.Encode(reg.Presets())
			}

			for _, p := range reg.Presets() {
				fmt.Fprintf(out, "%s\t%s\n", p.ID, formatColumns(p.Mapper()))
			}

			return nil
		},
	}

	cmd.Flags().BoolP("json", "j", false, "Output presets as JSON")
	cmd.Flags().StringP("file", "f", "", "Mapping file declaring extra presets")

	return cmd
}

func (a *app) showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <preset>",
		Short: "Print a known mapping as a mapping file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			formatName, _ := cmd.Flags().GetString("format")

			if formatName == "" {
				formatName = a.cfg.Format
			}

			format, err := mapping.ParseFormat(formatName)
			if err != nil {
				return err
			}

			reg, err := a.registry(file)
			if err != nil {
				return err
			}

			m, err := reg.UseKnownMap(args[0])
			if err != nil {
				return err
			}

			data, err := mapping.Encode(&mapping.File{Version: mapping.CurrentVersion, Columns: m.Map()}, format)
			if err != nil {
				return errors.Wrap(err, "failed to encode mapping")
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringP("format", "o", "", "Output format: yaml or toml")
	cmd.Flags().StringP("file", "f", "", "Mapping file declaring extra presets")

	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a mapping file and report readiness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			f, err := mapping.LoadFile(path)
			if err != nil {
				return err
			}

			a.log.Infow("loaded mapping file", "path", path, "format", mapping.FormatForPath(path), "preset", f.Preset)

			out := cmd.OutOrStdout()

			res := mapping.Validate(f, nil)
			for _, d := range res.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			if res.HasErrors() {
				return errors.Newf("%s: %d error(s)", path, len(res.Errors))
			}

			m, err := mapping.Build(f, nil)
			if err != nil {
				return err
			}

			ready, needed := m.Readiness()
			if !ready {
				a.log.Warnw("mapper not ready", "path", path, "needed", fmt.Sprint(needed))
				return errors.Newf("%s: not ready, missing %v", path, needed)
			}

			fmt.Fprintf(out, "ready\t%s\n", formatColumns(m))

			return nil
		},
	}
}

// registry returns the built-in presets, extended with those declared in
// the mapping file at path when path is set.
func (a *app) registry(path string) (*column.Registry, error) {
	if path == "" {
		return column.DefaultRegistry(), nil
	}

	f, err := mapping.LoadFile(path)
	if err != nil {
		return nil, err
	}

	reg, err := mapping.Registry(f, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load presets from %s", path)
	}

	a.log.Debugw("registered file presets", "path", path, "count", len(f.Presets))

	return reg, nil
}

func formatColumns(m *column.Mapper) string {
	parts := make([]string, 0, column.RoleTotal)

	for _, r := range column.Roles() {
		name, ok := m.Column(r)
		if !ok {
			name = "-"
		}

		parts = append(parts, r.String()+"="+name)
	}

	return strings.Join(parts, " ")
}
