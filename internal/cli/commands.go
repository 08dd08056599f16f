package cli

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/JaimeStill/graph-vis/internal/artifacts"
	"github.com/JaimeStill/graph-vis/pkg/pagination"
)

func graphCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the whole network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := opts.client.Graph(cmd.Context())
			if err != nil {
				return err
			}
			return opts.render(cmd, g)
		},
	}
}

func nodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "node <id>",
		Short: "Print a node with its edges and neighbors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := opts.client.Neighborhood(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return opts.render(cmd, n)
		},
	}
}

func refreshCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Reload the network held by the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := opts.client.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			return opts.render(cmd, r)
		},
	}
}

func domainsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "domains <id>...",
		Short: "Print domain pairs for the edges of the given nodes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.client.Domains(cmd.Context(), args)
			if err != nil {
				return err
			}
			return opts.render(cmd, d)
		},
	}
}

func sequenceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sequence <protein-id>",
		Short: "Print a protein sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := opts.client.Sequence(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return opts.render(cmd, seq)
		},
	}
}

func repeatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repeats <protein-id>",
		Short: "Print the repeat summary of a protein",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.client.Repeats(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return opts.render(cmd, r)
		},
	}
}

func artifactCmd(opts *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:       "artifact <svg|pdb|gbk> <protein-id>",
		Short:     "Print or save a protein artifact file",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(artifacts.KindSVG), string(artifacts.KindPDB), string(artifacts.KindGBK)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := artifacts.Kind(args[0])

			content, err := opts.client.Artifact(cmd.Context(), kind, args[1])
			if err != nil {
				return err
			}

			if out == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", out, units.HumanSize(float64(len(content))))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write the file here instead of printing it")
	return cmd
}

func svgPageCmd(opts *options) *cobra.Command {
	var page pagination.PageRequest

	cmd := &cobra.Command{
		Use:   "svg-page <node-id>",
		Short: "Print one page of gene cluster SVGs for a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.client.SVGPage(cmd.Context(), args[0], page)
			if err != nil {
				return err
			}
			return opts.render(cmd, p)
		},
	}

	cmd.Flags().IntVar(&page.PageNum, "page", 1, "Page number")
	cmd.Flags().IntVar(&page.PageSize, "size", 10, "Page size")
	return cmd
}
