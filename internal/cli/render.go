package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/structkit/pkg/bst"
	"github.com/matzehuels/structkit/pkg/cache"
	"github.com/matzehuels/structkit/pkg/errors"
	"github.com/matzehuels/structkit/pkg/node"
	"github.com/matzehuels/structkit/pkg/render"
)

// renderOpts holds the flags shared by the render subcommands.
type renderOpts struct {
	output  string // output file; stdout when empty
	format  string // dot, svg or png
	title   string // diagram title
	strings bool   // keep values as strings instead of parsing ints
	noCache bool
}

// renderCommand creates the "render" command.
func (c *CLI) renderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw data structures with Graphviz",
	}
	cmd.AddCommand(c.renderBSTCommand())
	cmd.AddCommand(c.renderNodesCommand())
	return cmd
}

func (o *renderOpts) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&o.format, "format", "f", string(render.FormatSVG), "output format: dot, svg, png")
	cmd.Flags().StringVar(&o.title, "title", "", "diagram title")
	cmd.Flags().BoolVar(&o.strings, "strings", false, "treat values as strings")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "bypass the diagram cache")
}

func (c *CLI) renderBSTCommand() *cobra.Command {
	var opts renderOpts
	cmd := &cobra.Command{
		Use:   "bst VALUE...",
		Short: "Insert values into a binary search tree and draw it",
		Example: `  structkit render bst 5 3 8 4 -o tree.svg
  structkit render bst -f dot --strings m c x`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), "bst", args, &opts, func(o render.Options) (string, error) {
				if opts.strings {
					return render.TreeDOT[string](bst.Of(args...), o), nil
				}
				values, err := parseInts(args)
				if err != nil {
					return "", err
				}
				return render.TreeDOT[int](bst.Of(values...), o), nil
			})
		},
	}
	opts.bind(cmd)
	return cmd
}

func (c *CLI) renderNodesCommand() *cobra.Command {
	var opts renderOpts
	var circle bool
	cmd := &cobra.Command{
		Use:   "nodes VALUE...",
		Short: "Link values into a chain of nodes and draw it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := "chain"
			if circle {
				kind = "circle"
			}
			return c.runRender(cmd.Context(), kind, args, &opts, func(o render.Options) (string, error) {
				o.Horizontal = true
				build := node.ChainOf[string]
				if circle {
					build = node.CircleOf[string]
				}
				head, err := build(args...)
				if err != nil {
					return "", err
				}
				return render.ChainDOT(head, o), nil
			})
		},
	}
	opts.bind(cmd)
	cmd.Flags().BoolVar(&circle, "circle", false, "close the chain into a circle")
	return cmd
}

// runRender builds DOT source with buildDOT, renders it through the cache
// and writes the result.
func (c *CLI) runRender(ctx context.Context, kind string, args []string, opts *renderOpts, buildDOT func(render.Options) (string, error)) error {
	logger := loggerFromContext(ctx)

	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	dot, err := buildDOT(render.Options{Title: opts.title})
	if err != nil {
		return err
	}

	store := c.newCache(ctx, opts.noCache)
	defer store.Close()

	key := cache.Key("render", kind, string(format), opts.title, opts.strings, args)
	data, hit, err := store.Get(ctx, key)
	if err != nil {
		logger.Debug("cache read failed", "err", err)
	}
	if !hit {
		prog := newProgress(logger)
		spin := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s as %s...", kind, format))
		if format != render.FormatDOT {
			spin.Start()
		}
		data, err = render.Render(ctx, kind, dot, format)
		if format != render.FormatDOT {
			spin.Stop()
		}
		if err != nil {
			return fmt.Errorf("render %s: %w", kind, err)
		}
		if err := store.Set(ctx, key, data, c.cfg.Cache.TTL); err != nil {
			logger.Debug("cache write failed", "err", err)
		}
		prog.done(fmt.Sprintf("Rendered %s", kind))
	} else {
		logger.Debug("cache hit", "kind", kind, "format", format)
	}

	return writeOutput(opts.output, data)
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeResourceAccess, err, "create %s", path)
	}

	_, err = out.Write(data)
	// Close flushes a file; its error counts as much as a failed write.
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeResourceAccess, err, "write %s", outputName(path))
	}
	if path != "" {
		printFile(path)
	}
	return nil
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput opens path for writing, or stdout when path is empty.
var openOutput = func(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{stdout}, nil
	}
	return os.Create(path)
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%q is not an integer (use --strings for text values)", a)
		}
		out[i] = v
	}
	return out, nil
}
