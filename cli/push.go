package cli

import (
	"fmt"
	"strings"

	"github.com/jongio/baseurl/baseurl"
	"github.com/jongio/baseurl/cliout"
	"github.com/spf13/cobra"
)

func newPushCommand(a *app) *cobra.Command {
	var (
		popIfEmpty bool
		params     []string
	)
	cmd := &cobra.Command{
		Use:   "push <url> <segment>...",
		Short: "Append path segments and query parameters",
		Long: `Append path segments to a base URL. Each argument becomes exactly one
segment: '/' and '%' inside it are percent-encoded, "." and ".." are
ignored. --param name=value appends form-encoded query pairs.`,
		Example: `  baseurl push https://example.org/ sitemaps sitemap_1.xml
  baseurl push https://example.org/api/ --pop-if-empty users 42 --param expand=all`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.parse(args[0])
			if err != nil {
				return err
			}

			pairs := make([][2]string, 0, len(params))
			for _, p := range params {
				name, value, ok := strings.Cut(p, "=")
				if !ok {
					return fmt.Errorf("invalid --param %q: expected name=value", p)
				}
				pairs = append(pairs, [2]string{name, value})
			}

			segments := b.PathSegmentsMut()
			if popIfEmpty {
				segments.PopIfEmpty()
			}
			segments.Extend(args[1:]...)

			if len(pairs) > 0 {
				b.QueryPairsMut().ExtendPairs(func(yield func(string, string) bool) {
					for _, p := range pairs {
						if !yield(p[0], p[1]) {
							return
						}
					}
				})
			}
			return printURL(b)
		},
	}
	cmd.Flags().BoolVar(&popIfEmpty, "pop-if-empty", false, "Drop a trailing empty segment before pushing")
	cmd.Flags().StringArrayVar(&params, "param", nil, "Query pair to append as name=value (repeatable)")
	return cmd
}

type joinResult struct {
	Base   string `json:"base" yaml:"base"`
	Ref    string `json:"ref" yaml:"ref"`
	URL    string `json:"url" yaml:"url"`
	IsBase bool   `json:"isBase" yaml:"isBase"`
}

func newJoinCommand(a *app) *cobra.Command {
	var requireBase bool
	cmd := &cobra.Command{
		Use:   "join <base> <ref>",
		Short: "Resolve a reference against a base URL",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.parse(args[0])
			if err != nil {
				return err
			}

			if requireBase {
				joined, err := b.JoinBase(args[1])
				if err != nil {
					return fmt.Errorf("cannot join %q: %w", args[1], err)
				}
				r := joinResult{Base: b.String(), Ref: args[1], URL: joined.String(), IsBase: true}
				return cliout.Print(r, func() { cliout.Plain("%s", r.URL) })
			}

			joined, err := b.Join(args[1])
			if err != nil {
				return err
			}
			r := joinResult{Base: b.String(), Ref: args[1], URL: joined.Href(false), IsBase: baseurl.IsBaseSuitable(joined)}
			return cliout.Print(r, func() { cliout.Plain("%s", r.URL) })
		},
	}
	cmd.Flags().BoolVar(&requireBase, "require-base", false, "Fail unless the result can itself be a base")
	return cmd
}
