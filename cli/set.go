package cli

import (
	"fmt"

	"github.com/jongio/baseurl/baseurl"
	"github.com/spf13/cobra"
)

type setOptions struct {
	scheme, username, password, host string
	port                             uint16
	path, query, fragment            string

	clearPassword, clearPort, clearQuery, clearFragment bool
}

// apply runs the requested mutations in URL component order. It stops at
// the first refused change.
func (o *setOptions) apply(cmd *cobra.Command, b *baseurl.BaseURL) error {
	changed := cmd.Flags().Changed

	if changed("scheme") {
		if err := b.SetScheme(o.scheme); err != nil {
			return fmt.Errorf("cannot set scheme %q: %w", o.scheme, err)
		}
	}
	if changed("username") {
		b.SetUsername(o.username)
	}
	switch {
	case o.clearPassword:
		b.ClearPassword()
	case changed("password"):
		b.SetPassword(o.password)
	}
	if changed("host") {
		if err := b.SetHost(o.host); err != nil {
			return fmt.Errorf("cannot set host %q: %w", o.host, err)
		}
	}
	switch {
	case o.clearPort:
		b.ClearPort()
	case changed("port"):
		b.SetPort(o.port)
	}
	if changed("path") {
		b.SetPath(o.path)
	}
	switch {
	case o.clearQuery:
		b.ClearQuery()
	case changed("query"):
		b.SetQuery(o.query)
	}
	switch {
	case o.clearFragment:
		b.ClearFragment()
	case changed("fragment"):
		b.SetFragment(o.fragment)
	}
	return nil
}

func newSetCommand(a *app) *cobra.Command {
	o := &setOptions{}
	cmd := &cobra.Command{
		Use:   "set <url>",
		Short: "Change components of a base URL",
		Long: `Change components of a base URL and print the result.

Changes are applied in URL order: scheme, username, password, host, port,
path, query, fragment. A scheme or host change that would leave the URL
unusable as a base is refused and nothing is printed.`,
		Example: `  baseurl set https://example.org/a --port 8443 --clear-query
  baseurl set http://example.org --scheme https --path /v2/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.parse(args[0])
			if err != nil {
				return err
			}
			if err := o.apply(cmd, b); err != nil {
				return err
			}
			return printURL(b)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.scheme, "scheme", "", "New scheme; must stay special or non-special")
	f.StringVar(&o.username, "username", "", "New username (empty removes it)")
	f.StringVar(&o.password, "password", "", "New password")
	f.StringVar(&o.host, "host", "", "New host: domain, IPv4 or [IPv6], without port")
	f.Uint16Var(&o.port, "port", 0, "New port; the scheme's default port is elided")
	f.StringVar(&o.path, "path", "", "New path")
	f.StringVar(&o.query, "query", "", "New query, without the leading '?'")
	f.StringVar(&o.fragment, "fragment", "", "New fragment, without the leading '#'")
	f.BoolVar(&o.clearPassword, "clear-password", false, "Remove the password")
	f.BoolVar(&o.clearPort, "clear-port", false, "Remove the port")
	f.BoolVar(&o.clearQuery, "clear-query", false, "Remove the query")
	f.BoolVar(&o.clearFragment, "clear-fragment", false, "Remove the fragment")

	cmd.MarkFlagsMutuallyExclusive("password", "clear-password")
	cmd.MarkFlagsMutuallyExclusive("port", "clear-port")
	cmd.MarkFlagsMutuallyExclusive("query", "clear-query")
	cmd.MarkFlagsMutuallyExclusive("fragment", "clear-fragment")
	return cmd
}
