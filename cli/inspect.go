package cli

import (
	"slices"
	"strconv"
	"strings"

	"github.com/jongio/baseurl/baseurl"
	"github.com/jongio/baseurl/cliout"
	"github.com/spf13/cobra"
)

type queryPair struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

type inspectReport struct {
	URL           string      `json:"url" yaml:"url"`
	Scheme        string      `json:"scheme" yaml:"scheme"`
	Username      string      `json:"username,omitempty" yaml:"username,omitempty"`
	Password      string      `json:"password,omitempty" yaml:"password,omitempty"`
	Host          string      `json:"host" yaml:"host"`
	HostKind      string      `json:"hostKind" yaml:"hostKind"`
	UnicodeDomain string      `json:"unicodeDomain,omitempty" yaml:"unicodeDomain,omitempty"`
	Port          *uint16     `json:"port,omitempty" yaml:"port,omitempty"`
	EffectivePort *uint16     `json:"effectivePort,omitempty" yaml:"effectivePort,omitempty"`
	Path          string      `json:"path" yaml:"path"`
	Segments      []string    `json:"segments" yaml:"segments"`
	Query         *string     `json:"query,omitempty" yaml:"query,omitempty"`
	QueryPairs    []queryPair `json:"queryPairs,omitempty" yaml:"queryPairs,omitempty"`
	Fragment      *string     `json:"fragment,omitempty" yaml:"fragment,omitempty"`
	Origin        string      `json:"origin" yaml:"origin"`
}

const maskedPassword = "****"

func newInspectReport(b *baseurl.BaseURL, showPassword bool) inspectReport {
	r := inspectReport{
		URL:      b.String(),
		Scheme:   b.Scheme(),
		Username: b.Username(),
		Host:     b.HostStr(),
		HostKind: b.Host().Kind.String(),
		Path:     b.Path(),
		Segments: slices.Collect(b.PathSegments()),
		Origin:   b.Origin().String(),
	}
	if pw, ok := b.Password(); ok {
		r.Password = maskedPassword
		if showPassword {
			r.Password = pw
		}
	}
	if u, ok := b.UnicodeDomain(); ok && u != r.Host {
		r.UnicodeDomain = u
	}
	if p, ok := b.Port(); ok {
		r.Port = &p
	}
	if p, ok := b.PortOrKnownDefault(); ok {
		r.EffectivePort = &p
	}
	if q, ok := b.Query(); ok {
		r.Query = &q
		for name, value := range b.QueryPairs() {
			r.QueryPairs = append(r.QueryPairs, queryPair{Name: name, Value: value})
		}
	}
	if f, ok := b.Fragment(); ok {
		r.Fragment = &f
	}
	if !showPassword {
		r.URL = redact(b)
	}
	return r
}

// redact returns the serialization of b with any password masked.
func redact(b *baseurl.BaseURL) string {
	if _, ok := b.Password(); !ok {
		return b.String()
	}
	c := b.Clone()
	c.SetPassword(maskedPassword)
	return c.String()
}

func newInspectCommand(a *app) *cobra.Command {
	var showPassword bool
	cmd := &cobra.Command{
		Use:   "inspect <url>",
		Short: "Show every component of a base URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.parse(args[0])
			if err != nil {
				return err
			}
			r := newInspectReport(b, showPassword)
			return cliout.Print(r, func() { printInspect(r) })
		},
	}
	cmd.Flags().BoolVar(&showPassword, "show-password", false, "Print the password instead of masking it")
	return cmd
}

func printInspect(r inspectReport) {
	cliout.Header(r.URL)
	cliout.Label("Scheme", r.Scheme)
	if r.Username != "" {
		cliout.Label("Username", r.Username)
	}
	if r.Password != "" {
		cliout.Label("Password", r.Password)
	}
	cliout.Label("Host", r.Host+" "+cliout.Muted("("+r.HostKind+")"))
	if r.UnicodeDomain != "" {
		cliout.Label("Unicode", r.UnicodeDomain)
	}
	switch {
	case r.Port != nil:
		cliout.Label("Port", strconv.Itoa(int(*r.Port)))
	case r.EffectivePort != nil:
		cliout.Label("Port", cliout.Muted(strconv.Itoa(int(*r.EffectivePort))+" (default)"))
	}
	cliout.Label("Path", r.Path)
	if len(r.Segments) > 1 || r.Segments[0] != "" {
		cliout.Label("Segments", strings.Join(r.Segments, " | "))
	}
	if r.Query != nil {
		cliout.Label("Query", *r.Query)
		for _, p := range r.QueryPairs {
			cliout.Bullet("%s = %s", p.Name, p.Value)
		}
	}
	if r.Fragment != nil {
		cliout.Label("Fragment", *r.Fragment)
	}
	cliout.Label("Origin", r.Origin)
}

type urlResult struct {
	URL string `json:"url" yaml:"url"`
}

// printURL prints b as a bare line, or as {"url": ...} for JSON and YAML.
func printURL(b *baseurl.BaseURL) error {
	s := b.String()
	return cliout.Print(urlResult{URL: s}, func() { cliout.Plain("%s", s) })
}

func newStripCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strip <url>",
		Short: "Remove credentials, query and fragment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.parse(args[0])
			if err != nil {
				return err
			}
			b.Strip()
			return printURL(b)
		},
	}
}

func newHostOnlyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "host-only <url>",
		Short: "Reduce a URL to scheme://host/",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.parse(args[0])
			if err != nil {
				return err
			}
			b.MakeHostOnly()
			return printURL(b)
		},
	}
}

type originResult struct {
	Origin string `json:"origin" yaml:"origin"`
	Scheme string `json:"scheme" yaml:"scheme"`
	Host   string `json:"host" yaml:"host"`
	Port   uint16 `json:"port" yaml:"port"`
}

func newOriginCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "origin <url>",
		Short: "Print the (scheme, host, port) origin of a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.parse(args[0])
			if err != nil {
				return err
			}
			o := b.Origin()
			r := originResult{Origin: o.String(), Scheme: o.Scheme, Host: o.Host.String(), Port: o.Port}
			return cliout.Print(r, func() { cliout.Plain("%s", r.Origin) })
		},
	}
}
