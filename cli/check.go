package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jongio/baseurl/baseurl"
	"github.com/jongio/baseurl/cliout"
	"github.com/jongio/baseurl/logutil"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"
)

const (
	resultBase       = "base"
	resultNotABase   = "not-a-base"
	resultParseError = "parse-error"
)

type checkResult struct {
	Line   int    `json:"line" yaml:"line"`
	Input  string `json:"input" yaml:"input"`
	Result string `json:"result" yaml:"result"`
	URL    string `json:"url,omitempty" yaml:"url,omitempty"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

type checkSummary struct {
	Total      int `json:"total" yaml:"total"`
	Base       int `json:"base" yaml:"base"`
	NotABase   int `json:"notABase" yaml:"notABase"`
	ParseError int `json:"parseError" yaml:"parseError"`
}

type metricSample struct {
	Name   string            `json:"name" yaml:"name"`
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
	Value  float64           `json:"value" yaml:"value"`
}

type checkReport struct {
	Results []checkResult  `json:"results" yaml:"results"`
	Summary checkSummary   `json:"summary" yaml:"summary"`
	Metrics []metricSample `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

func (a *app) checkLine(n int, input string) checkResult {
	r := checkResult{Line: n, Input: input}
	b, err := a.parse(input)
	var pe *baseurl.ParseError
	switch {
	case err == nil:
		r.Result = resultBase
		r.URL = b.String()
	case errors.Is(err, baseurl.ErrNotABase):
		r.Result = resultNotABase
		r.Detail = "cannot be a base"
	case errors.As(err, &pe):
		r.Result = resultParseError
		r.Detail = string(pe.Type())
	default:
		r.Result = resultParseError
		r.Detail = err.Error()
	}
	return r
}

// check classifies every non-blank, non-comment line read from r.
func (a *app) check(r io.Reader) (checkReport, error) {
	log := logutil.NewLogger("cli").WithOperation("check")
	var report checkReport

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res := a.checkLine(n, line)
		report.Results = append(report.Results, res)

		report.Summary.Total++
		switch res.Result {
		case resultBase:
			report.Summary.Base++
		case resultNotABase:
			report.Summary.NotABase++
		default:
			report.Summary.ParseError++
		}
		if res.Result != resultBase {
			log.Debug("url failed", "line", n, "result", res.Result, "detail", res.Detail)
		}
	}
	if err := scanner.Err(); err != nil {
		return report, fmt.Errorf("failed to read input: %w", err)
	}
	if report.Results == nil {
		report.Results = []checkResult{}
	}
	return report, nil
}

// gatherMetrics returns the baseurl_* samples from the default registry.
func gatherMetrics(g prometheus.Gatherer) ([]metricSample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}
	var samples []metricSample
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "baseurl_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			s := metricSample{Name: mf.GetName(), Value: sampleValue(mf.GetType(), m)}
			if len(m.GetLabel()) > 0 {
				s.Labels = make(map[string]string, len(m.GetLabel()))
				for _, lp := range m.GetLabel() {
					s.Labels[lp.GetName()] = lp.GetValue()
				}
			}
			samples = append(samples, s)
		}
	}
	return samples, nil
}

func sampleValue(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	default:
		return m.GetUntyped().GetValue()
	}
}

func newCheckCommand(a *app) *cobra.Command {
	var showMetrics bool
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check that every URL in a list can be used as a base",
		Long: `Read one URL per line from file, or stdin when no file is given, and
classify each as base, not-a-base or parse-error. Blank lines and lines
starting with '#' are skipped. Exits with status 1 if any URL fails.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			report, err := a.check(in)
			if err != nil {
				return err
			}
			if showMetrics {
				if report.Metrics, err = gatherMetrics(prometheus.DefaultGatherer); err != nil {
					return err
				}
			}

			if err := cliout.Print(report, func() { printCheck(report) }); err != nil {
				return err
			}
			if report.Summary.Base < report.Summary.Total {
				return errSilent
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Also print the baseurl_* Prometheus counters")
	return cmd
}

func printCheck(r checkReport) {
	rows := make([]cliout.TableRow, 0, len(r.Results))
	for _, res := range r.Results {
		shown := res.URL
		if shown == "" {
			shown = res.Input
		}
		rows = append(rows, cliout.TableRow{
			"Line":   strconv.Itoa(res.Line),
			"Result": res.Result,
			"URL":    shown,
			"Detail": res.Detail,
		})
	}
	cliout.Table([]string{"Line", "Result", "URL", "Detail"}, rows)

	s := r.Summary
	switch {
	case s.Total == 0:
		cliout.Info("no urls to check")
	case s.Base == s.Total:
		cliout.Success("all %d urls can be used as a base", s.Total)
	default:
		cliout.Error("%d of %d urls cannot be used as a base (%d not-a-base, %d parse errors)",
			s.Total-s.Base, s.Total, s.NotABase, s.ParseError)
	}

	if len(r.Metrics) > 0 {
		rows := make([]cliout.TableRow, 0, len(r.Metrics))
		for _, m := range r.Metrics {
			rows = append(rows, cliout.TableRow{
				"Metric": m.Name,
				"Labels": formatLabels(m.Labels),
				"Value":  strconv.FormatFloat(m.Value, 'f', -1, 64),
			})
		}
		cliout.Header("Metrics")
		cliout.Table([]string{"Metric", "Labels", "Value"}, rows)
	}
}

func formatLabels(labels map[string]string) string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+labels[k])
	}
	return strings.Join(parts, ",")
}
