package baseurl

import (
	"bytes"
	"testing"

	"github.com/jongio/baseurl/logutil"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversionMetrics(t *testing.T) {
	ok := testutil.ToFloat64(conversionsTotal.WithLabelValues(resultOK))
	notABase := testutil.ToFloat64(conversionsTotal.WithLabelValues(resultNotABase))
	failed := testutil.ToFloat64(conversionsTotal.WithLabelValues(resultParseFailed))

	_, err := Parse("https://example.org")
	require.NoError(t, err)
	_, err = Parse("mailto:x@example.org")
	require.Error(t, err)
	_, err = Parse("http://[:::1]")
	require.Error(t, err)

	assert.Equal(t, ok+1, testutil.ToFloat64(conversionsTotal.WithLabelValues(resultOK)))
	assert.Equal(t, notABase+1, testutil.ToFloat64(conversionsTotal.WithLabelValues(resultNotABase)))
	assert.Equal(t, failed+1, testutil.ToFloat64(conversionsTotal.WithLabelValues(resultParseFailed)))
}

func TestRefusalMetrics(t *testing.T) {
	scheme := testutil.ToFloat64(refusedMutationsTotal.WithLabelValues(opSetScheme))
	host := testutil.ToFloat64(refusedMutationsTotal.WithLabelValues(opSetHost))

	b := MustParse("https://example.org/")
	require.Error(t, b.SetScheme("foo"))
	require.Error(t, b.SetHost(""))
	require.Error(t, b.SetHost("a:1"))
	require.NoError(t, b.SetHost("example.com"))

	assert.Equal(t, scheme+1, testutil.ToFloat64(refusedMutationsTotal.WithLabelValues(opSetScheme)))
	assert.Equal(t, host+2, testutil.ToFloat64(refusedMutationsTotal.WithLabelValues(opSetHost)))
}

func TestDebugLogging(t *testing.T) {
	t.Cleanup(func() { logutil.SetupLogger(false, false) })

	var buf bytes.Buffer
	logutil.SetupLoggerWithWriter(&buf, true, false)

	_, err := Parse("mailto:x@example.org")
	require.Error(t, err)

	b := MustParse("https://example.org/")
	require.Error(t, b.SetScheme("foo"))

	out := buf.String()
	assert.Contains(t, out, `msg="rejected url" component=baseurl scheme=mailto`)
	assert.Contains(t, out, `msg="refused mutation" component=baseurl operation=`+opSetScheme)
}
