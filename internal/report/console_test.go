package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/karthikv/spam-detector/internal/core"
	"github.com/karthikv/spam-detector/internal/report"
	"github.com/karthikv/spam-detector/internal/sysinfo"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewConsoleReporter(&buf, zap.NewNop(), false)

	r.PrintBanner(sysinfo.Info{OS: "linux", Arch: "amd64", GoVersion: "go1.23", WorkingDir: "/srv", User: "karthik"})

	out := buf.String()
	assert.Contains(t, out, "System Information:")
	assert.Contains(t, out, "- os: linux")
	assert.Contains(t, out, "- user: karthik")
}

func TestPrintSummaryCounts(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewConsoleReporter(&buf, zap.NewNop(), false)

	r.PrintSummary([]*core.Detection{
		{Message: "claim your prize", Result: core.DetectionResult{Classification: core.ClassSpam, Score: 2}},
		{Message: "lunch today?", Result: core.DetectionResult{Classification: core.ClassNotSpam, Score: 0}},
		{Message: "see you soon", Result: core.DetectionResult{Classification: core.ClassNotSpam, Score: 0}},
	})

	out := buf.String()
	assert.Contains(t, out, "- Total messages: 3")
	assert.Contains(t, out, "- Spam messages: 1")
	assert.Contains(t, out, "- Ham messages: 2")
	assert.Contains(t, out, "claim your prize")
}

func TestPrintSummaryTruncatesLongMessages(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewConsoleReporter(&buf, zap.NewNop(), false)

	long := strings.Repeat("spam and eggs ", 20)
	r.PrintSummary([]*core.Detection{
		{Message: long, Result: core.DetectionResult{Classification: core.ClassNotSpam, Score: 0}},
	})

	assert.NotContains(t, buf.String(), long)
	assert.Contains(t, buf.String(), "...")
}

func TestPrintDetectionVerboseOnly(t *testing.T) {
	detection := &core.Detection{
		Message: "urgent prize",
		Result:  core.DetectionResult{Classification: core.ClassSpam, Score: 2},
	}

	var quiet bytes.Buffer
	report.NewConsoleReporter(&quiet, zap.NewNop(), false).PrintDetection(detection)
	assert.Empty(t, quiet.String())

	var verbose bytes.Buffer
	report.NewConsoleReporter(&verbose, zap.NewNop(), true).PrintDetection(detection)
	assert.Contains(t, verbose.String(), "SPAM")
	assert.Contains(t, verbose.String(), "urgent prize")
}
