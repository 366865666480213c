package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"

	"github.com/karthikv/spam-detector/internal/core"
	"github.com/karthikv/spam-detector/internal/sysinfo"
	"github.com/karthikv/spam-detector/internal/utils"
)

// messagePreviewBytes bounds the message column in the summary table
const messagePreviewBytes = 48

// ConsoleReporter renders detection results for interactive use
type ConsoleReporter struct {
	out     io.Writer
	text    *utils.TextProcessor
	logger  *zap.Logger
	verbose bool
}

// NewConsoleReporter creates a new console reporter writing to out
func NewConsoleReporter(out io.Writer, logger *zap.Logger, verbose bool) *ConsoleReporter {
	return &ConsoleReporter{
		out:     out,
		text:    utils.NewTextProcessor(logger),
		logger:  logger,
		verbose: verbose,
	}
}

// PrintBanner prints host information at startup
func (r *ConsoleReporter) PrintBanner(info sysinfo.Info) {
	fmt.Fprintf(r.out, "System Information:\n")
	fmt.Fprintf(r.out, "- os: %s\n", info.OS)
	fmt.Fprintf(r.out, "- arch: %s\n", info.Arch)
	fmt.Fprintf(r.out, "- go: %s\n", info.GoVersion)
	fmt.Fprintf(r.out, "- cwd: %s\n", info.WorkingDir)
	fmt.Fprintf(r.out, "- user: %s\n", info.User)
}

// PrintDetection prints one classification outcome
func (r *ConsoleReporter) PrintDetection(d *core.Detection) {
	if !r.verbose {
		return
	}
	fmt.Fprintf(r.out, "%-9s (score %d)  %s\n",
		d.Result.Classification, d.Result.Score,
		r.text.TruncateText(d.Message, messagePreviewBytes))
}

// PrintSummary renders a per-message table followed by total/spam/ham
// counts
func (r *ConsoleReporter) PrintSummary(detections []*core.Detection) {
	fmt.Fprintf(r.out, "\nResults Summary:\n")

	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Message", "Classification", "Score"})
	spamCount := 0
	for _, d := range detections {
		if d.Result.Classification == core.ClassSpam {
			spamCount++
		}
		table.Append([]string{
			r.text.TruncateText(d.Message, messagePreviewBytes),
			d.Result.Classification.String(),
			strconv.Itoa(d.Result.Score),
		})
	}
	table.Render()

	fmt.Fprintf(r.out, "- Total messages: %d\n", len(detections))
	fmt.Fprintf(r.out, "- Spam messages: %d\n", spamCount)
	fmt.Fprintf(r.out, "- Ham messages: %d\n", len(detections)-spamCount)
}
