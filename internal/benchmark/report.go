package benchmark

import (
	"fmt"
	"io"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/segmentio/encoding/json"

	"github.com/segmentio/mmr3"
	"github.com/segmentio/mmr3/internal/sysinfo"
)

// ReferenceModule is the module path of the implementation mmr3 is compared
// with.
const ReferenceModule = "github.com/spaolacci/murmur3"

// Report is the outcome of a benchmark session, carrying the scores of each
// task and a description of the environment they were measured in.
type Report struct {
	ID       string
	Date     time.Time
	Info     sysinfo.Info
	Versions []Version
	Scores   []Score
}

// Version associates a module name with its version.
type Version struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// NewReport creates a report for the given scores, probing the host and
// assigning a random identifier to the report.
func NewReport(scores []Score) *Report {
	return &Report{
		ID:   uuid.NewString(),
		Date: time.Now(),
		Info: sysinfo.Probe(),
		Versions: []Version{
			{Name: "mmr3", Version: mmr3.Version},
			{Name: "murmur3", Version: ModuleVersion(ReferenceModule)},
		},
		Scores: scores,
	}
}

// Faster returns the number of tasks where mmr3 was faster on average.
func (r *Report) Faster() int {
	n := 0
	for _, s := range r.Scores {
		if s.Faster() {
			n++
		}
	}
	return n
}

// WriteMarkdown writes r to w as an information block followed by a Markdown
// table of the scores, for example:
//
//	| Item    | XS   | S    | M    | L    | XL   | Average | Faster |
//	|---------|------|------|------|------|------|---------|--------|
//	| Hash32  | 0.9x | 1.0x | 1.0x | 1.0x | 1.1x | 1.0x    | N      |
//	| Hash128 | 4.8x | 6.2x | 7.4x | 6.4x | 7.3x | 6.4x    | Y      |
func (r *Report) WriteMarkdown(w io.Writer) error {
	b := new(strings.Builder)
	r.writeInfo(b)
	b.WriteString("Result:\n\n")

	if len(r.Scores) != 0 {
		table := tablewriter.NewWriter(b)
		table.SetHeader(r.header())
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
		table.SetCenterSeparator("|")
		for _, s := range r.Scores {
			table.Append(s.Cells())
		}
		table.Render()
	}

	fmt.Fprintf(b, "\n%d of %d tasks are faster!\n", r.Faster(), len(r.Scores))
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON writes r to w as an indented JSON document.
func (r *Report) WriteJSON(w io.Writer) error {
	type score struct {
		Name    string    `json:"name"`
		Rounds  []string  `json:"rounds"`
		Ratios  []float64 `json:"ratios"`
		Average float64   `json:"average"`
		Faster  bool      `json:"faster"`
	}

	type report struct {
		ID       string       `json:"id"`
		Date     time.Time    `json:"date"`
		Info     sysinfo.Info `json:"info"`
		Versions []Version    `json:"versions"`
		Scores   []score      `json:"scores"`
		Faster   int          `json:"faster"`
	}

	out := report{
		ID:       r.ID,
		Date:     r.Date,
		Info:     r.Info,
		Versions: r.Versions,
		Scores:   make([]score, len(r.Scores)),
		Faster:   r.Faster(),
	}
	for i, s := range r.Scores {
		out.Scores[i] = score{
			Name:    s.Name,
			Rounds:  s.Rounds,
			Ratios:  s.Ratios,
			Average: s.Average(),
			Faster:  s.Faster(),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (r *Report) header() []string {
	header := []string{"Item"}
	if len(r.Scores) != 0 {
		header = append(header, r.Scores[0].Rounds...)
	}
	return append(header, "Average", "Faster")
}

func (r *Report) writeInfo(b *strings.Builder) {
	line := strings.Repeat("*", 60)
	cpu := r.Info.CPU
	if cpu == "" {
		cpu = "unknown"
	}

	b.WriteString("Info:\n")
	b.WriteString(line + "\n")
	fmt.Fprintf(b, "Date: %s\n", r.Date.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(b, "System OS: %s/%s\n", r.Info.OS, r.Info.Arch)
	fmt.Fprintf(b, "CPU: %s (%d logical)\n", cpu, r.Info.NumCPU)
	if len(r.Info.Features) != 0 {
		fmt.Fprintf(b, "CPU features: %s\n", strings.Join(r.Info.Features, " "))
	}
	fmt.Fprintf(b, "Go version: %s\n", r.Info.GoVersion)
	for _, v := range r.Versions {
		fmt.Fprintf(b, "%s version: %s\n", v.Name, v.Version)
	}
	fmt.Fprintf(b, "Run ID: %s\n", r.ID)
	b.WriteString(line + "\n\n")
}

// ModuleVersion returns the version of the module at path that the program
// was built with, or "unknown" if it cannot be determined.
func ModuleVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path == path {
			if dep.Replace != nil {
				dep = dep.Replace
			}
			if dep.Version != "" {
				return dep.Version
			}
		}
	}
	return "unknown"
}
