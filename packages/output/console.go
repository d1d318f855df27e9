package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/fatih/color"

	"github.com/andrewatan/httpcall/packages/format"
	"github.com/andrewatan/httpcall/packages/httpclient"
	"github.com/andrewatan/httpcall/packages/jsoncolor"
)

type Printer struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type PrinterOption func(*Printer)

func NewPrinter(opts ...PrinterOption) *Printer {
	p := &Printer{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.noColor {
		color.NoColor = true
	}
	return p
}

func WithWriter(w io.Writer) PrinterOption {
	return func(p *Printer) {
		p.writer = w
	}
}

func WithVerbose(v bool) PrinterOption {
	return func(p *Printer) {
		p.verbose = v
	}
}

func WithNoColor(nc bool) PrinterOption {
	return func(p *Printer) {
		p.noColor = nc
	}
}

// StatusIndicator renders a status code colored by its class: 2xx green,
// 3xx yellow, 4xx red, 5xx red on white.
func StatusIndicator(code int) string {
	s := strconv.Itoa(code)
	switch {
	case code >= 200 && code < 300:
		return color.New(color.FgGreen, color.Bold).Sprint(s)
	case code >= 300 && code < 400:
		return color.New(color.FgYellow, color.Bold).Sprint(s)
	case code >= 400 && code < 500:
		return color.New(color.FgRed, color.Bold).Sprint(s)
	case code >= 500 && code < 600:
		return color.New(color.FgRed, color.Bold, color.BgWhite).Sprint(s)
	default:
		return color.New(color.FgWhite).Sprint(s)
	}
}

// PrintResponse writes a human-readable summary of a completed
// exchange. JSON bodies are pretty-printed and colorized when the
// request asked for pretty output; anything else prints verbatim.
func (p *Printer) PrintResponse(resp *httpclient.Response, pretty bool) {
	fmt.Fprintf(p.writer, "Status: %s %s\n", StatusIndicator(resp.Status), resp.StatusText)
	fmt.Fprintf(p.writer, "Time: %s  Size: %s\n",
		format.FormatDuration(resp.ResponseTimeMs),
		format.FormatSize(resp.Size()))

	if p.verbose {
		fmt.Fprintf(p.writer, "Content-Type: %s\n", resp.ContentType)
		p.printHeaders(resp.Headers)
	}

	if resp.Body == "" {
		return
	}

	if pretty && resp.IsJSON() {
		if colored, err := jsoncolor.Pretty(resp.Body, p.styler()); err == nil {
			fmt.Fprintf(p.writer, "Response:\n%s\n", colored)
			return
		}
	}
	fmt.Fprintf(p.writer, "Response: %s\n", resp.Body)
}

func (p *Printer) printHeaders(headers map[string]string) {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(p.writer, "Headers:\n")
	for _, name := range names {
		fmt.Fprintf(p.writer, "  %s: %s\n", cyan(name), headers[name])
	}
}

// PrintStats writes a one-line exchange summary for verbose mode.
func (p *Printer) PrintStats(stats httpclient.Stats) {
	fmt.Fprintf(p.writer, "%s %s -> %s in %s (%s)\n",
		stats.Method,
		stats.URL,
		StatusIndicator(stats.StatusCode),
		format.FormatDuration(stats.ResponseTimeMs),
		format.FormatSize(stats.ResponseSize))
}

// PrintValue writes an extracted JSON value, re-encoding composites.
func (p *Printer) PrintValue(value any) {
	switch value.(type) {
	case map[string]any, []any:
		encoded, err := json.Marshal(value)
		if err == nil {
			fmt.Fprintf(p.writer, "%s\n", encoded)
			return
		}
	}
	fmt.Fprintf(p.writer, "%v\n", value)
}

func (p *Printer) PrintError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(p.writer, "%s %v\n", red("Error:"), err)
}

func (p *Printer) Println(msg string) {
	fmt.Fprintln(p.writer, msg)
}

func (p *Printer) styler() jsoncolor.Styler {
	if p.noColor {
		return jsoncolor.Plain
	}
	return jsoncolor.NewANSIStyler()
}
