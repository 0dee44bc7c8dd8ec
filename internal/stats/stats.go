// Package stats collects AST-shape statistics and error-rate reporting
// as each statement is generated and executed, grounded on
// original_source/log.cc's stats_visitor/stats_collecting_logger/
// cerr_logger trio, in the teacher's terse fmt.Fprintf-based reporting
// style (internal/apply.Applier.printf/println before it was adapted).
package stats

import (
	"fmt"
	"io"
	"reflect"
	"sort"

	"github.com/trueeyu/sqlsmith/internal/prod"
)

// Visitor walks a generated statement's tree once, tallying node count,
// max depth, retry count, and a per-production-type histogram keyed by
// Go type name (the Go analogue of typeid(*p).name()).
type Visitor struct {
	Nodes      int
	MaxLevel   int
	Retries    int
	Production map[string]int
}

// NewVisitor returns an empty Visitor ready to Visit a statement tree.
func NewVisitor() *Visitor {
	return &Visitor{Production: make(map[string]int)}
}

// Visit implements prod.Visitor.
func (v *Visitor) Visit(n prod.Node) {
	v.Nodes++
	if n.Level() > v.MaxLevel {
		v.MaxLevel = n.Level()
	}
	name := reflect.TypeOf(n).String()
	v.Production[name]++
	if r, ok := n.(interface{ Retries() int }); ok {
		v.Retries += r.Retries()
	}
}

// Logger is notified as each statement is generated, executed, and, on
// failure, the outcome classified, matching original_source/log.hh's
// logger base class.
type Logger interface {
	Generated(n prod.Node)
	Executed(n prod.Node)
	Error(n prod.Node, outcome string, err error)
}

// Report accumulates the running totals a ConsoleLogger prints.
type Report struct {
	Queries   int64
	SumNodes  float64
	SumHeight float64
	SumRetry  float64
	Errors    map[string]int64
}

// NewReport returns an empty Report.
func NewReport() *Report {
	return &Report{Errors: make(map[string]int64)}
}

// Add folds one statement's Visitor tallies into the report.
func (r *Report) Add(v *Visitor) {
	r.Queries++
	r.SumNodes += float64(v.Nodes)
	r.SumHeight += float64(v.MaxLevel)
	r.SumRetry += float64(v.Retries)
}

// ErrorRate returns the fraction of generated statements that produced
// a reported error.
func (r *Report) ErrorRate() float64 {
	if r.Queries == 0 {
		return 0
	}
	var errCount int64
	for _, n := range r.Errors {
		errCount += n
	}
	return float64(errCount) / float64(r.Queries)
}

// ConsoleLogger writes periodic one-line summaries to w, the Go
// analogue of cerr_logger. columnsPerLine controls how often Generated
// triggers a full report, mirroring cerr_logger's `columns` field.
type ConsoleLogger struct {
	w              io.Writer
	columnsPerLine int
	report         *Report
	Verbose        bool
}

// NewConsoleLogger returns a ConsoleLogger writing to w.
func NewConsoleLogger(w io.Writer) *ConsoleLogger {
	return &ConsoleLogger{w: w, columnsPerLine: 80, report: NewReport()}
}

func (c *ConsoleLogger) Generated(n prod.Node) {
	v := NewVisitor()
	n.Accept(v)
	c.report.Add(v)

	if c.Verbose {
		fmt.Fprintf(c.w, "generated: nodes=%d height=%d retries=%d\n", v.Nodes, v.MaxLevel, v.Retries)
	}

	if (10*c.columnsPerLine-1) == int(c.report.Queries)%(10*c.columnsPerLine) {
		c.PrintReport()
	}
}

func (c *ConsoleLogger) Executed(n prod.Node) {
	if int(c.report.Queries)%c.columnsPerLine == c.columnsPerLine-1 {
		fmt.Fprintln(c.w)
	}
	fmt.Fprint(c.w, ".")
}

func (c *ConsoleLogger) Error(n prod.Node, outcome string, err error) {
	if int(c.report.Queries)%c.columnsPerLine == c.columnsPerLine-1 {
		fmt.Fprintln(c.w)
	}
	if err != nil {
		c.report.Errors[err.Error()]++
	}

	switch outcome {
	case "timeout":
		fmt.Fprint(c.w, "t")
	case "syntax":
		fmt.Fprint(c.w, "S")
	case "broken":
		fmt.Fprint(c.w, "C")
	default:
		fmt.Fprint(c.w, "e")
	}
}

// PrintReport writes the accumulated summary, sorted by error frequency
// descending, matching cerr_logger::report.
func (c *ConsoleLogger) PrintReport() {
	q := float64(c.report.Queries)
	fmt.Fprintf(c.w, "\nqueries: %d\n", c.report.Queries)
	fmt.Fprintf(c.w, "AST stats (avg): height = %.3f nodes = %.3f\n", c.report.SumHeight/q, c.report.SumNodes/q)

	type kv struct {
		msg   string
		count int64
	}
	var sorted []kv
	for msg, n := range c.report.Errors {
		sorted = append(sorted, kv{msg, n})
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].count > sorted[j].count })

	for _, e := range sorted {
		msg := e.msg
		if len(msg) > 80 {
			msg = msg[:80]
		}
		fmt.Fprintf(c.w, "%d\t%s\n", e.count, msg)
	}
	fmt.Fprintf(c.w, "error rate: %.4f\n", c.report.ErrorRate())
}
