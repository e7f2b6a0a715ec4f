// Command dataobj runs a YAML operation script against an in-memory object and
// prints the change events it produced plus the final state.
//
//	dataobj [-format yaml|json] [-continue] script.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/comalice/dataobj"
	"github.com/comalice/dataobj/internal/config"
	"github.com/comalice/dataobj/internal/production"
	"github.com/comalice/dataobj/internal/script"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// output is what the command prints after a run.
type output struct {
	Script  string                      `json:"script" yaml:"script"`
	Events  []production.PublishedEvent `json:"events" yaml:"events"`
	Dropped int64                       `json:"dropped,omitempty" yaml:"dropped,omitempty"`
	Results []script.Result             `json:"results" yaml:"results"`
	State   map[string]any              `json:"state" yaml:"state"`
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.LoadCLI()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("dataobj", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", cfg.Format, "output format: yaml or json")
	cont := fs.Bool("continue", cfg.ContinueOnError, "keep running steps after a failure")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: dataobj [-format yaml|json] [-continue] script.yaml")
		return 2
	}

	f, err := production.ParseFormat(*format)
	if err != nil {
		fmt.Fprintf(stderr, "format: %v\n", err)
		return 2
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	dataobj.SetLogger(logger)

	s, err := script.Load(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "load: %v\n", err)
		return 1
	}
	if *cont {
		s.ContinueOnError = true
	}

	events := make(chan production.PublishedEvent, cfg.EventBuffer)
	publisher := production.NewChannelListener(events)

	obj := dataobj.NewObject()
	obj.On(dataobj.EventChange, production.LoggingListener(logger))
	obj.On(dataobj.EventChange, publisher.Listener(dataobj.EventChange))

	report, runErr := script.Run(obj, s, script.WithLogger(logger))
	publisher.Close()

	out := output{
		Script:  s.Name,
		Dropped: publisher.Dropped(),
		State:   obj.Snapshot(),
	}
	for ev := range events {
		out.Events = append(out.Events, ev)
	}
	if report != nil {
		out.Results = report.Results
	}

	data, err := production.Export(f, out)
	if err != nil {
		fmt.Fprintf(stderr, "export: %v\n", err)
		return 1
	}
	stdout.Write(data)
	if f == production.FormatJSON {
		fmt.Fprintln(stdout)
	}

	if runErr != nil {
		fmt.Fprintf(stderr, "run: %v\n", runErr)
		return 1
	}
	return 0
}
