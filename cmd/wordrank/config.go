package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultTop = 10
	maxTop     = 1000
)

// config defines the configuration options for wordrank.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Top     int    `short:"n" long:"top" description:"Number of most frequent words to show {1-1000}"`
	HTML    bool   `long:"html" description:"Treat input as HTML and rank its textual content only"`
	Dot     string `long:"dot" description:"Write the word treap in Graphviz DOT format to this file"`
	NoColor bool   `long:"nocolor" description:"Disable colored output"`
	Verbose bool   `short:"v" long:"verbose" description:"Trace processing details to stderr"`
}

// loadConfig initializes and parses the config using command line options.
// It returns the remaining arguments, i.e. the input files.
func loadConfig(args []string) (*config, []string, error) {
	cfg := config{
		Top: defaultTop,
	}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] [FILE...]"
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}
	if cfg.Top < 1 || cfg.Top > maxTop {
		err := fmt.Errorf("loadConfig: the number of words to show [%d] is out of range {1-%d}",
			cfg.Top, maxTop)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}
	return &cfg, remainingArgs, nil
}
