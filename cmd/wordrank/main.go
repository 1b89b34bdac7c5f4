/*
Wordrank prints the most frequent words of texts, together with the number of
sentences.

Usage:

	wordrank [OPTIONS] [FILE...]

Input is read from the files given, or from stdin if there are none.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	flags "github.com/jessevdk/go-flags"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/treap/guard"
	"github.com/npillmayer/treap/tree"
	"github.com/npillmayer/treap/words"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// tracer traces to the tracer selected for the treap packages and wordrank.
func tracer() tracing.Trace {
	return tracing.Select("treap")
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, files, err := loadConfig(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil
		}
		return err
	}
	setupTracing(cfg.Verbose, stderr)
	text, err := readInput(files, stdin, cfg.HTML)
	if err != nil {
		tracer().Errorf("wordrank: %v", err)
		fmt.Fprintln(stderr, err)
		return err
	}
	tracer().Debugf("wordrank: read %d bytes of text", len(text))
	ranking := words.NewRanker(cfg.Top).Rank(text)
	printRanking(stdout, ranking, lineWidth(), newPalette(cfg.NoColor))
	fmt.Fprintf(stdout, "There are %d sentences in the text.\n", words.CountSentences(text))
	if cfg.Dot != "" {
		if err := writeDot(cfg.Dot, text); err != nil {
			fmt.Fprintln(stderr, err)
			return err
		}
	}
	return nil
}

// setupTracing installs Go logger based tracers writing to w. The treap
// packages trace details only if verbose is set; the core tracer, used by
// the segmenter, reports errors only.
func setupTracing(verbose bool, w io.Writer) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	t := tracing.Select("treap")
	t.SetOutput(w)
	t.SetTraceLevel(tracing.LevelError)
	if verbose {
		t.SetTraceLevel(tracing.LevelDebug)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetOutput(w)
}

// readInput concatenates the content of all files, or reads stdin if no files
// are given. Files are loaded concurrently, with at most maxOpenFiles of them
// open at a time.
func readInput(files []string, stdin io.Reader, isHTML bool) (string, error) {
	var buf bytes.Buffer
	if len(files) == 0 {
		if _, err := buf.ReadFrom(stdin); err != nil {
			return "", err
		}
	}
	contents, err := loadFiles(context.Background(), files, guard.NewSemaphore(maxOpenFiles))
	if err != nil {
		return "", err
	}
	for _, content := range contents {
		buf.Write(content)
		buf.WriteByte('\n')
	}
	if isHTML {
		return words.TextFromHTML(&buf)
	}
	return buf.String(), nil
}

const maxOpenFiles = 4

// loadFiles reads files in parallel, throttled by sema. Content is returned in
// the order of files. The first error encountered is returned.
func loadFiles(ctx context.Context, files []string, sema *guard.Semaphore) ([][]byte, error) {
	contents := make([][]byte, len(files))
	errs := make([]error, len(files))
	var wg sync.WaitGroup
	for i, name := range files {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var readErr error
			if err := sema.Do(ctx, func() {
				contents[i], readErr = os.ReadFile(name)
			}); err != nil {
				readErr = err
			}
			if errs[i] = readErr; readErr != nil {
				tracer().Debugf("wordrank: cannot load %s: %v", name, errs[i])
			}
		}()
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return contents, nil
}

func writeDot(name string, text string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	counts := words.Counts(text)
	if err := tree.ToDot(counts.Root(), f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
