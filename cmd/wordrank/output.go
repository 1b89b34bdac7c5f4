package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/treap/words"
	"golang.org/x/term"
)

const defaultWidth = 65

// palette holds the colors used for printing a ranking.
type palette struct {
	word, count, bar *color.Color
}

func newPalette(nocolor bool) palette {
	p := palette{
		word:  color.New(color.FgBlue, color.Bold),
		count: color.New(color.FgRed),
		bar:   color.New(color.FgGreen),
	}
	if nocolor || !term.IsTerminal(int(os.Stdout.Fd())) {
		p.word.DisableColor()
		p.count.DisableColor()
		p.bar.DisableColor()
	}
	return p
}

// lineWidth checks wether stdout is a terminal, and if so it reads the
// terminal's width. Otherwise a default width is used.
func lineWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w < 30 {
		return defaultWidth
	}
	return w - 5
}

// printRanking outputs one line per word: the word, its frequency and a bar
// scaled to the frequency of the top word.
func printRanking(w io.Writer, ranking []words.WordFrequency, width int, p palette) {
	if len(ranking) == 0 {
		fmt.Fprintln(w, "No words found.")
		return
	}
	wordlen := 0
	for _, wf := range ranking {
		wordlen = max(wordlen, len([]rune(wf.Word)))
	}
	barmax := max(width-wordlen-12, 1)
	top := ranking[0].Frequency
	for _, wf := range ranking {
		p.word.Fprintf(w, "%-*s", wordlen, wf.Word)
		p.count.Fprintf(w, " %6d ", wf.Frequency)
		p.bar.Fprintln(w, strings.Repeat("█", max(wf.Frequency*barmax/top, 1)))
	}
}
