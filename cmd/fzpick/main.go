// Package main is the entry point for fzpick, an interactive fuzzy picker.
//
// Candidates come from file arguments or stdin, one per line. The query is
// matched against every candidate on each keystroke and the ranked results
// are shown with matched characters emphasized. Enter prints the selected
// candidate to stdout; Esc or Ctrl-C aborts.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/fuzzy"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	query string
	limit int
	files []string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	candidates, err := readCandidates(opts.files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read candidates: %v\n", err)
		return 1
	}
	if len(candidates) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no candidates to pick from")
		return 1
	}

	choice, picked, err := pick(candidates, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if !picked {
		return 1
	}

	fmt.Println(choice)
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.query, "query", "", "Initial query string")
	flag.StringVar(&opts.query, "q", "", "Initial query string (shorthand)")
	flag.IntVar(&opts.limit, "limit", 0, "Maximum number of results to show (0 = no limit)")
	flag.IntVar(&opts.limit, "l", 0, "Maximum number of results to show (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "fzpick - interactive fuzzy picker\n\n")
		fmt.Fprintf(os.Stderr, "Usage: fzpick [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ls | fzpick                 Pick from stdin lines\n")
		fmt.Fprintf(os.Stderr, "  fzpick words.txt            Pick from a file\n")
		fmt.Fprintf(os.Stderr, "  fzpick -q conf words.txt    Start with a query\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("fzpick %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	opts.files = flag.Args()
	return opts
}

// readCandidates collects one candidate per non-empty line, from the given
// files or from stdin when none are given.
func readCandidates(files []string) ([]string, error) {
	var candidates []string

	appendLines := func(f *os.File) error {
		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				candidates = append(candidates, line)
			}
		}
		return scanner.Err()
	}

	if len(files) == 0 {
		if err := appendLines(os.Stdin); err != nil {
			return nil, err
		}
		return candidates, nil
	}

	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		err = appendLines(f)
		f.Close()
		if err != nil {
			return nil, err
		}
	}
	return candidates, nil
}

// picker owns the interactive state: the query under edit, the current
// ranked results, and list navigation. The matching engine is called as a
// black box on every query change.
type picker struct {
	screen     tcell.Screen
	candidates []string
	query      []rune
	limit      int

	ranked   []fuzzy.Ranked
	selected int
	offset   int
}

func pick(candidates []string, opts options) (string, bool, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return "", false, err
	}
	if err := screen.Init(); err != nil {
		return "", false, err
	}
	defer screen.Fini()

	p := &picker{
		screen:     screen,
		candidates: candidates,
		query:      []rune(opts.query),
		limit:      opts.limit,
	}
	p.refilter()

	for {
		p.draw()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()

		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", false, nil
			case tcell.KeyEnter:
				if len(p.ranked) > 0 {
					return p.ranked[p.selected].Candidate, true, nil
				}
			case tcell.KeyUp, tcell.KeyCtrlP:
				p.move(-1)
			case tcell.KeyDown, tcell.KeyCtrlN:
				p.move(1)
			case tcell.KeyPgUp:
				p.move(-p.pageSize())
			case tcell.KeyPgDn:
				p.move(p.pageSize())
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(p.query) > 0 {
					p.query = p.query[:len(p.query)-1]
					p.refilter()
				}
			case tcell.KeyCtrlU:
				if len(p.query) > 0 {
					p.query = p.query[:0]
					p.refilter()
				}
			case tcell.KeyRune:
				p.query = append(p.query, ev.Rune())
				p.refilter()
			}
		}
	}
}

// refilter recomputes the ranked list for the current query and clamps the
// selection. An empty query shows all candidates in input order.
func (p *picker) refilter() {
	m := fuzzy.New(string(p.query))
	if m.IsEmpty() {
		p.ranked = make([]fuzzy.Ranked, len(p.candidates))
		for i, c := range p.candidates {
			p.ranked[i] = fuzzy.Ranked{Candidate: c}
		}
	} else {
		p.ranked = m.Filter(p.candidates)
	}

	if p.limit > 0 && len(p.ranked) > p.limit {
		p.ranked = p.ranked[:p.limit]
	}
	if p.selected >= len(p.ranked) {
		p.selected = len(p.ranked) - 1
	}
	if p.selected < 0 {
		p.selected = 0
	}
}

func (p *picker) move(delta int) {
	p.selected += delta
	if p.selected < 0 {
		p.selected = 0
	}
	if p.selected >= len(p.ranked) {
		p.selected = len(p.ranked) - 1
	}
	if p.selected < 0 {
		p.selected = 0
	}
}

func (p *picker) pageSize() int {
	_, height := p.screen.Size()
	if height <= 1 {
		return 1
	}
	return height - 1
}

func (p *picker) draw() {
	s := p.screen
	s.Clear()
	width, height := s.Size()

	prompt := []rune("> ")
	prompt = append(prompt, p.query...)
	drawRunes(s, 0, 0, tcell.StyleDefault.Bold(true), prompt, width)
	s.ShowCursor(len(prompt), 0)

	rows := height - 1
	if rows < 1 {
		s.Show()
		return
	}
	if p.selected < p.offset {
		p.offset = p.selected
	}
	if p.selected >= p.offset+rows {
		p.offset = p.selected - rows + 1
	}

	for row := 0; row < rows; row++ {
		i := p.offset + row
		if i >= len(p.ranked) {
			break
		}

		base := tcell.StyleDefault
		if i == p.selected {
			base = base.Reverse(true)
		}
		emphasis := base.Foreground(tcell.ColorYellow).Bold(true)

		r := p.ranked[i]
		matched := make(map[int]bool, len(r.Indices))
		for _, idx := range r.Indices {
			matched[idx] = true
		}

		x := 0
		for ri, cr := range []rune(r.Candidate) {
			if x >= width {
				break
			}
			style := base
			if matched[ri] {
				style = emphasis
			}
			s.SetContent(x, row+1, cr, nil, style)
			x++
		}
	}

	s.Show()
}

// drawRunes writes runes left to right starting at (x, y), clipped to the
// screen width.
func drawRunes(s tcell.Screen, x, y int, style tcell.Style, runes []rune, width int) {
	for _, r := range runes {
		if x >= width {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
