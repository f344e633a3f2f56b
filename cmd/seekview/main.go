// Package main is the entry point for seekview, an interactive viewer
// for the textseek engine. It loads a file, moves a cursor over it, and
// highlights the text object computed at that cursor.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/textseek/charset"
	"github.com/dshills/textseek/document"
	"github.com/dshills/textseek/seek"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	ConfigPath string
	Language   string
	Behavior   document.SelectionBehavior
	File       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	registry := charset.NewRegistry(nil)
	if opts.ConfigPath != "" {
		if err := registry.LoadFile(opts.ConfigPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		watcher, err := charset.WatchFile(registry, opts.ConfigPath, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: watching %s: %v\n", opts.ConfigPath, err)
			return 1
		}
		defer watcher.Close()
	}

	var doc *document.Lines
	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		doc = document.NewText(string(data))
	} else {
		doc = document.NewText(sampleText)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	v := &viewer{
		screen:   screen,
		doc:      doc,
		registry: registry,
		opts:     opts,
		session:  uuid.New().String()[:8],
		kind:     seek.KindWord,
		inner:    true,
	}
	v.loop()
	return 0
}

func parseFlags() options {
	var opts options
	var behavior string
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to charset configuration file (TOML)")
	flag.StringVar(&opts.Language, "lang", "", "Language ID used to resolve the word charset")
	flag.StringVar(&behavior, "behavior", "caret", "Selection behavior (caret, character)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "seekview - text-object seek viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: seekview [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  arrows/hjkl   move cursor\n")
		fmt.Fprintf(os.Stderr, "  w W s p n a b  select word/WORD/sentence/paragraph/indent/argument/pair\n")
		fmt.Fprintf(os.Stderr, "  Tab           toggle inner/outer\n")
		fmt.Fprintf(os.Stderr, "  q or Esc      quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("seekview %s (%s)\n", version, commit)
		os.Exit(0)
	}

	switch behavior {
	case "caret":
		opts.Behavior = document.BehaviorCaret
	case "character":
		opts.Behavior = document.BehaviorCharacter
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid behavior %q (must be caret or character)\n", behavior)
		os.Exit(1)
	}

	if args := flag.Args(); len(args) > 0 {
		opts.File = args[0]
	}

	return opts
}

const sampleText = `The quick brown fox jumps over the lazy dog. It was not
amused; the dog barely noticed.

func main() {
	items := gather(first, [2, 3], last)
	for _, item := range items {
		process(item)
	}
}`

type viewer struct {
	screen   tcell.Screen
	doc      *document.Lines
	registry *charset.Registry
	opts     options
	session  string

	cursor document.Position
	kind   seek.ObjectKind
	pair   bool
	inner  bool
	sel    document.Selection
	hasSel bool
	top    int
}

func (v *viewer) context() *seek.Context {
	return seek.NewContext(v.doc, v.registry.For(v.opts.Language), v.opts.Behavior)
}

func (v *viewer) loop() {
	for {
		v.draw()
		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return
			}
		}
	}
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.move(0, -1)
		return true
	case tcell.KeyDown:
		v.move(0, 1)
		return true
	case tcell.KeyLeft:
		v.move(-1, 0)
		return true
	case tcell.KeyRight:
		v.move(1, 0)
		return true
	case tcell.KeyTab:
		v.inner = !v.inner
		v.reseek()
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'h':
		v.move(-1, 0)
	case 'j':
		v.move(0, 1)
	case 'k':
		v.move(0, -1)
	case 'l':
		v.move(1, 0)
	case 'w':
		v.selectKind(seek.KindWord)
	case 'W':
		v.selectKind(seek.KindWORD)
	case 's':
		v.selectKind(seek.KindSentence)
	case 'p':
		v.selectKind(seek.KindParagraph)
	case 'n':
		v.selectKind(seek.KindIndent)
	case 'a':
		v.selectKind(seek.KindArgument)
	case 'b':
		v.pair = true
		v.reseek()
	}
	return true
}

func (v *viewer) move(dx, dy int) {
	p := v.cursor
	p.Line += dy
	p.Character += dx
	v.cursor = document.Clamp(v.doc, p)
	v.reseek()
}

func (v *viewer) selectKind(kind seek.ObjectKind) {
	v.kind = kind
	v.pair = false
	v.reseek()
}

func (v *viewer) reseek() {
	var obj seek.Object
	if v.pair {
		obj = seek.PairObject('(', ')')
	} else {
		var ok bool
		obj, ok = seek.Lookup(v.kind)
		if !ok {
			v.hasSel = false
			return
		}
	}
	v.sel = obj.Whole(v.context(), v.cursor, v.inner)
	v.hasSel = true
}

func (v *viewer) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	if height < 2 {
		v.screen.Show()
		return
	}
	viewRows := height - 1

	if v.cursor.Line < v.top {
		v.top = v.cursor.Line
	}
	if v.cursor.Line >= v.top+viewRows {
		v.top = v.cursor.Line - viewRows + 1
	}

	base := tcell.StyleDefault
	hl := base.Reverse(true)
	cursorStyle := base.Background(tcell.ColorDarkCyan).Foreground(tcell.ColorBlack)

	sel := v.sel.Normalize()
	for row := 0; row < viewRows; row++ {
		line := v.top + row
		if line >= v.doc.LineCount() {
			break
		}
		x := 0
		col := 0
		for _, r := range v.doc.Line(line) {
			style := base
			p := document.Position{Line: line, Character: col}
			if v.hasSel && sel.Contains(p) {
				style = hl
			}
			if p.Equals(v.cursor) {
				style = cursorStyle
			}
			v.screen.SetContent(x, row, r, nil, style)
			x += runewidth.RuneWidth(r)
			col++
			if x >= width {
				break
			}
		}
		// The line-break slot is selectable and drawable too.
		slot := document.Position{Line: line, Character: col}
		if x < width && (slot.Equals(v.cursor) || (v.hasSel && sel.Contains(slot))) {
			style := hl
			if slot.Equals(v.cursor) {
				style = cursorStyle
			}
			v.screen.SetContent(x, row, ' ', nil, style)
		}
	}

	v.drawStatus(width, height-1, base.Reverse(true))
	v.screen.Show()
}

func (v *viewer) drawStatus(width, y int, style tcell.Style) {
	kind := v.kind.String()
	if v.pair {
		kind = "pair"
	}
	extent := "outer"
	if v.inner {
		extent = "inner"
	}
	span := "-"
	if v.hasSel {
		sel := v.sel.Normalize()
		span = fmt.Sprintf("%s..%s", sel.Start(), sel.End())
	}
	status := fmt.Sprintf(" [%s] %s  %s/%s  %s  %s", v.session, v.cursor, kind, extent, span, v.opts.Behavior)
	status = runewidth.Truncate(status, width, "…")
	if pad := width - runewidth.StringWidth(status); pad > 0 {
		status += strings.Repeat(" ", pad)
	}
	x := 0
	for _, r := range status {
		v.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
