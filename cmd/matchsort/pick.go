package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	matchsorter "github.com/AetherXHub/matchsorter"
)

var pickKeepDiacritics bool

var pickCmd = &cobra.Command{
	Use:   "pick <file>...",
	Short: "Interactively pick a line, re-ranking as you type",
	Long: `pick opens a full-screen prompt over the lines of the given files.
Typing narrows and re-sorts the list live; Up/Down move the selection,
Enter prints the selected line to stdout, Esc quits without printing.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPick,
}

func init() {
	pickCmd.Flags().BoolVar(&pickKeepDiacritics, "keep-diacritics", false, "match accented characters literally")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	lines, err := readLines(args)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}

	picked, err := pickLoop(screen, lines)
	screen.Fini()
	if err != nil {
		return err
	}
	if picked != "" {
		fmt.Println(picked)
	}
	return nil
}

type pickState struct {
	all      []string
	query    []rune
	filtered []string
	selected int
}

func (st *pickState) refilter() {
	query := string(st.query)
	if query == "" {
		st.filtered = st.all
	} else {
		opts := matchsorter.DefaultOptions[string]()
		opts.KeepDiacritics = pickKeepDiacritics
		st.filtered = matchsorter.MatchSorter(st.all, query, opts)
	}
	if st.selected >= len(st.filtered) {
		st.selected = len(st.filtered) - 1
	}
	if st.selected < 0 {
		st.selected = 0
	}
}

func pickLoop(screen tcell.Screen, lines []string) (string, error) {
	st := &pickState{all: lines}
	st.refilter()

	for {
		drawPicker(screen, st)
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", nil
			case tcell.KeyEnter:
				if st.selected < len(st.filtered) {
					return st.filtered[st.selected], nil
				}
				return "", nil
			case tcell.KeyUp, tcell.KeyCtrlP:
				if st.selected > 0 {
					st.selected--
				}
			case tcell.KeyDown, tcell.KeyCtrlN:
				if st.selected < len(st.filtered)-1 {
					st.selected++
				}
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(st.query) > 0 {
					st.query = st.query[:len(st.query)-1]
					st.refilter()
				}
			case tcell.KeyCtrlU:
				if len(st.query) > 0 {
					st.query = st.query[:0]
					st.refilter()
				}
			case tcell.KeyRune:
				st.query = append(st.query, ev.Rune())
				st.refilter()
			}
		}
	}
}

func drawPicker(screen tcell.Screen, st *pickState) {
	screen.Clear()
	width, height := screen.Size()

	promptStyle := tcell.StyleDefault.Bold(true)
	prompt := fmt.Sprintf("> %s", string(st.query))
	drawLine(screen, 0, 0, width, prompt, promptStyle)

	countStyle := tcell.StyleDefault.Dim(true)
	count := fmt.Sprintf("%d/%d", len(st.filtered), len(st.all))
	drawLine(screen, width-runewidth.StringWidth(count), 0, width, count, countStyle)

	listHeight := height - 1
	top := 0
	if st.selected >= listHeight {
		top = st.selected - listHeight + 1
	}
	for row := 0; row < listHeight; row++ {
		idx := top + row
		if idx >= len(st.filtered) {
			break
		}
		style := tcell.StyleDefault
		line := st.filtered[idx]
		if idx == st.selected {
			style = style.Reverse(true)
			line = "▌" + line
		} else {
			line = " " + line
		}
		drawLine(screen, 0, row+1, width, line, style)
	}

	screen.ShowCursor(runewidth.StringWidth(prompt), 0)
	screen.Show()
}

// drawLine writes text starting at x, clipped to maxX terminal cells.
func drawLine(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		if x+w > maxX {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
}
