package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/1broseidon/winkit/window"
)

const moveStep = 20

func openCmd() *cobra.Command {
	var (
		title  string
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a window and drive it interactively from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			drv, err := openDriver()
			if err != nil {
				return err
			}
			defer drv.Close()

			if title == "" {
				title = cfg.Window.Title
			}
			if width == 0 {
				width = cfg.Window.Width
			}
			if height == 0 {
				height = cfg.Window.Height
			}
			flags, err := cfg.WindowFlags()
			if err != nil {
				return err
			}

			win, err := window.Create(drv, title,
				cfg.Window.X.Coord, cfg.Window.Y.Coord, width, height, flags)
			if err != nil {
				return err
			}
			defer win.Destroy()

			logger.Info("window opened",
				"handle", win.Native(), "title", title, "size", win.Size())
			return interact(win)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "window title (default from config)")
	cmd.Flags().IntVar(&width, "width", 0, "window width (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "window height (default from config)")
	return cmd
}

// interact drives the window from single keypresses on a raw terminal.
func interact(win *window.Window) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("open requires an interactive terminal")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	printHelp()

	fullscreen := false
	buf := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buf); err != nil {
			return err
		}

		switch buf[0] {
		case 'q', 3: // q or ctrl-c
			return nil
		case 'm':
			win.Maximize()
		case 'n':
			win.Minimize()
		case 'r':
			win.Restore()
			fullscreen = false
			win.SetFullscreen(window.FullscreenOff)
		case 'v':
			win.Hide()
		case 's':
			win.Show()
		case 'a':
			win.Raise()
		case 'f':
			fullscreen = !fullscreen
			mode := window.FullscreenOff
			if fullscreen {
				mode = window.Fullscreen
			}
			if err := win.SetFullscreen(mode); err != nil {
				status("fullscreen rejected: %v", err)
				fullscreen = !fullscreen
			}
		case 'd':
			if err := win.SetFullscreen(window.FullscreenDesktop); err != nil {
				status("fullscreen rejected: %v", err)
			} else {
				fullscreen = true
			}
		case 't':
			win.SetTitle(fmt.Sprintf("%s %v", cfg.Window.Title, win.Size()))
		case 'g':
			win.SetGrab(!win.Grab())
			status("grab: %v", win.Grab())
		case '+', '=':
			size := win.Size()
			win.SetSize(size.X+moveStep, size.Y+moveStep)
		case '-':
			size := win.Size()
			win.SetSize(size.X-moveStep, size.Y-moveStep)
		case 'h', 'j', 'k', 'l':
			pos := win.Position()
			switch buf[0] {
			case 'h':
				pos.X -= moveStep
			case 'l':
				pos.X += moveStep
			case 'k':
				pos.Y -= moveStep
			case 'j':
				pos.Y += moveStep
			}
			win.SetPositionPt(pos)
		case 'c':
			win.SetPosition(window.Centered, window.Centered)
		case 'b':
			if err := win.SetBrightness(win.Brightness() - 0.1); err != nil {
				status("brightness rejected: %v", err)
			}
		case 'B':
			if err := win.SetBrightness(win.Brightness() + 0.1); err != nil {
				status("brightness rejected: %v", err)
			}
		case 'p':
			status("title=%q pos=%v size=%v min=%v max=%v grab=%v brightness=%.2f",
				win.Title(), win.Position(), win.Size(),
				win.MinimumSize(), win.MaximumSize(), win.Grab(), win.Brightness())
		case '?':
			printHelp()
		}
	}
}

// status prints a line while the terminal is in raw mode.
func status(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format+"\r\n", args...)
}

func printHelp() {
	status("winctl: q quit | m max | n min | r restore | v hide | s show | a raise")
	status("        f fullscreen | d desktop-fs | t retitle | g grab | +/- resize")
	status("        h/j/k/l move | c center | b/B brightness | p print state | ? help")
}
