package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/1broseidon/winkit/window"
)

type windowInfo struct {
	Handle uint32 `yaml:"handle"`
	Title  string `yaml:"title"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	MinW   int    `yaml:"min_width"`
	MinH   int    `yaml:"min_height"`
	MaxW   int    `yaml:"max_width"`
	MaxH   int    `yaml:"max_height"`
	Grab   bool   `yaml:"grab"`
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the geometry and state of the active window",
		Long:  "Adopts the currently focused window for inspection. The window is left untouched: adoption never takes destruction ownership.",
		RunE: func(cmd *cobra.Command, args []string) error {
			drv, err := openDriver()
			if err != nil {
				return err
			}
			defer drv.Close()

			h, err := drv.ActiveWindow()
			if err != nil {
				return err
			}

			win := window.Adopt(drv, h)
			defer win.Destroy() // no-op on adopted windows

			pos := win.Position()
			size := win.Size()
			minSize := win.MinimumSize()
			maxSize := win.MaximumSize()
			info := windowInfo{
				Handle: uint32(win.Native()),
				Title:  win.Title(),
				X:      pos.X,
				Y:      pos.Y,
				Width:  size.X,
				Height: size.Y,
				MinW:   minSize.X,
				MinH:   minSize.Y,
				MaxW:   maxSize.X,
				MaxH:   maxSize.Y,
				Grab:   win.Grab(),
			}

			data, err := yaml.Marshal(info)
			if err != nil {
				return fmt.Errorf("failed to marshal window info: %w", err)
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	}
}
