package main

import (
	"flag"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"goscatter/internal/scatter"
	"goscatter/internal/view"
)

func main() {
	debug := flag.Bool("debug", false, "log to goscatter.log")
	paletteFile := flag.String("palette", "", "palette file, one #RRGGBB per line")
	flag.Parse()

	if *debug {
		f, err := tea.LogToFile("goscatter.log", "goscatter")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		// stdout and stderr belong to the renderer
		log.SetOutput(io.Discard)
	}

	var pal scatter.Palette
	if *paletteFile != "" {
		b, err := os.ReadFile(*paletteFile)
		if err != nil {
			log.Fatal(err)
		}
		pal = scatter.ParsePalette(string(b))
	}

	path := ""
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	m := view.New(path, pal)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
