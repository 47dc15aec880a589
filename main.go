package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-firah] [-n NUM] imagefile1 [imagefile2 [..]]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nPass '-' as a path to read paths from standard input, one per line.\n")
	fmt.Fprintf(os.Stderr, "\nHotkeys:\n")
	descriptions := GetActionDescriptions()
	names := make([]string, 0, len(actionDefinitions))
	for _, def := range actionDefinitions {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	defaults := GetDefaultKeybindings()
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %-16s %-28v %s\n", name, defaults[name], descriptions[name])
	}
}

// addInput routes one command line argument to the navigator: directories
// expand recursively when asked, archives expand to their image entries,
// everything else is added as-is.
func addInput(nav *Navigator, fsys Filesystem, path string, recursive bool) {
	if recursive {
		nav.AddPathRecursive(fsys, path)
		return
	}
	if isArchiveExt(path) {
		entries, err := listArchiveEntries(path)
		if err != nil {
			log.Printf("Warning: Cannot list %s: %v", path, err)
			return
		}
		for _, entry := range entries {
			nav.AddPath(entry)
		}
		return
	}
	nav.AddPath(path)
}

func main() {
	fullscreen := flag.Bool("f", false, "Start in fullscreen mode")
	actualSize := flag.Bool("a", false, "Show images at actual size instead of shrinking to fit")
	recursive := flag.Bool("r", false, "Load directories recursively")
	stdinFlag := flag.Bool("i", false, "Read paths from standard input (deprecated; pass '-' instead)")
	startAtRaw := flag.String("n", "", "Start at picture NUM (1-based)")
	flag.Usage = printUsage
	flag.Parse()

	if *stdinFlag {
		log.Printf("Warning: '-i' is deprecated. Pass '-' as a path instead.")
	}

	if flag.NArg() == 0 && !*stdinFlag {
		printUsage()
		os.Exit(1)
	}

	result := loadConfig()
	for _, warning := range result.Warnings {
		log.Printf("Warning: %s", warning)
	}
	cfg := result.Config

	nav := NewNavigator()
	fsys := OSFilesystem{}
	readStdin := *stdinFlag
	for _, arg := range flag.Args() {
		if arg == "-" {
			readStdin = true
			continue
		}
		addInput(nav, fsys, arg, *recursive)
	}
	if readStdin {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			addInput(nav, fsys, line, *recursive)
		}
		if err := scanner.Err(); err != nil {
			log.Printf("Warning: Reading stdin: %v", err)
		}
	}

	if nav.Length() == 0 {
		log.Fatal("No input files. Exiting.")
	}

	if *startAtRaw != "" {
		if startAt, err := strconv.Atoi(*startAtRaw); err == nil {
			nav.SetPath(startAt - 1)
		} else {
			log.Printf("Warning: Invalid starting picture number '%s'", *startAtRaw)
		}
	}

	loader := NewLoader(cfg.CacheSize)
	view := NewViewport(cfg.WindowWidth, cfg.WindowHeight, cfg.ZoomStep, ebitenWindow{})
	if *fullscreen {
		view.ToggleFullscreen()
	}

	game := NewGame(&cfg, nav, loader, view, *actualSize)

	ebiten.SetWindowTitle("iv")
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Error: %v", err)
	}
}
