package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/terminal"
)

var (
	debugFlag = flag.Bool("debug", false, "Write debug log to "+logDir+"/"+logFileName+" (off by default)")
	muteFlag  = flag.Bool("mute", false, "Disable sound effects (sound is on by default)")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		terminal.HandleCrash(recover())
	}()

	flag.Usage = usage
	flag.Parse()

	os.Exit(run(*debugFlag, *muteFlag, os.Stdin, os.Stdout, os.Stderr))
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n\n", os.Args[0])
	fmt.Fprintln(flag.CommandLine.Output(), "Steer with arrows or h/j/k/l, p or space pauses, q or Esc quits.")
	fmt.Fprintln(flag.CommandLine.Output(), "Both flags are off by default; without them the game logs nothing and plays sound.")
	fmt.Fprintln(flag.CommandLine.Output())
	flag.PrintDefaults()
}

// run plays one game and returns the process exit code.
// Deferred cleanup (log file, speaker) completes before the caller exits.
func run(debug, mute bool, stdin, stdout *os.File, stderr io.Writer) int {
	if logFile := setupLogging(debug); logFile != nil {
		defer logFile.Close()
	}

	if !terminal.IsTerminal(stdin) || !terminal.IsTerminal(stdout) {
		fmt.Fprintln(stderr, "vi-snake must be run in an interactive terminal")
		return 1
	}
	if err := terminal.SaveMode(stdin); err != nil {
		log.Printf("main: save tty mode: %v", err)
	}

	var sound game.Sounder = game.Silent{}
	if !mute {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("main: audio unavailable, continuing without sound: %v", err)
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	var res game.Result
	err := terminal.With(func(scr *terminal.Screen) error {
		g, err := game.New(game.DefaultConfig(), game.Deps{
			Canvas: scr,
			Sizer:  scr,
			Events: scr,
			Sound:  sound,
		})
		if err != nil {
			return err
		}
		res, err = g.Run()
		return err
	})
	if err != nil {
		fmt.Fprintf(stderr, "vi-snake: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Your Level: %d\nYour Score: %d\n", res.Level, res.Score)
	return 0
}
