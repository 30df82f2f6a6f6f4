package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/term"

	"kittyescape/pkg/game/renderer/ebiten"
)

func initGettext() {
	gotext.Configure("mo", "en_GB.utf8", "default")
}

// farewell prints the end-of-session line, colored when stdout is an
// interactive terminal.
func farewell(won bool) {
	msg := gotext.Get("Goodbye!")
	style := color.Cyan
	if won {
		msg = gotext.Get("You escaped... for now.")
		style = color.Green
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		style.Println(msg)
	} else {
		fmt.Println(msg)
	}
}

func main() {
	skipTitle := flag.Bool("skip-title", false, "skip the title card")
	seed := flag.Int64("seed", 0, "question generator seed (0 picks one from the clock)")
	assetDir := flag.String("assets", "img", "directory holding the game art")
	flag.Parse()

	initGettext()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	app := ebiten.NewApp(*assetDir, *skipTitle, rng)
	if err := app.Run(); err != nil {
		log.Fatalf("Cannot run game: %v", err)
	}

	farewell(app.Won())
}
