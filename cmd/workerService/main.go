package main

import (
	"github.com/labstack/gommon/color"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/app/worker"
)

func main() {
	printBanner()
	worker.Execute()
}

var (
	version string
)

func printBanner() {
	banner := `
         __    _
  ____ _/ /_  (_)________
 / ___/ __ \/ / ___/ __ \
/ /__/ / / / / /  / /_/ /
\___/_/ /_/_/_/  / .___/
     work       /_/ er  v: %s

%s
________________________________________________________

`
	cl := color.New()
	cl.Printf(banner, cl.Red(version), cl.Green("github.com/uttambiswas679/GoogleChirpGeorgian"))
}
