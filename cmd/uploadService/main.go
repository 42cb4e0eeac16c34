package main

import (
	"github.com/labstack/gommon/color"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/app/upload"
)

func main() {
	printBanner()
	upload.Execute()
}

var (
	version string
)

func printBanner() {
	banner := `
        __    _
  _____/ /_  (_)________
 / ___/ __ \/ / ___/ __ \
/ /__/ / / / / /  / /_/ /
\___/_/ /_/_/_/  / .___/
               _/_/            __
  __  ______  / /___  ____ ___/ /
 / / / / __ \/ / __ \/ __ ` + "`" + `/ __  /
/ /_/ / /_/ / / /_/ / /_/ / /_/ /
\__,_/ .___/_/\____/\__,_/\__,_/ v: %s
    /_/
%s
________________________________________________________

`
	cl := color.New()
	cl.Printf(banner, cl.Red(version), cl.Green("github.com/uttambiswas679/GoogleChirpGeorgian"))
}
