package main

import (
	"os"

	"github.com/thelolagemann/welle/internal/cli"
	"github.com/thelolagemann/welle/pkg/audio"
	_ "github.com/thelolagemann/welle/pkg/display/fyne"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], cli.WithPlayer(audio.SDL{})))
}
