package main

import (
	"log"

	"github.com/vibe-coding/getsel/cmd"
)

var version = "v0.1.0" // overridden by -ldflags "-X main.version=..."

func main() {
	log.SetFlags(0)
	cmd.RootCmd.Version = version
	if err := cmd.RootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
