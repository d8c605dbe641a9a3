package main

import (
	"os"

	"github.com/sanjjiiev/Smart-Sheild/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
