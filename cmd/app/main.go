package main

import (
	"os"

	"github.com/hetpatoliya0206/ZeroWaste-Connect/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
