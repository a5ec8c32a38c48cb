package main

import (
	"os"

	"github.com/thenoetrevino/eventreg/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
