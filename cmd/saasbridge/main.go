package main

import (
	"os"

	"github.com/saasbridge/saasbridge/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
