package main

import (
	"os"

	"github.com/Cal-ly/SnakeMath-sub002/cmd/snakemath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
