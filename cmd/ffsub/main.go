package main

import (
	"os"

	"github.com/RogueScr1be/fast-food-sub004/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
