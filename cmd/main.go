package main

// Entry point of trendchart
// Reads one JSON chart request from stdin and exits with the dispatcher's code

import (
	"os"

	"trendchart/cmd/commands"
)

func main() {
	os.Exit(commands.Execute())
}
