package main

import (
	"os"
	"strings"
)

// API_DI=dig wires the server with the dig container; dependencies are built by hand otherwise.
func main() {
	if strings.ToLower(os.Getenv("API_DI")) == "dig" {
		startWithDig()
		return
	}
	startManual()
}
