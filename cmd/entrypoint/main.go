package main

import (
	// Import the cmd directory with root.go
	"github.com/redjax/sysfacts/cmd"
)

func main() {
	cmd.Execute()
}
