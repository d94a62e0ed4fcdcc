package main

import (
	"github.com/snaharmd-cloud/blastgo/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
