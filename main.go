package main

import (
	"os"

	"clite/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
