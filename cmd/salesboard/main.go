package main

import (
	"github.com/mnavarro/salesboard/internal/cmd"
)

func main() {
	cmd.Execute()
}
