package main

import (
	"github.com/UbiquityDotNET/csemver-go/pkg/cli"
)

func main() {
	cli.Execute()
}
