package main

import (
	"os"

	"github.com/aquasecurity/vulntrix/pkg"
)

var (
	version = "0.1.0"
)

func main() {
	ac := pkg.AppConfig{}
	os.Exit(ac.Run(version, os.Args))
}
