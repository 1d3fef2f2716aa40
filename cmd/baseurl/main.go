package main

import (
	"os"

	"github.com/jongio/baseurl/cli"
	"github.com/jongio/baseurl/version"
)

func main() {
	os.Exit(cli.Run(version.New("baseurl"), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
