package main

import "github.com/astromechza/eha/internal/cli"

func main() {
	cli.Execute()
}
