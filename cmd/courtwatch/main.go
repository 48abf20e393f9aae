package main

import "github.com/example/courtwatch/internal/interfaces/cli"

func main() {
	cli.Execute()
}
