package main

import "github.com/pwnwatch-hq/pwnwatch/internal/cli"

func main() {
	cli.Execute()
}
