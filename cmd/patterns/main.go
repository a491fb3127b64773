package main

import "pattern-gateway/internal/cli"

func main() {
	cli.Execute()
}
