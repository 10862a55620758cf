package main

import "github.com/flashbots/relay-data/cli"

func main() {
	cli.Main()
}
