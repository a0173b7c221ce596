package main

import "antfarm/internal/cli"

func main() {
	cli.Execute()
}
