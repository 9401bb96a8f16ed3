package main

import "buildplan/internal/cli"

func main() {
	cli.Execute()
}
