package main

import "github.com/aalvaropc/dayoff/internal/cli"

func main() {
	cli.Execute()
}
