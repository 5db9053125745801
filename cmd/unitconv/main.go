package main

import "github.com/aalvaropc/unitconv/internal/cli"

func main() {
	cli.Execute()
}
