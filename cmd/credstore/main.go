package main

import "github.com/alapierre/credstore/internal/cli"

func main() {
	cli.Main()
}
