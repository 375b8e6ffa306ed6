package main

import "github.com/threecgreen/nile-sub000/internal/cli"

func main() {
	cli.Execute()
}
