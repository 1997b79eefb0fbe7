package main

import "github.com/rpgo/taxdrag/internal/cli"

func main() {
	cli.Execute()
}
