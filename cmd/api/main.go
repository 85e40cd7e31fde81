package main

import "github.com/BruksfildServices01/foodgram/internal/cli"

func main() {
	cli.Execute()
}
