package main

import "composer-sync/internal/cli"

func main() {
	cli.Execute()
}
