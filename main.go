package main

import "github.com/brogergvhs/tafsird/cmd"

func main() {
	cmd.Execute()
}
