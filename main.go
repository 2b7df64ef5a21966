package main

import "player-enricher/cmd"

func main() {
	cmd.Execute()
}
