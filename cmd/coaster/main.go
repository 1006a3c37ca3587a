package main

import "coaster/internal/game"

func main() {
	game.RunDesktop()
}
