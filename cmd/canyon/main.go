package main

import "canyon/internal/game"

func main() {
	game.RunDesktop()
}
