package main

import (
	"log"

	"slot_game/internal/app"

	_ "go.uber.org/automaxprocs"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
