package main

import (
	"log"

	"failpolicy-sim/internal/dashboard"
)

func main() {
	if err := dashboard.Render("build"); err != nil {
		log.Fatal(err)
	}
}
