package main

import (
	"log"

	"github.com/fairwork-za/wilmatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
