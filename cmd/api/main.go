package main

import (
	"log"

	"decisionengine/cmd"
)

func main() {
	handler, secrets, cleanup, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if err := handler.StartApi(secrets.Port); err != nil {
		log.Fatal(err)
	}
}
