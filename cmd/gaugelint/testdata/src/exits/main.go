package main

import (
	"log"
	"os"
)

func main() {
	if err := sample(); err != nil {
		log.Fatal(err)
	}
	defer func() {
		os.Exit(0)
	}()
}

func sample() error {
	log.Fatalf("sampling %s failed", "disk") // want "found usage of log.Fatalf outside of main function"

	os.Exit(1) // want "found usage of os.Exit outside of main function"
	return nil
}

type server struct{}

func (server) main() {
	log.Fatalln("not the program entry point") // want "found usage of log.Fatalln outside of main function"
}
