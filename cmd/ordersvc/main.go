package main

import "log"

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
