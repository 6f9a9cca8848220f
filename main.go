package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"combogrip/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Set up logging; the terminal belongs to the prompt
	log.SetOutput(io.Discard)
	if path := os.Getenv("COMBOGRIP_LOG"); path != "" {
		logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "combogrip: could not open log file: %v\n", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}

	cmd := cli.NewRootCommand(cli.IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}, nil)
	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, cli.ErrCancelled):
		log.Printf("Prompt cancelled")
	default:
		log.Printf("Error: %v", err)
		fmt.Fprintf(os.Stderr, "combogrip: %v\n", err)
	}
	return 1
}
