package main

import "os"

func main() {
	if err := RootCommand(NewDefaultServices()).Execute(); err != nil {
		os.Exit(1)
	}
}
