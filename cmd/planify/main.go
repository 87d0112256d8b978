package main

import "github.com/Nazish-kiran/planify/cmd/planify/root"

func main() {
	root.Execute()
}
