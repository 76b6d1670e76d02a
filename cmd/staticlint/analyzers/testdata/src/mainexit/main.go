package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("start")
	os.Exit(1) // want "direct call to os.Exit in main.main is forbidden"
}

func helper() {
	os.Exit(2)
}
