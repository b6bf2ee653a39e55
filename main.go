package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/vschwaberow/rustalize/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the rustalize REPL, %s!\n", currentUser.Username)
	fmt.Println("Enter a struct, trait or enum declaration.")
	repl.Start(os.Stdin, os.Stdout)
}
