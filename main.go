package main

import "github.com/sumwatshade/saltwater/cmd"

func main() {
	cmd.Execute()
}
