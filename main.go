package main

import "github.com/Sid-4215/marketbloom-backend/cmd"

func main() {
	cmd.Execute()
}
