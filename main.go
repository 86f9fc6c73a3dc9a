package main

import "github.com/graytonio/slack-intro-bot/cmd"

func main() {
	cmd.Execute()
}
