package main

import "github.com/stnikolas/ul-timetable/internal/cli"

func main() {
	cli.Execute()
}
