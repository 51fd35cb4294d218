package main

import "github.com/rob-by06/workout-nutrition-tracker/cmd/fit/root"

func main() {
	root.Execute()
}
