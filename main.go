package main

import "github.com/uniworld/uniworld/cmd/server"

func main() {
	s := server.NewServer()
	s.Run()
}
