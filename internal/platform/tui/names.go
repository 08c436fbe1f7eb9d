package tui

import (
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

var petnameOnce sync.Once

// PlayerName returns name, or a random name like "brave-otter" when it is
// empty, so every saved run has someone to credit.
func PlayerName(name string) string {
	if name != "" {
		return name
	}
	petnameOnce.Do(petname.NonDeterministicMode)
	return petname.Generate(2, "-")
}
