package model

// Executable is the resolved generator binary
type Executable struct {
	Path  string
	Built bool // true when this run had to configure and build it
}
