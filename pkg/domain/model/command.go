package model

// Command describes one external process invocation
type Command struct {
	Name string
	Args []string

	// Passthrough streams output to the console instead of capturing it
	Passthrough bool
}

// Argv returns the full argument vector including the program name
func (c *Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// ProcessResult is the outcome of a process that ran to completion.
// A process that could not be started produces an error instead.
type ProcessResult struct {
	ExitCode int
	Stdout   []byte // empty when Passthrough
	Stderr   []byte // empty when Passthrough
}

// Succeeded reports whether the process exited with status zero
func (r *ProcessResult) Succeeded() bool {
	return r.ExitCode == 0
}
