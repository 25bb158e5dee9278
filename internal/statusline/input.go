package statusline

import (
	"encoding/json"
	"io"
	"os"
)

// Input is the JSON context object the host writes to stdin on every
// render tick. Only the working directory is consumed; newer hosts nest
// it under "workspace", older ones put it at the top level.
type Input struct {
	CurrentDir string `json:"current_dir"`
	Workspace  struct {
		CurrentDir string `json:"current_dir"`
	} `json:"workspace"`
}

// ReadInput parses the host context from r. It is tolerant: malformed or
// empty input degrades to the process working directory, never an error.
func ReadInput(r io.Reader) Input {
	var in Input
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		in = Input{}
	}
	if in.CurrentDir == "" {
		in.CurrentDir = in.Workspace.CurrentDir
	}
	if in.CurrentDir == "" {
		if wd, err := os.Getwd(); err == nil {
			in.CurrentDir = wd
		}
	}
	return in
}
