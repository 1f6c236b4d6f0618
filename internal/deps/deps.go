package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"discdump/internal/config"
	"discdump/internal/execctx"
)

// Requirement defines an executable a dumping program needs.
type Requirement struct {
	Program  execctx.Program
	Command  string
	Optional bool
}

// Status reports the availability of a requirement.
type Status struct {
	Program   execctx.Program
	Command   string
	Optional  bool
	Available bool
	Path      string
	Detail    string
}

// Name returns the program's display name.
func (s Status) Name() string { return s.Program.DisplayName() }

// Requirements lists every supported program's binary from cfg. Only the
// configured program is mandatory.
func Requirements(cfg *config.Config) []Requirement {
	active := cfg.Program()
	reqs := make([]Requirement, 0, len(execctx.Programs()))
	for _, p := range execctx.Programs() {
		reqs = append(reqs, Requirement{
			Program:  p,
			Command:  cfg.Binary(p),
			Optional: p != active,
		})
	}
	return reqs
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		status := Status{
			Program:  req.Program,
			Command:  strings.TrimSpace(req.Command),
			Optional: req.Optional,
		}
		switch path, err := lookPath(status.Command); {
		case status.Command == "":
			status.Detail = "command not configured"
		case err != nil:
			status.Detail = fmt.Sprintf("binary %q not found", status.Command)
		default:
			status.Available = true
			status.Path = path
		}
		results = append(results, status)
	}
	return results
}

func lookPath(command string) (string, error) {
	if command == "" {
		return "", exec.ErrNotFound
	}
	return exec.LookPath(command)
}

// Missing returns the unavailable mandatory requirements.
func Missing(statuses []Status) []Status {
	var out []Status
	for _, s := range statuses {
		if !s.Available && !s.Optional {
			out = append(out, s)
		}
	}
	return out
}
