package apply

import (
	"path/filepath"
	"strings"

	"github.com/openspec-dev/openspec/internal/change"
	"github.com/openspec-dev/openspec/internal/schema"
)

// State is the apply-phase readiness of a change.
type State string

const (
	// StateBlocked means a required artifact or the tracked file is
	// missing, or the tracked file has no tasks.
	StateBlocked State = "blocked"
	// StateReady means implementation can proceed.
	StateReady State = "ready"
	// StateAllDone means every tracked task is checked off.
	StateAllDone State = "all_done"
)

// Instructions is the computed apply-phase report.
type Instructions struct {
	State            State             `json:"state"`
	ContextFiles     map[string]string `json:"contextFiles"`
	Progress         Progress          `json:"progress"`
	Tasks            []TaskItem        `json:"tasks,omitempty"`
	MissingArtifacts []string          `json:"missingArtifacts,omitempty"`
	TracksFile       string            `json:"tracksFile,omitempty"`
	Instruction      string            `json:"instruction"`
}

// Generate evaluates the schema's apply block for a change. A schema
// without an apply block falls back to requiring every artifact and
// tracking no file.
func Generate(ctx *change.Context) *Instructions {
	applyCfg := ctx.Schema.Apply
	if applyCfg == nil {
		applyCfg = &schema.ApplyConfig{Requires: ctx.Schema.ArtifactIDs()}
	}

	result := &Instructions{
		ContextFiles: make(map[string]string),
	}

	var missing []string
	for _, id := range applyCfg.Requires {
		artifact, ok := ctx.Graph.Artifact(id)
		if !ok {
			continue
		}
		result.ContextFiles[id] = ctx.ArtifactPath(artifact)
		if !ctx.ArtifactDone(artifact) {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		result.State = StateBlocked
		result.MissingArtifacts = missing
		result.Instruction = blockedInstruction(missing, "")
		return result
	}

	if applyCfg.Tracks == "" {
		result.State = StateReady
		result.Instruction = chooseInstruction(applyCfg, StateReady)
		return result
	}

	tracksPath := filepath.Join(ctx.Dir(), filepath.FromSlash(applyCfg.Tracks))
	result.TracksFile = tracksPath

	content, err := ctx.ReadFile(tracksPath)
	if err != nil {
		result.State = StateBlocked
		result.Instruction = "The tracked task file does not exist. Create " + tracksPath + " with a checkbox task list."
		return result
	}

	tasks := ParseTasks(string(content))
	result.Tasks = tasks
	result.Progress = progressOf(tasks)

	switch {
	case len(tasks) == 0:
		result.State = StateBlocked
		result.Instruction = blockedInstruction(nil, tracksPath)
	case result.Progress.Remaining == 0:
		result.State = StateAllDone
		result.Instruction = chooseInstruction(applyCfg, StateAllDone)
	default:
		result.State = StateReady
		result.Instruction = chooseInstruction(applyCfg, StateReady)
	}

	return result
}

// chooseInstruction prefers the schema-supplied instruction, trimmed, for
// the ready and all_done states, falling back to a canned one per state.
func chooseInstruction(cfg *schema.ApplyConfig, state State) string {
	if custom := strings.TrimSpace(cfg.Instruction); custom != "" {
		return custom
	}
	if state == StateAllDone {
		return "All tracked tasks are complete. Review the change and archive it."
	}
	return "All required artifacts are present. Work through the remaining tasks, checking each off as it is finished."
}

// blockedInstruction describes why apply cannot proceed.
func blockedInstruction(missing []string, tracksPath string) string {
	if len(missing) > 0 {
		return "Create the missing artifacts before applying: " + strings.Join(missing, ", ")
	}
	return "The tracked task file has no tasks yet. Populate " + tracksPath + " with a checkbox task list."
}
