package change

// ArtifactState classifies one artifact's readiness.
type ArtifactState string

const (
	// StateDone means the artifact's generates target exists on disk.
	StateDone ArtifactState = "done"
	// StateReady means every required artifact is done but this one is not.
	StateReady ArtifactState = "ready"
	// StateBlocked means at least one required artifact is not yet done.
	StateBlocked ArtifactState = "blocked"
)

// ArtifactStatus is one artifact's entry in a change status report.
type ArtifactStatus struct {
	ID          string        `json:"id"`
	Status      ArtifactState `json:"status"`
	OutputPath  string        `json:"outputPath"`
	MissingDeps []string      `json:"missingDeps,omitempty"`
}

// Status is the full readiness report for a change. It is computed, never
// stored.
type Status struct {
	Change     string           `json:"change"`
	Schema     string           `json:"schema"`
	Artifacts  []ArtifactStatus `json:"artifacts"`
	IsComplete bool             `json:"isComplete"`
}

// Status computes per-artifact readiness in build order. An artifact is
// done when its target exists, ready when all of its requires are done, and
// blocked otherwise with MissingDeps naming exactly the unmet requires.
// The computation is idempotent and side-effect free.
func (c *Context) Status() *Status {
	done := make(map[string]bool)
	status := &Status{
		Change:     c.Name,
		Schema:     c.Graph.Name(),
		IsComplete: true,
	}

	for _, a := range c.Graph.BuildOrder() {
		entry := ArtifactStatus{
			ID:         a.ID,
			OutputPath: c.ArtifactPath(a),
		}

		if c.ArtifactDone(a) {
			entry.Status = StateDone
			done[a.ID] = true
		} else {
			status.IsComplete = false
			var missing []string
			for _, req := range a.Requires {
				if !done[req] {
					missing = append(missing, req)
				}
			}
			if len(missing) == 0 {
				entry.Status = StateReady
			} else {
				entry.Status = StateBlocked
				entry.MissingDeps = missing
			}
		}

		status.Artifacts = append(status.Artifacts, entry)
	}

	return status
}
