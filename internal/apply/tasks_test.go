package apply

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTasks(t *testing.T) {
	t.Parallel()

	content := `# Tasks

## 1. Setup

- [ ] 1.1 Create the module
- [x] 1.2 Add dependencies
- [X] 1.3 Wire the config
* [ ] 1.4 Star bullets work too

Plain prose is ignored.
-[ ] missing space is not a task
- [y] unknown marker is not a task
`
	tasks := ParseTasks(content)
	require.Len(t, tasks, 4)

	assert.Equal(t, 1, tasks[0].ID)
	assert.Equal(t, "1.1 Create the module", tasks[0].Description)
	assert.False(t, tasks[0].Done)

	assert.True(t, tasks[1].Done, "lowercase x marks done")
	assert.True(t, tasks[2].Done, "uppercase X marks done")

	assert.Equal(t, 4, tasks[3].ID)
	assert.Equal(t, "1.4 Star bullets work too", tasks[3].Description)
}

func TestParseTasks_IndentedAndEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ParseTasks(""))
	assert.Empty(t, ParseTasks("no tasks here\n"))

	indented := ParseTasks("  - [ ] nested task\n")
	require.Len(t, indented, 1)
	assert.Equal(t, "nested task", indented[0].Description)
}

func TestProgressOf(t *testing.T) {
	t.Parallel()

	tasks := []TaskItem{
		{ID: 1, Done: true},
		{ID: 2, Done: false},
		{ID: 3, Done: true},
	}

	p := progressOf(tasks)
	assert.Equal(t, Progress{Total: 3, Complete: 2, Remaining: 1}, p)

	assert.Equal(t, Progress{}, progressOf(nil))
}
