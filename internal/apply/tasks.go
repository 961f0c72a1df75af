// Package apply evaluates a schema's apply block against on-disk artifacts
// and a checkbox task file, yielding one of blocked, ready, or all_done.
// State is recomputed on every call; nothing is persisted.
package apply

import (
	"bufio"
	"regexp"
	"strings"
)

// taskPattern matches checkbox lines: "- [ ]", "- [x]", "- [X]", with "*"
// accepted in place of "-".
var taskPattern = regexp.MustCompile(`^\s*[-*]\s+\[([ xX])\]\s+(.+)$`)

// TaskItem is one checkbox line from a tracked file.
type TaskItem struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// ParseTasks extracts checkbox tasks from file content. Ids are sequential
// and 1-based; the done flag is set from a case-insensitive x. Lines that
// are not checkboxes are ignored.
func ParseTasks(content string) []TaskItem {
	var tasks []TaskItem
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		match := taskPattern.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}
		tasks = append(tasks, TaskItem{
			ID:          len(tasks) + 1,
			Description: match[2],
			Done:        strings.EqualFold(match[1], "x"),
		})
	}
	return tasks
}

// Progress summarizes a parsed task list.
type Progress struct {
	Total     int `json:"total"`
	Complete  int `json:"complete"`
	Remaining int `json:"remaining"`
}

// progressOf derives counts purely from the parsed list.
func progressOf(tasks []TaskItem) Progress {
	p := Progress{Total: len(tasks)}
	for _, t := range tasks {
		if t.Done {
			p.Complete++
		}
	}
	p.Remaining = p.Total - p.Complete
	return p
}
