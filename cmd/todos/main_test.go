package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunUnknownCommand(t *testing.T) {
	require.Error(t, run([]string{"frobnicate"}))
	require.Error(t, run(nil))
}

func TestHelpTopics(t *testing.T) {
	require.NoError(t, run([]string{"help"}))
	require.NoError(t, run([]string{"help", "serve"}))
	require.NoError(t, run([]string{"help", "schema"}))
	require.Error(t, run([]string{"help", "frobnicate"}))
}

func TestSchemaCommandWritesValidSDL(t *testing.T) {
	out := filepath.Join(t.TempDir(), "schema.graphql")
	require.NoError(t, run([]string{"schema", "-out", out}))

	sdl, err := os.ReadFile(out)
	require.NoError(t, err)
	for _, decl := range []string{
		"interface Node",
		"type TodoConnection",
		"addTodo(input: AddTodoInput!)",
		"removeCompletedTodos(input: RemoveCompletedTodosInput!)",
	} {
		require.True(t, strings.Contains(string(sdl), decl), "missing %q in emitted SDL", decl)
	}
}
