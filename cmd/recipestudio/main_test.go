package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/recipestudio/internal/config"
	"github.com/hammamikhairi/recipestudio/internal/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvURL, config.EnvModel, config.EnvTimeout, config.EnvTemperature, config.EnvStream} {
		t.Setenv(k, "")
	}
}

// execute runs the command tree with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	clearEnv(t)

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestGenerateOfflineJSON(t *testing.T) {
	out, _, err := execute(t, "generate", "--offline", "--quiet", "--log-file", "stderr", "--json", "spicy", "noodles")
	require.NoError(t, err)

	var r domain.Recipe
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "Spicy Noodles", r.Title)
	assert.Equal(t, 2, r.Servings)
	assert.Equal(t, 20, r.TimeMinutes)
	assert.Equal(t, domain.DefaultIngredients(), r.Ingredients)
	assert.Equal(t, domain.DefaultSteps(), r.Steps)
}

func TestGenerateRawMarkdown(t *testing.T) {
	out, _, err := execute(t, "generate", "--offline", "--quiet", "--log-file", "stderr", "--style", "raw", "garlic", "bread")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Garlic Bread\n"), out)
	assert.Contains(t, out, "## Steps")
}

func TestGenerateFromServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reply := "Sure!\n```json\n{\"title\": \"Best Garlic Bread\", \"servings\": 4, \"time_minutes\": 15, " +
			"\"ingredients\": [\"Bread\", \"Garlic\"], \"steps\": [\"Toast\"]}\n```"
		body, _ := json.Marshal(map[string]any{"response": reply, "done": true})
		fmt.Fprint(w, string(body))
	}))
	defer srv.Close()

	out, errOut, err := execute(t, "generate", "--endpoint", srv.URL, "--quiet", "--log-file", "stderr", "--json", "garlic bread")
	require.NoError(t, err)
	assert.Empty(t, errOut)

	var r domain.Recipe
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "Best Garlic Bread", r.Title)
	assert.Equal(t, 4, r.Servings)
	assert.Equal(t, []string{"Bread", "Garlic"}, r.Ingredients)
}

func TestGenerateServerDownStillPrints(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	out, errOut, err := execute(t, "generate", "--endpoint", srv.URL, "--quiet", "--log-file", "stderr", "--json", "lemon tart")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Model unavailable")

	var r domain.Recipe
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "Lemon Tart", r.Title)
}

func TestInvalidFlags(t *testing.T) {
	_, _, err := execute(t, "generate", "--timeout", "0s", "--quiet", "--log-file", "stderr", "soup")
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, _, err = execute(t, "generate", "--config", "/no/such/recipestudio.yaml", "soup")
	assert.Error(t, err)
}
