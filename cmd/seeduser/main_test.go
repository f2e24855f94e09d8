package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Divyanshusamdani/Expense-Tracker/internal/logger"
)

func init() {
	logger.Init("test")
}

func TestRun_Success(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "seed.db")
	stdout := new(bytes.Buffer)

	err := run([]string{"-user", "testuser", "-password", "secret123", "-db", dbPath}, new(bytes.Buffer), stdout, new(bytes.Buffer))
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "User testuser created successfully")
}

func TestRun_DuplicateUser(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "seed.db")
	args := []string{"-user", "testuser", "-password", "secret123", "-db", dbPath}

	require.NoError(t, run(args, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer)))

	stdout := new(bytes.Buffer)
	err := run(args, new(bytes.Buffer), stdout, new(bytes.Buffer))
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "already exists")
}

func TestRun_PromptsForPassword(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "seed.db")
	stdout := new(bytes.Buffer)

	err := run([]string{"-user", "prompted", "-db", dbPath}, strings.NewReader("hunter22\n"), stdout, new(bytes.Buffer))
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "Password: ")
	assert.Contains(t, stdout.String(), "User prompted created successfully")
}

func TestRun_EmptyPassword(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "seed.db")

	err := run([]string{"-user", "nopass", "-db", dbPath}, strings.NewReader("   \n"), new(bytes.Buffer), new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password cannot be empty")
}

func TestRun_MissingUser(t *testing.T) {
	stdout := new(bytes.Buffer)

	err := run([]string{"-user", "", "-password", "secret123"}, new(bytes.Buffer), stdout, new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required flags: user")
	assert.Contains(t, stdout.String(), "Usage: seeduser")
}
