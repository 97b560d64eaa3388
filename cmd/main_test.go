package main

import (
	"bytes"
	"os"
	"participant-cache/errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const aliceJSON = `{
	"id": "u1",
	"name": "Alice",
	"username": "alice",
	"email": "alice@example.com",
	"presence": "online",
	"created_at": "2024-03-01T12:30:00+02:00",
	"attributes": {"theme": "dark", "rooms": [1, 2]}
}`

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CACHE_DRIVER", "badger")
	t.Setenv("CACHE_PATH", t.TempDir())
	t.Setenv("CACHE_CODEC", "proto")
	t.Setenv("LOG_LEVEL", "INFO")
}

func Test_Put_Get_Delete(t *testing.T) {
	req := require.New(t)
	setupEnv(t)

	var out bytes.Buffer
	code, err := run([]string{"put"}, strings.NewReader(aliceJSON), &out)
	req.NoError(err)
	req.Equal(exitOK, code)
	req.Contains(out.String(), "cached participant u1")

	out.Reset()
	code, err = run([]string{"get", "-id", "u1"}, nil, &out)
	req.NoError(err)
	req.Equal(exitOK, code)
	req.Contains(out.String(), "Alice")
	req.Contains(out.String(), "alice@example.com")
	req.Contains(out.String(), "online")
	req.Contains(out.String(), "2024-03-01T10:30:00Z")
	req.Contains(out.String(), `"dark"`)
	req.Contains(out.String(), "[1,2]")

	out.Reset()
	code, err = run([]string{"delete", "-id", "u1, u2"}, nil, &out)
	req.NoError(err)
	req.Equal(exitOK, code)
	req.Contains(out.String(), "forgot participant u1")
	req.Contains(out.String(), "forgot participant u2")

	code, err = run([]string{"get", "-id", "u1"}, nil, &out)
	req.ErrorIs(err, errors.ErrNotFound)
	req.Equal(exitRuntime, code)
}

func Test_Put_From_File(t *testing.T) {
	req := require.New(t)
	setupEnv(t)
	t.Setenv("CACHE_CODEC", "msgpack")

	file := filepath.Join(t.TempDir(), "alice.json")
	req.NoError(os.WriteFile(file, []byte(aliceJSON), 0o600))

	var out bytes.Buffer
	code, err := run([]string{"put", "-file", file}, nil, &out)
	req.NoError(err)
	req.Equal(exitOK, code)

	out.Reset()
	_, err = run([]string{"get", "-id", "u1"}, nil, &out)
	req.NoError(err)
	req.Contains(out.String(), "Alice")
}

func Test_Put_Invalid_Participant(t *testing.T) {
	req := require.New(t)
	setupEnv(t)

	code, err := run([]string{"put"}, strings.NewReader(`{"name": "no id"}`), &bytes.Buffer{})
	req.ErrorIs(err, errors.ErrInvalidParticipant)
	req.Equal(exitRuntime, code)

	code, err = run([]string{"put"}, strings.NewReader(`{"id": "u1", "presence": "busy"}`), &bytes.Buffer{})
	req.Error(err)
	req.Equal(exitRuntime, code)
}

func Test_Run_Usage_Errors(t *testing.T) {
	req := require.New(t)
	setupEnv(t)

	code, err := run(nil, nil, &bytes.Buffer{})
	req.Error(err)
	req.Equal(exitConfig, code)

	code, err = run([]string{"rename"}, nil, &bytes.Buffer{})
	req.ErrorContains(err, "unknown command")
	req.Equal(exitConfig, code)

	t.Setenv("CACHE_DRIVER", "redis")
	code, err = run([]string{"get", "-id", "u1"}, nil, &bytes.Buffer{})
	req.ErrorIs(err, errors.ErrUnknownDriver)
	req.Equal(exitConfig, code)
}
