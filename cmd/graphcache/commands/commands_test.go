package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/graphcache/cmd/graphcache/commands"
	"go.trai.ch/graphcache/internal/app"
	"go.trai.ch/graphcache/internal/build"
)

type mockApp struct {
	replayFunc func(ctx context.Context, path string, opts app.ReplayOptions) error
}

func (m *mockApp) Replay(ctx context.Context, path string, opts app.ReplayOptions) error {
	if m.replayFunc != nil {
		return m.replayFunc(ctx, path, opts)
	}
	return nil
}

func TestCommands_Replay(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.ReplayOptions
		var capturedPath string

		mock := &mockApp{
			replayFunc: func(_ context.Context, path string, opts app.ReplayOptions) error {
				capturedPath = path
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"replay", "scenario.yaml", "--watch", "--json-logs", "-l", "debug"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "scenario.yaml", capturedPath)
		assert.Equal(t, app.ReplayOptions{Watch: true, LogLevel: "debug", JSONLogs: true}, capturedOpts)
	})

	t.Run("defaults", func(t *testing.T) {
		var capturedOpts app.ReplayOptions
		mock := &mockApp{
			replayFunc: func(_ context.Context, _ string, opts app.ReplayOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"replay", "scenario.yaml"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.ReplayOptions{}, capturedOpts)
	})

	t.Run("returns error on replay failure", func(t *testing.T) {
		mock := &mockApp{
			replayFunc: func(context.Context, string, app.ReplayOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"replay", "scenario.yaml"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("requires a scenario path", func(t *testing.T) {
		mock := &mockApp{
			replayFunc: func(context.Context, string, app.ReplayOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"replay"})

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "graphcache version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", buf.String())
}
