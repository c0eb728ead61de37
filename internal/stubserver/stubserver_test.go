package stubserver

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twenty48/internal/client"
	"twenty48/internal/game"
)

func testConfig() game.Config {
	return game.Config{
		GridSize:          4,
		RootTileValue:     2,
		SpawnTileCount:    1,
		StartingTileCount: 2,
		WinTileValue:      2048,
	}
}

func TestDefaultScriptParses(t *testing.T) {
	s := DefaultScript()
	require.NotEmpty(t, s.Steps)
	assert.Len(t, s.Initial.Grid, 4)
	assert.Equal(t, game.ResultGameOver, s.Steps[len(s.Steps)-1].Result)
}

func TestScriptedSession(t *testing.T) {
	srv := httptest.NewServer(New(DefaultScript()).Router())
	defer srv.Close()

	c := client.New(srv.URL, 0)
	ctx := context.Background()

	created, err := c.CreateGame(ctx, testConfig())
	require.NoError(t, err)
	require.NotEmpty(t, created.GameUUID)
	assert.Equal(t, testConfig(), created.Game.Config, "created state echoes the posted config")
	assert.Equal(t, 2, created.Game.Grid[0][0])

	first, err := c.PerformSlide(ctx, created.GameUUID, game.DirLeft)
	require.NoError(t, err)
	assert.Equal(t, game.ResultNormal, first.Result)
	assert.Equal(t, game.SpawnNormal, first.Reason)

	second, err := c.PerformSlide(ctx, created.GameUUID, game.DirUp)
	require.NoError(t, err)
	assert.Equal(t, 4, second.Game.Score)

	last, err := c.PerformSlide(ctx, created.GameUUID, game.DirDown)
	require.NoError(t, err)
	assert.Equal(t, game.ResultGameOver, last.Result)
	assert.Equal(t, game.SpawnBoardFull, last.Reason)
	assert.Equal(t, 12, last.Game.Score)

	// Exhausted scripts repeat their final step.
	again, err := c.PerformSlide(ctx, created.GameUUID, game.DirDown)
	require.NoError(t, err)
	assert.Equal(t, game.ResultGameOver, again.Result)
}

func TestSessionsAdvanceIndependently(t *testing.T) {
	srv := httptest.NewServer(New(DefaultScript()).Router())
	defer srv.Close()

	c := client.New(srv.URL, 0)
	ctx := context.Background()

	a, err := c.CreateGame(ctx, testConfig())
	require.NoError(t, err)
	b, err := c.CreateGame(ctx, testConfig())
	require.NoError(t, err)
	require.NotEqual(t, a.GameUUID, b.GameUUID)

	_, err = c.PerformSlide(ctx, a.GameUUID, game.DirLeft)
	require.NoError(t, err)
	_, err = c.PerformSlide(ctx, a.GameUUID, game.DirLeft)
	require.NoError(t, err)

	// Session b is still on the first step.
	resp, err := c.PerformSlide(ctx, b.GameUUID, game.DirLeft)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Game.Score)
}

func TestRejectsBadRequests(t *testing.T) {
	srv := httptest.NewServer(New(DefaultScript()).Router())
	defer srv.Close()

	c := client.New(srv.URL, 0)
	ctx := context.Background()

	_, err := c.CreateGame(ctx, game.Config{GridSize: -1})
	assert.Error(t, err, "invalid configs are rejected locally")

	_, err = c.PerformSlide(ctx, "not-a-session", game.DirUp)
	assert.Error(t, err, "unknown sessions get an HTTP error")
}
