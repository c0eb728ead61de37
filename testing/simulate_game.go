// simulate_game drives a full session against a game server from the
// command line: create, slide until game over (or the move limit),
// print each response. Useful for eyeballing a server, scripted or
// real, without the TUI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http/httptest"

	"twenty48/internal/client"
	"twenty48/internal/config"
	"twenty48/internal/game"
	"twenty48/internal/stubserver"
)

const maxMoves = 50

func main() {
	baseURL := flag.String("url", "", "game server base URL (default: in-process stub server)")
	seed := flag.Int64("seed", 1, "seed for the random move sequence")
	flag.Parse()

	url := *baseURL
	if url == "" {
		srv := httptest.NewServer(stubserver.New(stubserver.DefaultScript()).Router())
		defer srv.Close()
		url = srv.URL
		fmt.Printf("using in-process stub server at %s\n", url)
	}

	ctx := context.Background()
	cli := client.New(url, 0)
	rng := rand.New(rand.NewSource(*seed))

	created, err := cli.CreateGame(ctx, config.DefaultGameConfig())
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	fmt.Printf("game %s created\n", created.GameUUID)
	printGrid(created.Game.Grid)

	directions := []game.Direction{game.DirUp, game.DirDown, game.DirLeft, game.DirRight}
	for move := 1; move <= maxMoves; move++ {
		dir := directions[rng.Intn(len(directions))]
		resp, err := cli.PerformSlide(ctx, created.GameUUID, dir)
		if err != nil {
			log.Fatalf("Move %d (%s) failed: %v", move, dir, err)
		}

		fmt.Printf("--- move %d: %s (score %d, spawn %s) ---\n", move, dir, resp.Game.Score, resp.Reason)
		printGrid(resp.Game.Grid)

		if resp.Result == game.ResultGameOver {
			fmt.Printf("game over after %d moves with score %d\n", move, resp.Game.Score)
			return
		}
	}
	fmt.Printf("stopped after %d moves without game over\n", maxMoves)
}

func printGrid(grid [][]int) {
	for _, row := range grid {
		for _, v := range row {
			if v == 0 {
				fmt.Print("    .")
			} else {
				fmt.Printf("%5d", v)
			}
		}
		fmt.Println()
	}
}
