package main

import (
	"context"

	"github.com/NicholasBallard/calories-parse/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
