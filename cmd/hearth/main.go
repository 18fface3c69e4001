package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"hearth/internal/cache"
	"hearth/internal/config"
	"hearth/internal/recipes"
	"hearth/internal/sanity"
)

func main() {
	var serve bool
	var addr string
	var slug string
	var scale float64
	var list bool
	var help bool

	flag.BoolVar(&serve, "serve", false, "Run HTTP server mode")
	flag.StringVar(&addr, "addr", ":8080", "Address to bind in server mode")
	flag.StringVar(&slug, "slug", "", "Print a single recipe by slug")
	flag.StringVar(&slug, "s", "", "Print a single recipe by slug (short form)")
	flag.Float64Var(&scale, "scale", 1, "Ingredient scale factor for -slug output")
	flag.BoolVar(&list, "list", false, "Print the recipe list")
	flag.BoolVar(&list, "l", false, "Print the recipe list (short form)")
	flag.BoolVar(&help, "help", false, "Show help message")
	flag.BoolVar(&help, "h", false, "Show help message")
	flag.Parse()

	if help {
		showHelp()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if serve {
		if err := runServer(cfg, addr); err != nil {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	ctx := context.Background()
	c, err := cache.MakeCache()
	if err != nil {
		log.Fatalf("failed to create cache: %v", err)
	}
	service := recipes.NewService(sanity.NewClient(cfg.Content), c)

	if slug != "" {
		recipe, err := service.BySlug(ctx, slug)
		if err != nil {
			log.Fatalf("failed to load recipe %q: %v", slug, err)
		}
		fmt.Print(recipes.NewFormatter(scale).FormatRecipe(recipe))
		return
	}

	if list {
		all, err := service.List(ctx)
		if err != nil {
			log.Fatalf("failed to load recipes: %v", err)
		}
		fmt.Print(recipes.NewFormatter(1).FormatRecipeList(all))
		return
	}

	fmt.Println("Error: pick a mode (-serve, -list, or -slug)")
	showHelp()
	os.Exit(1)
}

func showHelp() {
	fmt.Println("Hearth - Family Recipe Browser")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  hearth -serve [-addr :8080]")
	fmt.Println("  hearth -list")
	fmt.Println("  hearth -slug <slug> [-scale 2]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -serve          Run the web server")
	fmt.Println("  -addr           Address to bind in server mode")
	fmt.Println("  -list, -l       Print the recipe list")
	fmt.Println("  -slug, -s       Print a single recipe by slug")
	fmt.Println("  -scale          Ingredient scale factor for -slug output")
	fmt.Println("  -help, -h       Show this help message")
}
