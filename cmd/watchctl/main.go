// watchctl is a small terminal client for the watchlist API.
//
// Usage:
//
//	watchctl [-api URL] list [-filter TERM]
//	watchctl [-api URL] add SYMBOL...
//	watchctl [-api URL] remove SYMBOL...
//	watchctl [-api URL] clear
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"watchlist_backend/internal/client"
	infrahttp "watchlist_backend/internal/platform/http"
)

func main() {
	apiURL := flag.String("api", envOr("WATCHLIST_API", "http://localhost:8080"), "watchlist API base URL")
	filter := flag.String("filter", "", "filter the list by substring")
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	api := client.NewClient(*apiURL, infrahttp.NewHTTPClient(10*time.Second))
	view := client.NewView(api, client.TimerScheduler{})

	switch cmd := flag.Arg(0); cmd {
	case "list":
		if err := view.Refresh(ctx); err != nil {
			log.Fatalf("%s", view.Error())
		}
		view.SetFilter(*filter)
		printStocks(view.Visible())
	case "add":
		requireArgs(cmd)
		for _, symbol := range flag.Args()[1:] {
			if err := view.Add(ctx, symbol); err != nil {
				fmt.Fprintln(os.Stderr, view.Error())
				continue
			}
			fmt.Println(view.Success())
		}
	case "remove":
		requireArgs(cmd)
		for _, symbol := range flag.Args()[1:] {
			if err := view.Remove(ctx, symbol); err != nil {
				fmt.Fprintln(os.Stderr, view.Error())
				continue
			}
			fmt.Println(view.Success())
		}
	case "clear":
		if err := view.Refresh(ctx); err != nil {
			log.Fatalf("%s", view.Error())
		}
		if err := view.ClearAll(ctx); err != nil {
			log.Fatalf("%s", view.Error())
		}
		fmt.Println(view.Success())
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func printStocks(stocks []client.Stock) {
	if len(stocks) == 0 {
		fmt.Println("No stocks in watchlist")
		return
	}
	for _, s := range stocks {
		if s.Price > 0 {
			fmt.Printf("%-6s %10.2f  %s\n", s.Name, s.Price, s.UpdatedAt.Local().Format("2006-01-02 15:04"))
		} else {
			fmt.Printf("%-6s\n", s.Name)
		}
	}
}

func requireArgs(cmd string) {
	if flag.NArg() < 2 {
		fmt.Fprintf(os.Stderr, "watchctl %s: at least one symbol required\n", cmd)
		os.Exit(2)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
