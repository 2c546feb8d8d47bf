/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/mikeb26/irtpa-tdbot/bracket"
	"github.com/mikeb26/irtpa-tdbot/irtpa"
	"github.com/mikeb26/irtpa-tdbot/league"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":    handleHelp,
	"cal":     handleCal,
	"event":   handleEvent,
	"entries": handleEntries,
	"draw":    handleDraw,
	"teamhcp": handleTeamHcp,
	"member":  handleMember,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

func handleCal(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("cal", flag.ExitOnError)
	days := fs.Int("days", 14, "Number of days to retrieve (1-60)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	// enforce bounds
	if *days < 1 {
		*days = 14
	} else if *days > 60 {
		*days = 60
	}

	now := time.Now()
	end := now.AddDate(0, 0, *days)

	events, err := league.GetEvents()
	if err != nil {
		log.Fatalf("Error fetching events: %v", err)
	}
	// Filter and group events by date
	eventsByDate := make(map[string][]league.Event)
	for _, ev := range events {
		if ev.Date.Before(now) || ev.Date.After(end) {
			continue
		}
		key := ev.Date.Format("2006-01-02")
		eventsByDate[key] = append(eventsByDate[key], ev)
	}

	if len(eventsByDate) == 0 {
		fmt.Printf("No events found in the next %d days.\n", *days)
		return
	}
	// Build sorted output
	var dates []string
	for d := range eventsByDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	for _, d := range dates {
		fmt.Println(d)
		for _, ev := range eventsByDate[d] {
			fmt.Printf("  - %s (EventID:%d)\n", ev.Title, ev.EventID)
		}
	}
	fmt.Printf("\nRun '%s event --eventid <EventID>' to get details on a specific event\n",
		os.Args[0])
}

func handleEvent(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("event", flag.ExitOnError)
	eventID := fs.Int("eventid", 0, "Event ID to fetch details for")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *eventID <= 0 {
		fmt.Fprintln(os.Stderr, "Please provide a valid --eventid ID.")
		fs.Usage()
		os.Exit(1)
	}
	detail, err := league.GetEventDetail(int64(*eventID))
	if err != nil {
		log.Fatalf("Error fetching event %d: %v", *eventID, err)
	}
	fmt.Print(league.BuildEventOutput(&detail, "", false, true))
}

func handleEntries(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("entries", flag.ExitOnError)
	eventID := fs.Int("eventid", 0, "Event ID to fetch entries for")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *eventID <= 0 {
		fmt.Fprintln(os.Stderr, "Please provide a valid --eventid ID.")
		fs.Usage()
		os.Exit(1)
	}
	detail, err := league.GetEventDetail(int64(*eventID))
	if err != nil {
		log.Fatalf("Error fetching entries for event %d: %v", *eventID, err)
	}
	fmt.Print(league.BuildEntriesOutput(&detail))
}

func handleDraw(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	eventID := fs.Int("eventid", 0, "Event ID to generate a draw for")
	size := fs.Int("size", 0,
		"Bracket size (8, 16, 32, 64, or 128; 0 selects automatically)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *eventID <= 0 {
		fmt.Fprintln(os.Stderr, "Please provide a valid --eventid ID.")
		fs.Usage()
		os.Exit(1)
	}

	draw, err := league.GetDraw(int64(*eventID), *size, bracket.NewRand())
	if err != nil {
		log.Fatalf("Error generating draw for event %d: %v", *eventID, err)
	}
	fmt.Print(league.BuildDrawOutput(draw))
}

func handleTeamHcp(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("teamhcp", flag.ExitOnError)
	hcpA := fs.Float64("a", 0, "First partner's handicap (plus players negative)")
	hcpB := fs.Float64("b", 0, "Second partner's handicap (plus players negative)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	result := irtpa.CalcTeamHandicap(*hcpA, *hcpB)
	fmt.Printf("Difference: %v\n", result.Difference)
	fmt.Printf("Adjustment: %v\n", result.Adjustment)
	fmt.Printf("Team plays off: %v\n",
		irtpa.FormatHandicap(result.Combined))
}

func handleMember(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("member", flag.ExitOnError)
	memberID := fs.Int("id", 0, "IRTPA member id")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *memberID == 0 {
		fmt.Fprintln(os.Stderr, "Please provide a valid --id <IRTPA member id>")
		fs.Usage()
		os.Exit(1)
	}

	client := irtpa.NewClient(ctx)
	member, err := client.FetchMember(ctx, irtpa.MemID(*memberID))
	if err != nil {
		log.Fatalf("Error fetching member %v: %v", *memberID, err)
	}

	fmt.Printf("Name: %v\n", member.Name)
	if member.Club != "" {
		fmt.Printf("Club: %v\n", member.Club)
	}
	if member.SinglesHandicap != nil {
		fmt.Printf("Singles: %v\n",
			irtpa.FormatHandicap(*member.SinglesHandicap))
	}
	if member.DoublesHandicap != nil {
		fmt.Printf("Doubles: %v\n",
			irtpa.FormatHandicap(*member.DoublesHandicap))
	}
}
