/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/irtpa-tdbot/irtpa"
	"github.com/mikeb26/irtpa-tdbot/league"
)

type TdSubCommand string

const (
	TdAboutCmd   TdSubCommand = "about"
	TdHelpCmd    TdSubCommand = "help"
	TdCalCmd     TdSubCommand = "cal"
	TdEventCmd   TdSubCommand = "event"
	TdEntriesCmd TdSubCommand = "entries"
	TdDrawCmd    TdSubCommand = "draw"
	TdTeamHcpCmd TdSubCommand = "teamhcp"
)

var tdSubCmdHdlrs = map[TdSubCommand]CmdHandler{
	TdAboutCmd:   tdAboutCmdHandler,
	TdHelpCmd:    tdHelpCmdHandler,
	TdCalCmd:     tdCalCmdHandler,
	TdEventCmd:   tdEventCmdHandler,
	TdEntriesCmd: tdEntriesCmdHandler,
	TdDrawCmd:    tdDrawCmdHandler,
	TdTeamHcpCmd: tdTeamHcpCmdHandler,
}

func tdCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	data := inter.ApplicationCommandData()
	hdlr := tdHelpCmdHandler
	if len(data.Options) > 0 {
		if subName := data.Options[0].Name; subName != "" {
			h, ok := tdSubCmdHdlrs[TdSubCommand(subName)]
			if ok {
				hdlr = h
			}
		}
	}
	return hdlr(ctx, inter)
}

//go:embed about.txt
var aboutText string

func tdAboutCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(aboutText)

	return resp
}

//go:embed help.md
var helpText string

func tdHelpCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(helpText)
	return resp
}

func tdCalCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	data := inter.ApplicationCommandData()
	days := int64(14)  // default
	broadcast := false // default
	if len(data.Options) > 0 {
		for _, opt := range data.Options[0].Options {
			if opt.Name == "days" {
				days = opt.IntValue()
			} else if opt.Name == "broadcast" {
				broadcast = opt.BoolValue()
			}
		}
	}
	// enforce bounds
	if days <= 0 {
		days = 14
	} else if days > 60 {
		days = 60
	}

	now := time.Now()
	end := now.AddDate(0, 0, int(days))

	events, err := league.GetEvents()
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching events: %v", err)
		log.Printf("discordbot.cal: %v", resp.Data.Content)
		return resp
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
		resp.Data.Content = fmt.Sprintf("No events found in the next %d days.",
			days)
		log.Printf("discordbot.cal: %v", resp.Data.Content)
		return resp
	}

	// Build sorted output
	var datesList []string
	for d := range eventsByDate {
		datesList = append(datesList, d)
	}
	sort.Strings(datesList)
	var sb strings.Builder
	for _, d := range datesList {
		sb.WriteString(fmt.Sprintf("**%s**\n", d))
		for _, ev := range eventsByDate[d] {
			sb.WriteString(fmt.Sprintf("- %v (EventID:%v)\n", ev.Title,
				ev.EventID))
		}
	}
	sb.WriteString("\nRun /td event <EventID> to get details on a specific event\n")
	resp.Data.Content = truncateContent(sb.String())

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

// eventIdFromOptions extracts the eventid and broadcast options common to
// most td subcommands. ok is false when no eventid was supplied.
func eventIdFromOptions(
	data discordgo.ApplicationCommandInteractionData) (eventID int64,
	broadcast bool, ok bool) {

	if len(data.Options) == 0 {
		return 0, false, false
	}
	for _, opt := range data.Options[0].Options {
		if opt.Name == "eventid" {
			eventID = opt.IntValue()
			ok = true
		} else if opt.Name == "broadcast" {
			broadcast = opt.BoolValue()
		}
	}
	return eventID, broadcast, ok
}

func tdEventCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	eventID, broadcast, ok := eventIdFromOptions(inter.ApplicationCommandData())
	if !ok {
		resp.Data.Content = "Please provide an event ID."
		log.Printf("discordbot.event: %v", resp.Data.Content)
		return resp
	}

	detail, err := league.GetEventDetail(eventID)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching event %d: %v",
			eventID, err)
		log.Printf("discordbot.event: %v", resp.Data.Content)
		return resp
	}

	embed := &discordgo.MessageEmbed{
		Title:       detail.Title,
		URL:         fmt.Sprintf("https://www.irtpa.net/events/%d", detail.EventID),
		Type:        discordgo.EmbedTypeLink,
		Description: league.BuildEventOutput(&detail, "**", false, false),
	}
	resp.Data.Embeds = []*discordgo.MessageEmbed{embed}
	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

// tdEntriesCmdHandler handles the /td entries command to display an event's
// entry list grouped by session
func tdEntriesCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	eventID, broadcast, ok := eventIdFromOptions(inter.ApplicationCommandData())
	if !ok {
		resp.Data.Content = "Please provide an event ID."
		log.Printf("discordbot.entries: %v", resp.Data.Content)
		return resp
	}

	detail, err := league.GetEventDetail(eventID)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching entries for event %d: %v",
			eventID, err)
		log.Printf("discordbot.entries: %v", resp.Data.Content)
		return resp
	}
	if len(detail.Entries) == 0 {
		resp.Data.Content = fmt.Sprintf("No entries found for event %d.",
			eventID)
		log.Printf("discordbot.entries: %v", resp.Data.Content)
		return resp
	}

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(league.BuildEntriesOutput(&detail)))

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

// tdDrawCmdHandler handles the /td draw command to generate a single
// elimination draw for an event
func tdDrawCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	data := inter.ApplicationCommandData()
	eventID, broadcast, ok := eventIdFromOptions(data)
	if !ok {
		resp.Data.Content = "Please provide an event ID."
		log.Printf("discordbot.draw: %v", resp.Data.Content)
		return resp
	}
	var size int64
	for _, opt := range data.Options[0].Options {
		if opt.Name == "size" {
			size = opt.IntValue()
		}
	}

	draw, err := league.GetDraw(eventID, int(size), nil)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error generating draw for event %d: %v",
			eventID, err)
		log.Printf("discordbot.draw: %v", resp.Data.Content)
		return resp
	}

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(league.BuildDrawOutput(draw)))

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

// tdTeamHcpCmdHandler handles the /td teamhcp command to compute a doubles
// team's combined handicap
func tdTeamHcpCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	data := inter.ApplicationCommandData()
	broadcast := false // default
	var hcpA, hcpB float64
	foundA, foundB := false, false
	if len(data.Options) > 0 {
		for _, opt := range data.Options[0].Options {
			if opt.Name == "a" {
				hcpA = opt.FloatValue()
				foundA = true
			} else if opt.Name == "b" {
				hcpB = opt.FloatValue()
				foundB = true
			} else if opt.Name == "broadcast" {
				broadcast = opt.BoolValue()
			}
		}
	}
	if !foundA || !foundB {
		resp.Data.Content = "Please provide both partners' handicaps."
		log.Printf("discordbot.teamhcp: %v", resp.Data.Content)
		return resp
	}

	result := irtpa.CalcTeamHandicap(hcpA, hcpB)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**Difference**: %v\n", result.Difference))
	sb.WriteString(fmt.Sprintf("**Adjustment**: %v\n", result.Adjustment))
	sb.WriteString(fmt.Sprintf("**Team plays off**: %v\n",
		irtpa.FormatHandicap(result.Combined)))
	resp.Data.Content = truncateContent(sb.String())

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

// https://discord.com/developers/docs/resources/channel#start-thread-in-forum-or-media-channel-forum-and-media-thread-message-params-object
// limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
