/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestTdHelpCmdHandler(t *testing.T) {
	ctx := context.Background()

	inter := &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Options: []*discordgo.ApplicationCommandInteractionDataOption{},
		},
	}

	resp := tdHelpCmdHandler(ctx, inter)
	if resp == nil {
		t.Fatal("Expected non-nil response")
	}
	if resp.Type != discordgo.InteractionResponseChannelMessageWithSource {
		t.Errorf("Expected response type %v, got %v",
			discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	}
	if resp.Data == nil || resp.Data.Content == "" {
		t.Fatal("Expected non-empty response content")
	}
	if resp.Data.Flags != discordgo.MessageFlagsEphemeral {
		t.Error("Expected help response to be ephemeral")
	}
}

func TestTdTeamHcpCmdHandler(t *testing.T) {
	ctx := context.Background()

	// Construct a fake interaction: /td teamhcp a:32 b:45
	inter := &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{
					Name: "teamhcp",
					Type: discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandInteractionDataOption{
						{
							Name:  "a",
							Type:  discordgo.ApplicationCommandOptionNumber,
							Value: 32.0,
						},
						{
							Name:  "b",
							Type:  discordgo.ApplicationCommandOptionNumber,
							Value: 45.0,
						},
					},
				},
			},
		},
	}

	resp := tdTeamHcpCmdHandler(ctx, inter)
	if resp == nil {
		t.Fatal("Expected non-nil response")
	}
	if resp.Data == nil {
		t.Fatal("Expected non-nil Data in response")
	}
	if !strings.Contains(resp.Data.Content, "35.8") {
		t.Errorf("Expected response to contain team handicap 35.8, got %q",
			resp.Data.Content)
	}
	if !strings.Contains(resp.Data.Content, "3.8") {
		t.Errorf("Expected response to contain adjustment 3.8, got %q",
			resp.Data.Content)
	}
}

func TestTdTeamHcpCmdHandlerMissingArgs(t *testing.T) {
	ctx := context.Background()

	inter := &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{
					Name: "teamhcp",
					Type: discordgo.ApplicationCommandOptionSubCommand,
				},
			},
		},
	}

	resp := tdTeamHcpCmdHandler(ctx, inter)
	if resp == nil || resp.Data == nil {
		t.Fatal("Expected non-nil response")
	}
	if !strings.Contains(resp.Data.Content, "Please provide") {
		t.Errorf("Expected missing-args message, got %q", resp.Data.Content)
	}
}

func TestTruncateContent(t *testing.T) {
	short := "hello"
	if got := truncateContent(short); got != short {
		t.Errorf("truncateContent(%q) = %q; want unchanged", short, got)
	}

	long := strings.Repeat("x", 4000)
	got := truncateContent(long)
	if len([]rune(got)) > 2000 {
		t.Errorf("truncated content still exceeds limit: %v runes",
			len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("expected truncated content to end with ellipsis")
	}
}
