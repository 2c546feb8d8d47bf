/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/irtpa-tdbot/irtpa"
	"github.com/mikeb26/irtpa-tdbot/league"
)

// this program exists just to seed the http cache for irtpa members
// registered in upcoming events

func main() {
	ctx := context.Background()
	client := irtpa.NewClient(ctx)

	events, err := league.GetEvents()
	if err != nil {
		// best effort
		return
	}

	memberIds := make(map[irtpa.MemID]bool)
	for _, event := range events {
		detail, err := league.GetEventDetail(int64(event.EventID))
		time.Sleep(2 * time.Second) // avoid pegging irtpa.net
		if err != nil {
			// best effort
			continue
		}

		for _, entry := range detail.Entries {
			if entry.MemberID != 0 {
				memberIds[irtpa.MemID(entry.MemberID)] = true
			}
		}

		fmt.Printf("seeded ev:%v\n", detail.Title)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4) // avoid pegging irtpa.net
	for memId := range memberIds {
		memId := memId
		g.Go(func() error {
			member, err := client.FetchMember(ctx, memId)
			if err != nil {
				// best effort
				return nil
			}

			fmt.Printf("seeded %v member data\n", member.Name)
			return nil
		})
	}
	g.Wait()
}
