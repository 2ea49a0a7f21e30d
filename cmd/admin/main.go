// Admin tooling for one-off maintenance tasks.
//
// Usage:
//
//	admin slugify-rooms      backfill slugs for rooms missing one
//	admin truncate-messages  delete all chat messages
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/uniworld/uniworld/internal/database"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: admin <slugify-rooms|truncate-messages>")
		os.Exit(2)
	}

	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	db := &database.Database{}
	if err := db.Connect(); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	switch os.Args[1] {
	case "slugify-rooms":
		slugifyRooms(db)
	case "truncate-messages":
		truncateMessages(db)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		os.Exit(2)
	}
}

func slugifyRooms(db *database.Database) {
	rooms, err := db.RoomsWithoutSlug()
	if err != nil {
		log.Fatalf("list rooms: %v", err)
	}

	updated := 0
	for i := range rooms {
		if err := db.BackfillRoomSlug(&rooms[i]); err != nil {
			log.Fatalf("backfill slug for room %s: %v", rooms[i].ID, err)
		}
		updated++
	}

	fmt.Printf("Successfully updated %d rooms\n", updated)
}

func truncateMessages(db *database.Database) {
	count, err := db.TruncateMessages()
	if err != nil {
		log.Fatalf("truncate messages: %v", err)
	}

	fmt.Printf("Successfully deleted %d messages\n", count)
}
