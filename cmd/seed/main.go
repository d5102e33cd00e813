// Command main runs the database seeder for the board.
package main

import (
	"flag"
	"log"

	"aiboard/internal/config"
	"aiboard/internal/database"
	"aiboard/internal/seed"
)

func main() {
	numPosts := flag.Int("posts", 20, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean board tables before seeding")
	fast := flag.Bool("fast", false, "Use a cheap bcrypt cost for faster seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db, seed.Options{
		NumPosts:   *numPosts,
		SkipBcrypt: *fast,
	})

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.Run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d posts. Every seeded record uses the password %q.", *numPosts, seed.DemoPassword)
}
