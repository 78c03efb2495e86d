// Command seed provisions the single admin credential and, optionally, a
// starter set of portfolio content. It is a one-shot tool run outside the
// server process.
package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/content"
	"portfolio/internal/database"
)

func main() {
	var (
		username    = flag.String("username", "admin", "admin username to provision")
		password    = flag.String("password", "", "admin password (random when omitted, printed once)")
		dbPath      = flag.String("db", "", "sqlite database path (defaults to DATABASE_PATH)")
		withContent = flag.Bool("with-content", true, "seed sample portfolio content")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	path := strings.TrimSpace(*dbPath)
	if path == "" {
		path = os.Getenv("DATABASE_PATH")
	}
	if path == "" {
		path = "portfolio.db"
	}

	db, err := database.InitDatabase(config.DatabaseConfig{Path: path})
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	ctx := context.Background()
	repo := content.NewRepository(db)

	u := strings.TrimSpace(*username)
	if u == "" {
		log.Fatal("username must not be empty")
	}

	if _, found, err := repo.GetUserByUsername(ctx, u); err != nil {
		log.Fatalf("query user: %v", err)
	} else if found {
		fmt.Printf("admin user %q already exists, skipping credential setup\n", u)
	} else {
		pw := *password
		generated := false
		if pw == "" {
			pw, err = generateRandomPassword(24)
			if err != nil {
				log.Fatalf("generate password: %v", err)
			}
			generated = true
		}

		hashed, err := auth.HashPassword(pw)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		if _, err := repo.CreateUser(ctx, u, hashed); err != nil {
			log.Fatalf("create user: %v", err)
		}

		fmt.Printf("admin user created: %s\n", u)
		if generated {
			fmt.Printf("password (shown once): %s\n", pw)
		}
	}

	if *withContent {
		if err := seedContent(ctx, repo); err != nil {
			log.Fatalf("seed content: %v", err)
		}
		fmt.Println("sample content seeded")
	}
}

func seedContent(ctx context.Context, repo *content.Repository) error {
	if _, found, err := repo.GetAbout(ctx); err != nil {
		return err
	} else if !found {
		if err := repo.UpsertAbout(ctx, database.About{
			Title:       "Lecturer & Researcher",
			Subtitle:    "Institute of Higher Education",
			Description: "Academic leader and lecturer working across higher education, with research interests in distributed systems and applied machine learning.",
			ImageURL:    "/images/profile.webp",
		}); err != nil {
			return err
		}
	}

	work, err := repo.ListWork(ctx)
	if err != nil {
		return err
	}
	if len(work) == 0 {
		entries := []database.WorkExperience{
			{
				Title:        "Program Director - IT and Systems",
				Company:      "Institute of Higher Education",
				Period:       "2023 - Present",
				Description:  "Leading the IT and systems program: curriculum development, academic leadership and student success.",
				Skills:       "Academic Leadership, Curriculum Development, Lecturing",
				DisplayOrder: 1,
			},
			{
				Title:        "PhD Research - Distributed Systems",
				Company:      "University",
				Period:       "Current",
				Description:  "Doctoral research on security and privacy in edge computing using distributed ledger technology.",
				Skills:       "Distributed Systems, Edge Computing, Security, Research",
				DisplayOrder: 2,
			},
		}
		for _, entry := range entries {
			if _, err := repo.CreateWork(ctx, entry); err != nil {
				return err
			}
		}
	}

	publications, err := repo.ListPublications(ctx)
	if err != nil {
		return err
	}
	if len(publications) == 0 {
		entries := []database.Publication{
			{
				Title:        "Improving Weed Identification with Pre-trained Deep Neural Networks",
				Publisher:    "IEEE",
				Year:         2022,
				Description:  "Applies transfer learning to raise farming productivity through automated weed identification.",
				URL:          "https://example.org/publications/weeds",
				DisplayOrder: 1,
			},
			{
				Title:        "Ledger Technology and its Impact on Operational Performance of Banks",
				Publisher:    "IEEE",
				Year:         2022,
				Description:  "Reviews distributed ledger technology for secure financial transactions without third-party providers.",
				URL:          "https://example.org/publications/ledger",
				DisplayOrder: 2,
			},
		}
		for _, entry := range entries {
			if _, err := repo.CreatePublication(ctx, entry); err != nil {
				return err
			}
		}
	}

	if _, found, err := repo.GetContact(ctx); err != nil {
		return err
	} else if !found {
		if err := repo.UpsertContact(ctx, database.Contact{
			Email:  "hello@example.org",
			GitHub: "https://github.com/example",
		}); err != nil {
			return err
		}
	}

	return nil
}

func generateRandomPassword(bytesLen int) (string, error) {
	buf := make([]byte, bytesLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
