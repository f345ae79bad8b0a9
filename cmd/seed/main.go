// Seeds the database with an admin account and a small set of test data.
// Admin credentials come from the command line:
//
//	go run ./cmd/seed <admin-username> <admin-password>
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/qa-forum-api/internal/config"
	"github.com/qa-forum-api/internal/database"
	"github.com/qa-forum-api/internal/models"
	"github.com/qa-forum-api/internal/repository"
	"github.com/qa-forum-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	log := logger.New()

	if len(os.Args) < 3 {
		log.Fatal().Msg("Usage: seed <admin-username> <admin-password>")
	}
	adminUsername, adminPassword := os.Args[1], os.Args[2]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	repos := repository.New(db)
	ctx := context.Background()

	err = repos.InTx(ctx, func(r *repository.Repositories) error {
		if err := createAccount(ctx, r, adminUsername, adminUsername+"@gmail.com", adminPassword, true, date(2023, 4, 5), 0, nil, nil, nil); err != nil {
			return err
		}

		t1 := &models.Tag{ID: newID(), Name: "coding"}
		t2 := &models.Tag{ID: newID(), Name: "program"}
		for _, tag := range []*models.Tag{t1, t2} {
			if err := r.Tag.Create(ctx, tag); err != nil {
				return err
			}
		}

		c1 := comment("This is a good question.", date(2023, 4, 12))
		c2 := comment("This is a bad question.", date(2023, 4, 11))
		c3 := comment("This is a good answer.", date(2023, 4, 10))
		c4 := comment("This is a bad answer.", date(2023, 4, 9))
		for _, c := range []*models.Comment{c1, c2, c3, c4} {
			if err := r.Comment.Create(ctx, c); err != nil {
				return err
			}
		}

		a1 := &models.Answer{
			ID:          newID(),
			Text:        "The answer is...",
			CommentIDs:  []string{c3.ID, c4.ID},
			AnsBy:       "testuser",
			AnsDateTime: date(2023, 4, 8),
		}
		if err := r.Answer.Create(ctx, a1); err != nil {
			return err
		}

		q1 := &models.Question{
			ID:          newID(),
			Title:       "First Question",
			Summary:     "Summary of first question.",
			Text:        "Text of first question.",
			TagIDs:      []string{t1.ID, t2.ID},
			CommentIDs:  []string{c1.ID, c2.ID},
			AnswerIDs:   []string{a1.ID},
			AskedBy:     "testuser",
			AskDateTime: date(2023, 4, 7),
			Views:       10,
		}
		if err := r.Question.Create(ctx, q1); err != nil {
			return err
		}

		return createAccount(ctx, r, "testuser", "testuser@gmail.com", "password", false, date(2023, 4, 6), 60,
			[]string{q1.ID}, []string{t1.ID, t2.ID}, []string{a1.ID})
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}

	log.Info().Msg("Done")
}

func createAccount(ctx context.Context, r *repository.Repositories, username, email, password string, admin bool, regAt time.Time, reputation int, questionIDs, tagIDs, answerIDs []string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return r.Account.Create(ctx, &models.Account{
		ID:          newID(),
		Username:    username,
		Email:       email,
		Password:    string(hash),
		Admin:       admin,
		RegDateTime: regAt,
		Reputation:  reputation,
		QuestionIDs: questionIDs,
		TagIDs:      tagIDs,
		AnswerIDs:   answerIDs,
	})
}

func comment(text string, at time.Time) *models.Comment {
	return &models.Comment{ID: newID(), Text: text, ComBy: "testuser", ComDateTime: at}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newID() string {
	return uuid.New().String()
}
