package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/pesonapantai/go-wisata/app/configs"
	"github.com/pesonapantai/go-wisata/app/db/seeders"
	"github.com/pesonapantai/go-wisata/app/helpers"
	"github.com/pesonapantai/go-wisata/app/models"
	"github.com/pesonapantai/go-wisata/app/models/migrations"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed sample beaches, articles, products, services and site settings",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := seeders.Seed(db); err != nil {
						return err
					}
					log.Println("✅ Seeding complete")
					return nil
				},
			},
			{
				Name:  "create-admin",
				Usage: "Create an admin user for the panel",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Full name", Value: "Admin"},
					&cli.StringFlag{Name: "email", Usage: "Login email", Required: true},
					&cli.StringFlag{Name: "password", Usage: "Login password", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					hashed := helpers.HashPassword(c.String("password"))
					if hashed == "" {
						return fmt.Errorf("gagal melakukan hash password")
					}
					user := &models.User{
						ID:       uuid.New().String(),
						FullName: c.String("name"),
						Email:    c.String("email"),
						Password: hashed,
						Role:     "admin",
					}
					if err := db.WithContext(ctx).Create(user).Error; err != nil {
						return err
					}
					log.Printf("✅ Admin %s created", user.Email)
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("✅ Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
