package main

import (
	"context"
	"fmt"
	"smartdomain/internal/apikeys"
	"smartdomain/internal/config"
	"smartdomain/pkg/domain"
	"smartdomain/pkg/logger"
	"smartdomain/pkg/storage"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// apiKeyCommand constructs the 'apikey' subcommand that ensures the user has a
// profile on the given plan and issues an API key for it in one transaction.
func apiKeyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apikey",
		Short: "Issues an API key for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			userFlag, _ := cmd.Flags().GetString("user")
			name, _ := cmd.Flags().GetString("name")
			plan, _ := cmd.Flags().GetString("plan")
			email, _ := cmd.Flags().GetString("email")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			id, err := uuid.Parse(userFlag)
			if err != nil {
				logger.Fatal(ctx, "user must be a uuid", zap.Error(err))
			}
			userID := domain.UserID(id)
			if !domain.SubscriptionPlan(plan).Valid() {
				logger.Fatal(ctx, "unknown subscription plan", zap.String("plan", plan))
			}

			input := apikeys.CreateInput{Name: name}
			if ttl > 0 {
				input.ExpiresAt = time.Now().Add(ttl)
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			var created *apikeys.Created
			err = strg.WithTx(ctx, func(tx storage.AllStorage) error {
				if _, err := tx.UpsertProfile(ctx, domain.Profile{
					ID:               userID,
					Email:            email,
					SubscriptionPlan: domain.SubscriptionPlan(plan),
				}); err != nil {
					return fmt.Errorf("could not upsert profile: %w", err)
				}

				created, err = apikeys.New(tx, apikeys.NewOptions(cfg)).Create(ctx, userID, input)

				return err
			})
			if err != nil {
				logger.Fatal(ctx, "could not issue api key", zap.Error(err))
			}

			logger.Info(ctx, "api key issued",
				zap.String("userID", userID.String()),
				zap.String("keyPrefix", created.KeyPrefix),
			)
			fmt.Println(created.Secret) //nolint: forbidigo
		},
	}

	cmd.Flags().String("user", "", "User uuid owning the key")
	cmd.Flags().String("name", "cli", "Key name")
	cmd.Flags().String("plan", string(domain.PlanProfessional), "Subscription plan of the user")
	cmd.Flags().String("email", "", "Profile email")
	cmd.Flags().Duration("ttl", 0, "Key lifetime, zero never expires")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
