// Command seed-db loads the cookie catalog with quantity tiers and a default
// API key into the database. Safe to re-run: every write is an upsert.
package main

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/sweetbatch/orderdesk/internal/repository"
)

type tierJSON struct {
	MinQuantity int             `json:"minQuantity"`
	Discount    decimal.Decimal `json:"discount"`
}

type productJSON struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Step     int             `json:"step"`
	Tiers    []tierJSON      `json:"tiers"`
}

func main() {
	var (
		databaseURL  string
		productsFile string
		apiKey       string
		apiKeyPepper string
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&productsFile, "products-file", "db/seed/products.json", "path to products JSON file")
	flag.StringVar(&apiKey, "api-key", "", "API key to seed (or ORDERDESK_SEED_API_KEY env)")
	flag.StringVar(&apiKeyPepper, "api-key-pepper", "", "HMAC pepper for API key hashing (or ORDERDESK_API_KEY_PEPPER env)")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}
	if apiKey == "" {
		apiKey = os.Getenv("ORDERDESK_SEED_API_KEY")
	}
	if apiKey == "" {
		slog.Error("API key is required: set --api-key or ORDERDESK_SEED_API_KEY")
		os.Exit(1)
	}
	if apiKeyPepper == "" {
		apiKeyPepper = os.Getenv("ORDERDESK_API_KEY_PEPPER")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL, productsFile, apiKey, apiKeyPepper); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seed completed successfully")
}

func run(ctx context.Context, databaseURL, productsFile, apiKey, pepper string) error {
	slog.Info("connecting to database")

	pool, err := repository.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	slog.Info("running migrations")

	if err := repository.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	if err := seedProducts(ctx, pool, productsFile); err != nil {
		return errors.Wrap(err, "seed products")
	}

	if err := seedAPIKey(ctx, pool, apiKey, pepper); err != nil {
		return errors.Wrap(err, "seed api key")
	}

	return nil
}

const (
	upsertProductSQL = `
INSERT INTO products (id, name, price, category, step, active)
VALUES ($1, $2, $3, $4, $5, TRUE)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    price = EXCLUDED.price,
    category = EXCLUDED.category,
    step = EXCLUDED.step,
    active = TRUE`

	deleteTiersSQL = `DELETE FROM product_tiers WHERE product_id = $1`

	insertTierSQL = `
INSERT INTO product_tiers (product_id, min_quantity, discount)
VALUES ($1, $2, $3)`

	upsertAPIKeySQL = `
INSERT INTO api_keys (id, key_hash, name, scopes, active)
VALUES ($1, $2, $3, $4, TRUE)
ON CONFLICT (id) DO UPDATE SET
    key_hash = EXCLUDED.key_hash,
    name = EXCLUDED.name,
    scopes = EXCLUDED.scopes,
    active = TRUE`
)

func seedProducts(ctx context.Context, pool *pgxpool.Pool, productsFile string) error {
	slog.Info("reading products file", slog.String("path", productsFile))

	data, err := os.ReadFile(productsFile)
	if err != nil {
		return errors.Wrap(err, "read products file")
	}

	var products []productJSON
	if err := json.Unmarshal(data, &products); err != nil {
		return errors.Wrap(err, "parse products JSON")
	}

	slog.Info("upserting products", slog.Int("count", len(products)))

	for _, p := range products {
		step := p.Step
		if step <= 0 {
			step = 6
		}

		if _, err := pool.Exec(ctx, upsertProductSQL, p.ID, p.Name, p.Price, p.Category, step); err != nil {
			return errors.Wrapf(err, "upsert product %s", p.ID)
		}

		// Tiers are replaced wholesale so removed tiers do not linger.
		if _, err := pool.Exec(ctx, deleteTiersSQL, p.ID); err != nil {
			return errors.Wrapf(err, "clear tiers for %s", p.ID)
		}
		for _, t := range p.Tiers {
			if _, err := pool.Exec(ctx, insertTierSQL, p.ID, t.MinQuantity, t.Discount); err != nil {
				return errors.Wrapf(err, "insert tier %d for %s", t.MinQuantity, p.ID)
			}
		}

		slog.Info("upserted product",
			slog.String("id", p.ID),
			slog.String("name", p.Name),
			slog.Int("tiers", len(p.Tiers)),
		)
	}

	return nil
}

func seedAPIKey(ctx context.Context, pool *pgxpool.Pool, apiKey, pepper string) error {
	slog.Info("seeding default API key")

	mac := hmac.New(sha256.New, []byte(pepper))
	mac.Write([]byte(apiKey))
	keyHash := hex.EncodeToString(mac.Sum(nil))

	scopes := []string{"orders", "billing"}
	if _, err := pool.Exec(ctx, upsertAPIKeySQL, "default", keyHash, "Default operator key", scopes); err != nil {
		return errors.Wrap(err, "upsert default API key")
	}

	slog.Info("upserted API key", slog.String("id", "default"))

	return nil
}
