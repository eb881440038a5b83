// Command order-import loads historical orders exported from the legacy
// spreadsheet system. Exports come as gzip-compressed JSONL files, typically
// one per sales year, with overlapping date ranges, so the same order number
// can appear in several files. A bloom filter screens out duplicates cheaply;
// possible hits are confirmed against the database before skipping. The filter
// is seeded from the numbers already in the database so re-running the tool
// over the same exports skips what a previous run imported.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/sweetbatch/orderdesk/internal/domain/history"
	"github.com/sweetbatch/orderdesk/internal/domain/order"
	"github.com/sweetbatch/orderdesk/internal/repository"
)

const (
	bloomCapacity = 10_000_000
	bloomFPR      = 0.001
	progressEvery = 50_000
)

// record is one exported order line. Totals are kept as exported: historical
// orders predate the current tier tables so they are never repriced.
type record struct {
	OrderNumber     string          `json:"orderNumber"`
	Status          order.Status    `json:"status"`
	Total           decimal.Decimal `json:"total"`
	Items           []order.Item    `json:"items"`
	Client          order.Client    `json:"client"`
	PaymentTerms    string          `json:"paymentTerms"`
	Notes           string          `json:"notes"`
	RejectionReason string          `json:"rejectionReason"`
	CreatedAt       time.Time       `json:"createdAt"`
	AcceptedAt      *time.Time      `json:"acceptedAt"`
	ReadyAt         *time.Time      `json:"readyAt"`
	DeliveredAt     *time.Time      `json:"deliveredAt"`
	RejectedAt      *time.Time      `json:"rejectedAt"`
	PaidAt          *time.Time      `json:"paidAt"`
}

func main() {
	var (
		dataDir     string
		databaseURL string
	)

	flag.StringVar(&dataDir, "data-dir", "data", "directory containing orders-*.jsonl.gz export files")
	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, dataDir, databaseURL); err != nil {
		slog.Error("order import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("order import completed successfully")
}

func run(ctx context.Context, dataDir, databaseURL string) error {
	files, err := filepath.Glob(filepath.Join(dataDir, "orders-*.jsonl.gz"))
	if err != nil {
		return errors.Wrap(err, "list export files")
	}
	if len(files) == 0 {
		return errors.Errorf("no orders-*.jsonl.gz files in %s", dataDir)
	}

	slog.Info("connecting to database")

	pool, err := repository.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	if err := repository.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	// Decompression and parsing run per-file on the errgroup; a single
	// writer goroutine owns the bloom filter and the inserts so dedup
	// needs no locking.
	records := make(chan record, 1024)

	g, ctx := errgroup.WithContext(ctx)
	parsers, ctx := errgroup.WithContext(ctx)
	for _, f := range files {
		parsers.Go(parseFile(ctx, f, records))
	}
	g.Go(func() error {
		defer close(records)
		return parsers.Wait()
	})
	g.Go(func() error {
		return writeOrders(ctx, &pgSink{pool: pool, repo: repository.NewOrderRepository(pool)}, records)
	})

	return g.Wait()
}

// parseFile streams one gzip JSONL export and sends valid records downstream.
// Malformed lines are logged and skipped rather than aborting a multi-hour
// import.
func parseFile(ctx context.Context, path string, out chan<- record) func() error {
	return func() error {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "open %s", path)
		}
		defer func() { _ = f.Close() }()

		gz, err := pgzip.NewReader(f)
		if err != nil {
			return errors.Wrapf(err, "create gzip reader for %s", path)
		}
		defer func() { _ = gz.Close() }()

		name := filepath.Base(path)
		var line, skipped uint64

		scanner := bufio.NewScanner(gz)
		scanner.Buffer(make([]byte, 0, 1<<20), 1<<20)
		for scanner.Scan() {
			line++

			var rec record
			if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
				slog.Warn("skipping malformed line",
					slog.String("file", name),
					slog.Uint64("line", line),
					slog.String("error", err.Error()),
				)
				skipped++
				continue
			}
			if rec.OrderNumber == "" || !rec.Status.Valid() || len(rec.Items) == 0 {
				slog.Warn("skipping invalid record",
					slog.String("file", name),
					slog.Uint64("line", line),
					slog.String("order_number", rec.OrderNumber),
				)
				skipped++
				continue
			}

			select {
			case out <- rec:
			case <-ctx.Done():
				return ctx.Err()
			}

			if line%progressEvery == 0 {
				slog.Info("parse progress", slog.String("file", name), slog.Uint64("lines", line))
			}
		}
		if err := scanner.Err(); err != nil {
			return errors.Wrapf(err, "scan %s", path)
		}

		slog.Info("parse complete",
			slog.String("file", name),
			slog.Uint64("lines", line),
			slog.Uint64("skipped", skipped),
		)
		return nil
	}
}

// orderSink is what the writer needs from storage. The narrow interface keeps
// the dedup logic testable without a database.
type orderSink interface {
	// EachNumber streams every order number already persisted.
	EachNumber(ctx context.Context, fn func(number string)) error
	// NumberExists confirms a possible bloom filter hit.
	NumberExists(ctx context.Context, number string) (bool, error)
	Insert(ctx context.Context, o *order.Order, entry history.Entry) error
}

type pgSink struct {
	pool *pgxpool.Pool
	repo *repository.OrderRepository
}

const (
	allOrderNumbersSQL   = `SELECT order_number FROM orders`
	orderNumberExistsSQL = `SELECT EXISTS (SELECT 1 FROM orders WHERE order_number = $1)`
)

func (s *pgSink) EachNumber(ctx context.Context, fn func(string)) error {
	rows, err := s.pool.Query(ctx, allOrderNumbersSQL)
	if err != nil {
		return errors.Wrap(err, "query order numbers")
	}
	defer rows.Close()

	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return errors.Wrap(err, "scan order number")
		}
		fn(number)
	}
	return errors.Wrap(rows.Err(), "iterate order numbers")
}

func (s *pgSink) NumberExists(ctx context.Context, number string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, orderNumberExistsSQL, number).Scan(&exists)
	return exists, err
}

func (s *pgSink) Insert(ctx context.Context, o *order.Order, entry history.Entry) error {
	return s.repo.Create(ctx, o, entry)
}

// writeOrders inserts deduplicated records. The bloom filter answers "never
// seen" definitively; a possible hit is confirmed with an existence check so a
// false positive cannot drop a real order. It is seeded from the database, and
// a unique violation on insert counts as a duplicate instead of failing the
// run, so repeated imports of overlapping exports converge instead of
// aborting.
func writeOrders(ctx context.Context, sink orderSink, records <-chan record) error {
	seen := bloom.NewWithEstimates(bloomCapacity, bloomFPR)

	var seeded uint64
	if err := sink.EachNumber(ctx, func(number string) {
		seen.AddString(number)
		seeded++
	}); err != nil {
		return errors.Wrap(err, "seed dedup filter")
	}
	if seeded > 0 {
		slog.Info("seeded dedup filter from database", slog.Uint64("numbers", seeded))
	}

	var written, duplicates uint64
	for rec := range records {
		if seen.TestString(rec.OrderNumber) {
			exists, err := sink.NumberExists(ctx, rec.OrderNumber)
			if err != nil {
				return errors.Wrapf(err, "check order %s", rec.OrderNumber)
			}
			if exists {
				duplicates++
				continue
			}
		}

		o := &order.Order{
			ID:              uuid.New().String(),
			OrderNumber:     rec.OrderNumber,
			Status:          rec.Status,
			Total:           rec.Total,
			Items:           rec.Items,
			Client:          rec.Client,
			PaymentTerms:    rec.PaymentTerms,
			Notes:           rec.Notes,
			RejectionReason: rec.RejectionReason,
			CreatedAt:       rec.CreatedAt,
			AcceptedAt:      rec.AcceptedAt,
			ReadyAt:         rec.ReadyAt,
			DeliveredAt:     rec.DeliveredAt,
			RejectedAt:      rec.RejectedAt,
			PaidAt:          rec.PaidAt,
		}
		entry := history.Entry{
			ID:       uuid.New().String(),
			OrderID:  o.ID,
			At:       time.Now(),
			Actor:    "import",
			Action:   history.ActionCreated,
			NewValue: string(o.Status),
		}
		if err := sink.Insert(ctx, o, entry); err != nil {
			// A concurrent run can win the race between the existence
			// check and the insert; the constraint catching it is the
			// same outcome as the filter catching it.
			if isUniqueViolation(err) {
				duplicates++
				seen.AddString(rec.OrderNumber)
				continue
			}
			return errors.Wrapf(err, "insert order %s", rec.OrderNumber)
		}
		seen.AddString(rec.OrderNumber)

		written++
		if written%progressEvery == 0 {
			slog.Info("write progress", slog.Uint64("written", written), slog.Uint64("duplicates", duplicates))
		}
	}

	slog.Info("write complete", slog.Uint64("written", written), slog.Uint64("duplicates", duplicates))
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
