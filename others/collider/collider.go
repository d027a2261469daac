package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/Lzww0608/ruuid"
)

// Collision audit soak test: hammers the v1 and v4 generators from many
// goroutines and records every produced UUID in a UNIQUE-keyed MySQL table.
// A rejected insert means two process runs (or two goroutines) produced the
// same 128-bit value, which for v1 points at a node/clock-sequence
// misconfiguration and for v4 at a broken entropy source.

// AuditDAO encapsulates all database operations for the audit table.
type AuditDAO struct {
	db *sql.DB
}

// NewAuditDAO creates a new DAO with the provided database DSN.
func NewAuditDAO(dsn string) (*AuditDAO, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// DB performance and safety tuning
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return &AuditDAO{
		db: db,
	}, nil
}

// EnsureSchema creates the audit table when it does not exist yet. UUIDs are
// stored in their 16-byte binary form; the primary key enforces uniqueness.
func (dao *AuditDAO) EnsureSchema(ctx context.Context) error {
	_, err := dao.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS uuid_audit (
			id      BINARY(16) NOT NULL PRIMARY KEY,
			version TINYINT    NOT NULL,
			run_at  BIGINT     NOT NULL
		)`)
	return err
}

// RecordBatch inserts a batch of UUIDs, counting duplicates instead of
// failing on them. Returns how many rows were newly inserted.
func (dao *AuditDAO) RecordBatch(ctx context.Context, batch []ruuid.UUID, runAt int64) (int64, error) {
	if len(batch) == 0 {
		return 0, nil
	}

	tx, err := dao.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT IGNORE INTO uuid_audit (id, version, run_at) VALUES (?, ?, ?)")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	var inserted int64
	for _, id := range batch {
		res, err := stmt.ExecContext(ctx, id.Bytes(), byte(id.Version()), runAt)
		if err != nil {
			return inserted, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return inserted, err
		}
		inserted += n
	}

	if err := tx.Commit(); err != nil {
		return inserted, err
	}
	return inserted, nil
}

// CountByVersion reports how many audited UUIDs exist per version.
func (dao *AuditDAO) CountByVersion(ctx context.Context) (map[byte]int64, error) {
	rows, err := dao.db.QueryContext(ctx,
		"SELECT version, COUNT(*) FROM uuid_audit GROUP BY version")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[byte]int64)
	for rows.Next() {
		var version byte
		var count int64
		if err := rows.Scan(&version, &count); err != nil {
			return nil, err
		}
		counts[version] = count
	}
	return counts, rows.Err()
}

// soak generates count UUIDs per goroutine, alternating v1 and v4, and
// delivers them in batches to the audit channel.
func soak(gen *ruuid.Generator, goroutines, perRoutine, batchSize int, batches chan<- []ruuid.UUID) {
	var wg sync.WaitGroup
	var genErrors int64

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			batch := make([]ruuid.UUID, 0, batchSize)
			for j := 0; j < perRoutine; j++ {
				var (
					id  ruuid.UUID
					err error
				)
				if j%2 == 0 {
					id, err = gen.NewV1()
				} else {
					id, err = gen.NewV4()
				}
				if err != nil {
					atomic.AddInt64(&genErrors, 1)
					continue
				}

				batch = append(batch, id)
				if len(batch) == batchSize {
					batches <- batch
					batch = make([]ruuid.UUID, 0, batchSize)
				}
			}
			if len(batch) > 0 {
				batches <- batch
			}
		}()
	}

	wg.Wait()
	close(batches)

	if n := atomic.LoadInt64(&genErrors); n > 0 {
		log.Printf("WARNING: %d generation errors during soak", n)
	}
}

func main() {
	// Please modify this DSN with your real DB credentials before use.
	dsn := "lzww:123456@tcp(127.0.0.1:3306)/test_db?parseTime=true"

	dao, err := NewAuditDAO(dsn)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := dao.EnsureSchema(ctx); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	const (
		goroutines = 10
		perRoutine = 5000
		batchSize  = 500
	)

	gen := ruuid.NewGenerator()
	runAt := time.Now().UnixMilli()

	log.Println("uuid collision audit started...")
	start := time.Now()

	batches := make(chan []ruuid.UUID, goroutines)
	go soak(gen, goroutines, perRoutine, batchSize, batches)

	var produced, inserted int64
	for batch := range batches {
		produced += int64(len(batch))
		n, err := dao.RecordBatch(ctx, batch, runAt)
		if err != nil {
			log.Fatalf("record batch: %v", err)
		}
		inserted += n
	}

	elapsed := time.Since(start)
	duplicates := produced - inserted
	log.Printf("audited %d UUIDs in %s (%d new, %d duplicates)",
		produced, elapsed, inserted, duplicates)
	if duplicates > 0 {
		log.Printf("ALERT: %d duplicate UUIDs - check node identity and entropy source", duplicates)
	}

	counts, err := dao.CountByVersion(ctx)
	if err != nil {
		log.Fatalf("count by version: %v", err)
	}
	for version, count := range counts {
		fmt.Printf("version %d: %d audited\n", version, count)
	}
}
