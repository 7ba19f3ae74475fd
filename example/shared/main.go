// Command shared demonstrates persisting shared tags across process
// restarts: minting, encoding, saving to SQLite, reloading, and why a
// tag from a previous process lifetime never matches a fresh one.
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	versiontag "github.com/danylaporte/version-tag"
	"github.com/danylaporte/version-tag/logging"
	"github.com/danylaporte/version-tag/sharedtag"
	"github.com/danylaporte/version-tag/storage/sqlite"
)

func main() {
	logging.Init(logging.Config{Level: "debug", Format: "text", Environment: "dev"})
	log := logging.Default().WithComponent(logging.Component("shared-demo"))
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "version-tag-demo")
	if err != nil {
		log.Error("mkdir failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer os.RemoveAll(dir)

	store, err := sqlite.NewWithDataSource("file:" + filepath.Join(dir, "tags.db"))
	if err != nil {
		log.Error("store open failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	// Mint a tag, bind it to this process instance, and persist it.
	current := sharedtag.Share(versiontag.New())
	if err := store.Save(ctx, "report", current); err != nil {
		log.LogError(ctx, err, "save failed")
		os.Exit(1)
	}
	log.Info("tag persisted",
		slog.String("encoded", current.Encode()),
		slog.String("instance", sharedtag.Instance().String()),
	)

	// Reload it: same process, so it still matches.
	loaded, err := store.Load(ctx, "report")
	if err != nil {
		log.LogError(ctx, err, "load failed")
		os.Exit(1)
	}
	log.Info("reload within the same process", slog.Bool("matches", loaded.Equal(current)))

	// A tag persisted by a PREVIOUS process lifetime carries a
	// different instance identifier. Forge one by flipping a byte in
	// the instance half of the composite.
	raw, _ := current.MarshalBinary()
	raw[0] ^= 0xff
	var previousLifetime sharedtag.SharedTag
	if err := previousLifetime.UnmarshalBinary(raw); err != nil {
		log.LogError(ctx, err, "unmarshal failed")
		os.Exit(1)
	}
	log.Info("tag from another lifetime, same ordinal",
		slog.Uint64("ordinal", previousLifetime.Ordinal()),
		slog.Bool("matches", previousLifetime.Equal(current)),
	)

	// Comparing against "no tag present" is false, never an error.
	log.Info("compare against absent tag", slog.Bool("matches", current.EqualPtr(nil)))

	// Malformed encodings are rejected, never silently accepted.
	if _, err := sharedtag.Decode("definitely-not-a-tag"); err != nil {
		log.LogError(ctx, err, "decoding rejected as expected")
	}
}
