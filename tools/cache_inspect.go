package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"participant-cache/repositories"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

type inspectConfig struct {
	Path string `envconfig:"CACHE_PATH" default:"./participant-cache"`
	Port int    `envconfig:"INSPECT_PORT" default:"0"`
}

const inspectEndpoint = "/inspect"

func main() {
	var config inspectConfig
	if err := envconfig.Process("", &config); err != nil {
		log.Fatal("Config error: ", err)
	}
	dbPath := flag.String("db", config.Path, "Path to the badger participant cache")
	port := flag.Int("serve", config.Port, "Serve the HTML inspector on this port instead of printing a table")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	if *port > 0 {
		// Blocks until /resume is called
		database.StartDebugServer(db, *port, inspectEndpoint, ParticipantMapper)
		database.Wait(repositories.ParticipantKeyPrefix)
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Participant", "Format", "Size", "Display name"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(repositories.ParticipantKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			payload, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			table.Append(inspectRow(string(item.Key()), payload))
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

// entryView describes one stored entry. A broken entry is shown with its
// decoding error instead of a display name.
type entryView struct {
	ID        string
	Format    string
	Size      int
	Detail    string
	UpdatedAt time.Time
}

func describeEntry(key string, payload []byte) entryView {
	entry := repositories.ParticipantCacheEntry{
		ID:      strings.TrimPrefix(key, repositories.ParticipantKeyPrefix),
		Payload: payload,
	}
	view := entryView{ID: entry.ID, Format: "?", Size: len(payload)}

	format, err := entry.Format()
	if err != nil {
		view.Detail = err.Error()
		return view
	}
	view.Format = format.String()
	p, err := entry.ToParticipant()
	if err != nil {
		view.Detail = err.Error()
		return view
	}
	view.Detail = p.DisplayName()
	view.UpdatedAt = p.UpdatedAt
	return view
}

func inspectRow(key string, payload []byte) []string {
	view := describeEntry(key, payload)
	return []string{view.ID, view.Format, strconv.Itoa(view.Size), view.Detail}
}

// ParticipantMapper renders a cache entry for the sdk debug server.
func ParticipantMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	view := describeEntry(key, val)

	row.Namespace = strings.TrimSuffix(repositories.ParticipantKeyPrefix, ":")
	row.EntityID = view.ID
	row.Type = strings.ToUpper(view.Format)
	row.Detail = view.Detail
	if !view.UpdatedAt.IsZero() {
		row.Timestamp = view.UpdatedAt.Format("15:04:05")
	}
	return row
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return db, nil
}
