// FILE: inicfg/example/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"inicfg"
)

const sample = `[db]
host = localhost
port = 5432
debug = Yes
timeout = 30s
data_dir = ~/pgdata

[api]
listen = :8080
rate_limit = 2.5
`

func main() {
	// Write a sample config to disk so the program has a file to read.
	path := filepath.Join(os.TempDir(), "example.ini")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		log.Fatal(err)
	}
	defer os.Remove(path)

	store, err := inicfg.Load(path)
	if err != nil {
		log.Fatal(err)
	}

	// Required sections up front.
	if invalid := store.ValidateSections([]string{"db", "api"}); invalid != nil {
		store.LogInvalidSections(invalid)
		log.Fatalf("missing sections: %v", invalid)
	}

	host, _ := store.String("db", "host")
	port, _ := store.Int64("db", "port")
	debug, _ := store.Bool("db", "debug")
	rate, _ := store.Float64("api", "rate_limit")
	dataDir, _ := store.Path("db", "data_dir")

	fmt.Printf("db: %s:%d debug=%v data=%s\n", host, port, debug, dataDir)
	fmt.Printf("api rate limit: %.1f req/s\n", rate)

	// Unique-option discovery: "listen" exists only in [api].
	if section, ok := store.SectionOf("listen"); ok {
		fmt.Printf("option 'listen' belongs to section %q\n", section)
	}

	// Expected-missing lookup stays quiet with silent=true.
	if _, ok := store.Lookup("db", "replica_host", inicfg.KindRaw, true); !ok {
		fmt.Println("no replica configured")
	}

	// Decode a whole section into a struct.
	var db struct {
		Host    string        `ini:"host"`
		Port    int           `ini:"port"`
		Timeout time.Duration `ini:"timeout"`
	}
	if err := store.DecodeSection("db", &db); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("decoded: %+v\n", db)
}
