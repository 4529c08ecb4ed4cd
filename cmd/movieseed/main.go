// Command movieseed loads a MovieLens-style movies.csv into the catalog
// collection so a fresh database has something to browse.
//
// Expected columns: movieId,title,genres. The title column carries the
// release year in a trailing "(YYYY)" suffix and genres are pipe-separated.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/SwapnilRC1995/movies-api-app/mongodb"
	"github.com/SwapnilRC1995/movies-api-app/movie"
	"github.com/SwapnilRC1995/movies-api-app/pkg/config"
)

var yearSuffix = regexp.MustCompile(`^(.*)\((\d{4})\)\s*$`)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	path := flag.String("file", "movies.csv", "path to the MovieLens movies.csv export")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	db, err := mongodb.NewConnection(context.Background(), mongodb.Options{
		URI:      cfg.ConnectionString,
		Database: cfg.DB.Name,
	})
	if err != nil {
		slog.Error("Cannot open mongodb connection", "error", err)
		os.Exit(1)
	}

	f, err := os.Open(*path)
	if err != nil {
		slog.Error("Cannot open csv file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	repo := mongodb.NewMovieRepository(db)
	reader := csv.NewReader(f)

	// Header row.
	if _, err := reader.Read(); err != nil {
		slog.Error("Cannot read csv header", "error", err)
		os.Exit(1)
	}

	var inserted, skipped int
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Error("Cannot read csv record", "error", err)
			os.Exit(1)
		}
		m, ok := fromRecord(record)
		if !ok {
			skipped++
			continue
		}
		if _, err := repo.Insert(context.Background(), m); err != nil {
			slog.Error("Cannot insert movie", "title", m.Title, "error", err)
			os.Exit(1)
		}
		inserted++
	}

	slog.Info("seed finished", "inserted", inserted, "skipped", skipped)
}

func fromRecord(record []string) (movie.Movie, bool) {
	if len(record) < 3 {
		return movie.Movie{}, false
	}
	title, year := splitTitleYear(record[1])
	if title == "" || year == 0 {
		return movie.Movie{}, false
	}
	m := movie.Movie{
		Title:       title,
		Year:        year,
		Genres:      splitGenres(record[2]),
		Type:        "movie",
		Countries:   []string{"USA"},
		Lastupdated: time.Now().UTC().Format(time.RFC3339),
		Awards:      movie.Awards{Text: "No awards yet."},
	}
	if err := m.Validate(); err != nil {
		return movie.Movie{}, false
	}
	return m, true
}

func splitTitleYear(raw string) (string, int) {
	match := yearSuffix.FindStringSubmatch(strings.TrimSpace(raw))
	if match == nil {
		return strings.TrimSpace(raw), 0
	}
	year, err := strconv.Atoi(match[2])
	if err != nil {
		return strings.TrimSpace(raw), 0
	}
	return strings.TrimSpace(match[1]), year
}

func splitGenres(raw string) []string {
	if raw == "" || raw == "(no genres listed)" {
		return []string{}
	}
	return strings.Split(raw, "|")
}
