package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ejacobg/moviesapp/internal/catalog"
	"github.com/ejacobg/moviesapp/internal/config"
	"github.com/ejacobg/moviesapp/internal/data"
	"github.com/ejacobg/moviesapp/internal/jsonlog"
	"github.com/ejacobg/moviesapp/internal/metrics"
	"github.com/ejacobg/moviesapp/internal/view"

	_ "github.com/lib/pq"
)

const version = "1.0.0"

// application holds the dependencies for our HTTP handlers, helpers, and middleware.
type application struct {
	config   config.Config
	logger   *jsonlog.Logger
	store    *data.Store
	catalog  *catalog.Controller
	renderer *view.Renderer
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", os.Getenv("MOVIES_CONFIG"), "Path to a YAML config file")
	displayVersion := flag.Bool("version", false, "Display version and exit")
	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	// The logger is created before the config is read so that config errors are logged as JSON too.
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	if level, ok := jsonlog.ParseLevel(cfg.Log.Level); ok {
		logger = jsonlog.New(os.Stdout, level)
	}

	movies, source, err := loadMovies(cfg)
	if err != nil {
		logger.PrintFatal(err, map[string]string{"source": source})
	}

	store, err := data.NewStore(movies)
	if err != nil {
		logger.PrintFatal(err, map[string]string{"source": source})
	}
	metrics.StoreRecords.Set(float64(store.Len()))

	logger.PrintInfo("dataset loaded", map[string]string{
		"source":  source,
		"records": fmt.Sprint(store.Len()),
	})

	// A missing page element is fatal; the application does not start without it.
	renderer, err := view.NewRenderer()
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	app := &application{
		config:   cfg,
		logger:   logger,
		store:    store,
		catalog:  catalog.New(store, view.NewTable()),
		renderer: renderer,
	}

	if err := app.serve(); err != nil {
		logger.PrintFatal(err, nil)
	}
}

// loadMovies reads the dataset from exactly one source: PostgreSQL when a DSN
// is configured, otherwise a JSON file, otherwise the embedded default.
func loadMovies(cfg config.Config) ([]data.Movie, string, error) {
	switch {
	case cfg.DB.DSN != "":
		db, err := openDB(cfg)
		if err != nil {
			return nil, "postgres", err
		}
		defer db.Close()
		movies, err := data.MovieModel{DB: db}.GetAll(context.Background())
		return movies, "postgres", err
	case cfg.Dataset != "":
		movies, err := data.LoadFile(cfg.Dataset)
		return movies, cfg.Dataset, err
	default:
		movies, err := data.LoadDefault()
		return movies, "embedded", err
	}
}

// openDB returns a connection pool for the configured DSN, verified with a ping.
func openDB(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.DB.MaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
