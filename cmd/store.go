package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sponsorlane/outreach-cli/internal/store"
	"github.com/sponsorlane/outreach-cli/pkg/llm"
)

// initStore opens the configured backend and runs migrations. Callers own
// the returned store and must Close it.
func initStore(ctx context.Context) (store.Store, error) {
	var (
		st  store.Store
		err error
	)
	switch cfg.Store.Driver {
	case "sqlite":
		dsn := cfg.Store.DatabaseURL
		if dsn == "" {
			dsn = "outreach.db"
		}
		st, err = store.NewSQLite(dsn)
	case "postgres":
		st, err = store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, err
	}
	return st, nil
}

// initLLM builds the generation client. Provider "none" yields a client
// whose calls fail with the not-configured sentinel, which downstream code
// treats as a valid offline mode.
func initLLM() llm.Client {
	return llm.NewClient(cfg.LLM.Provider, cfg.LLM.Key,
		llm.WithBaseURL(cfg.LLM.BaseURL),
		llm.WithModel(cfg.LLM.Model),
		llm.WithTimeout(time.Duration(cfg.LLM.TimeoutSecs)*time.Second),
	)
}
