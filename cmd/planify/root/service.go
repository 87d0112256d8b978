package root

import (
	"fmt"
	"strings"
	"time"

	"github.com/Nazish-kiran/planify/internal/config"
	"github.com/Nazish-kiran/planify/internal/dateutil"
	"github.com/Nazish-kiran/planify/internal/planner"
	"github.com/Nazish-kiran/planify/internal/storage"
)

func openService() (*planner.Service, error) {
	cfg, err := config.Load(time.Now())
	if err != nil {
		return nil, err
	}
	epoch, err := cfg.EpochTime()
	if err != nil {
		return nil, fmt.Errorf("config epoch: %w", err)
	}
	return planner.NewService(storage.New(cfg.StatePath), epoch, cfg.HorizonYears), nil
}

// resolveDate parses a YYYY-MM-DD argument, defaulting to today.
func resolveDate(arg string) (time.Time, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return dateutil.Midnight(time.Now()), nil
	}
	return dateutil.ParseKey(arg)
}
