package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/saviobatista/route-builder/internal/aerodatabox"
	"github.com/saviobatista/route-builder/internal/config"
	"github.com/saviobatista/route-builder/internal/nats"
	"github.com/saviobatista/route-builder/internal/prompt"
	"github.com/saviobatista/route-builder/internal/routes"
	"github.com/saviobatista/route-builder/internal/stats"
	"github.com/saviobatista/route-builder/internal/storage"
	"github.com/saviobatista/route-builder/internal/types"
)

// RoutePublisher interface for testability
type RoutePublisher interface {
	PublishRoutes(msg *types.RouteTableMessage) error
	Close()
}

// newPublisher connects the route publisher; replaced in tests
var newPublisher = func(url string) (RoutePublisher, error) {
	return nats.New(url)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := runRoutes(ctx, os.Stdin, os.Stdout)
	stop()
	if err != nil {
		log.Printf("Route builder failed: %v", err)
		os.Exit(1)
	}
}

// runRoutes loads configuration and runs one interactive collection
func runRoutes(ctx context.Context, in io.Reader, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	return run(ctx, cfg, prompt.New(in, out), out)
}

// request holds the validated answers of one run
type request struct {
	apiKey    string
	airport   string
	start     time.Time
	folder    string
	writeJSON bool
	writeTxt  bool
}

func collect(p *prompt.Prompter) (*request, error) {
	var (
		req request
		err error
	)

	if req.apiKey, err = p.APIKey(); err != nil {
		return nil, err
	}
	if req.airport, err = p.AirportCode(); err != nil {
		return nil, err
	}
	if req.start, err = p.StartDate(); err != nil {
		return nil, err
	}
	if req.folder, err = p.OutputFolder(); err != nil {
		return nil, err
	}
	if req.writeJSON, err = p.YesNo(fmt.Sprintf("Write %s_combined_schedule.json", req.airport)); err != nil {
		return nil, err
	}
	if req.writeTxt, err = p.YesNo(fmt.Sprintf("Write %s_routes.txt", req.airport)); err != nil {
		return nil, err
	}

	return &req, nil
}

func run(ctx context.Context, cfg *config.Config, p *prompt.Prompter, out io.Writer) error {
	fmt.Fprintln(out, "== Aerodatabox 7-day fetch and route builder ==")

	req, err := collect(p)
	if err != nil {
		return err
	}

	if !req.writeJSON && !req.writeTxt {
		fmt.Fprintln(out, "Nothing to write. Choose at least one output format.")
		return nil
	}

	runID := uuid.New().String()
	st := stats.New()

	client := aerodatabox.New(cfg, req.apiKey)
	client.SetStats(st)

	end := types.WindowEnd(req.start)
	log.Printf("Fetching 7 days (%s to %s) for %s...",
		req.start.Format(types.DateLayout), end.Format(types.DateLayout), req.airport)

	fetchStart := time.Now()
	combined, err := client.FetchWeek(ctx, types.CodeTypeFor(req.airport), req.airport, req.start)
	st.AddFetchTime(time.Since(fetchStart))
	if err != nil {
		return err
	}

	store := storage.New(req.folder, req.airport)

	if req.writeJSON {
		path, err := store.WriteCombined(combined)
		if err != nil {
			return fmt.Errorf("failed to write combined schedule: %w", err)
		}
		log.Printf("Saved combined JSON -> %s", path)
	}

	if req.writeTxt {
		table := routes.Extract(combined, types.HomeICAO(req.airport))
		st.SetLegsScanned(uint64(routes.LegCount(combined)))
		st.SetRoutes(uint64(len(table)))

		path, err := store.WriteRoutes(table)
		if err != nil {
			return fmt.Errorf("failed to write routes: %w", err)
		}
		log.Printf("Wrote %d routes -> %s", len(table), path)

		if cfg.NATSURL != "" {
			publishRoutes(cfg.NATSURL, &types.RouteTableMessage{
				RunID:       runID,
				Airport:     req.airport,
				StartDate:   req.start.Format(types.DateLayout),
				EndDate:     end.Format(types.DateLayout),
				GeneratedAt: time.Now().UTC(),
				Routes:      storage.RouteLines(table),
			})
		}
	}

	log.Printf("Run %s finished\n%s", runID, st)
	return nil
}

// publishRoutes sends the route table downstream. Failures are logged only:
// the files already written are the primary output.
func publishRoutes(url string, msg *types.RouteTableMessage) {
	publisher, err := newPublisher(url)
	if err != nil {
		log.Printf("Failed to create NATS client: %v", err)
		return
	}
	defer publisher.Close()

	if err := publisher.PublishRoutes(msg); err != nil {
		log.Printf("Failed to publish routes: %v", err)
		return
	}
	log.Printf("Published %d routes to %s", len(msg.Routes), nats.SubjectRouteTable)
}
