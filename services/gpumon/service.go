package gpumon

import (
	"context"
	"fmt"
	"gpumon-backend/lib/scrapers/microcenter"
	"gpumon-backend/lib/timezone"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("services/gpumon")

type Service struct {
	store      *Store
	client     microcenter.Client
	classifier Classifier
	cfg        Config
}

func NewService(store *Store, client microcenter.Client, cfg Config) Service {
	return Service{
		store:      store,
		client:     client,
		classifier: NewClassifier(cfg.Brands, cfg.Families),
		cfg:        cfg,
	}
}

func (s Service) scrapeSource(ctx context.Context, src SourceConfig) (int, error) {
	ctx, span := tracer.Start(ctx, "scrapeSource")
	defer span.End()

	doc, err := s.client.FetchSearchPage(ctx, src.Url)
	if err != nil {
		return 0, err
	}
	listings, err := microcenter.ExtractListings(doc)
	if err != nil {
		return 0, err
	}

	stored := 0
	for _, listing := range listings {
		stock, err := microcenter.ParseStock(listing.StockText)
		if err != nil {
			return stored, err
		}
		price, err := microcenter.ParsePrice(listing.PriceText)
		if err != nil {
			return stored, err
		}

		class, err := s.classifier.Classify(microcenter.CleanTitle(listing.Title))
		if err != nil {
			slog.WarnContext(
				ctx, "skipping unclassifiable listing",
				"sku", listing.SKU,
				"title", listing.Title,
				"err", err,
			)
			continue
		}

		s.store.Upsert(Record{
			SKU:        listing.SKU,
			Brand:      class.Brand,
			Family:     class.Family,
			Model:      class.Model,
			MemorySize: class.MemorySize,
			Stock:      stock,
			Price:      price,
		})
		stored++
	}
	return stored, nil
}

// RunCycle scrapes every configured source in order, with a courtesy
// pause between hits on the same site. any error abandons the rest of
// the cycle, upserts already applied stay in the store.
func (s Service) RunCycle(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "RunCycle")
	defer span.End()

	for i, src := range s.cfg.Sources {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(s.cfg.SourceDelaySeconds) * time.Second):
			}
		}

		stored, err := s.scrapeSource(ctx, src)
		if err != nil {
			return fmt.Errorf("source %s: %w", src.Name, err)
		}
		slog.InfoContext(ctx, "scraped source", "source", src.Name, "records", stored)
	}

	if s.cfg.EvictAfterMinutes > 0 {
		cutoff := timezone.Now().Add(-time.Duration(s.cfg.EvictAfterMinutes) * time.Minute)
		if evicted := s.store.EvictOlderThan(cutoff); evicted > 0 {
			slog.InfoContext(ctx, "evicted stale records", "count", evicted)
		}
	}

	return nil
}

// Daemon runs scrape cycles on minute boundaries aligned to the
// configured interval until ctx is done. a failed cycle never stops
// the loop, the next boundary simply gets a fresh attempt.
func (s Service) Daemon(ctx context.Context) {
	for {
		next := NextWake(timezone.Now(), s.cfg.IntervalMinutes)
		timer := time.NewTimer(next.Sub(timezone.Now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		start := timezone.Now()
		err := s.RunCycle(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "scrape cycle failed", "err", err)
			continue
		}
		slog.InfoContext(
			ctx, "scrape cycle finished",
			"took", timezone.Now().Sub(start).String(),
			"records", s.store.Len(),
		)
	}
}

func (s Service) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprint(w, RenderMetrics(s.store.Snapshot()))
}
