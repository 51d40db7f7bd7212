package attack

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var errNoCodes = errors.New("attack requires seeded codes")

type Config struct {
	BaseURL            string
	Codes              []string
	Rate               int
	Duration           time.Duration
	CreateRatio        float64
	Type               string
	Connections        int
	InsecureSkipVerify bool
}

func newTargeter(cfg *Config) (vegeta.Targeter, error) {
	switch cfg.Type {
	case "create":
		return CreateTargeter(cfg.BaseURL), nil
	case "redirect":
		if len(cfg.Codes) == 0 {
			return nil, fmt.Errorf("%s: %w", cfg.Type, errNoCodes)
		}
		return RedirectTargeter(cfg.BaseURL, cfg.Codes), nil
	case "mixed":
		if len(cfg.Codes) == 0 {
			return nil, fmt.Errorf("%s: %w", cfg.Type, errNoCodes)
		}
		return MixedTargeter(cfg.BaseURL, cfg.Codes, cfg.CreateRatio), nil
	default:
		return nil, fmt.Errorf("unknown attack type: %s", cfg.Type)
	}
}

// Run attacks the service and writes a text report to out. Redirects are not
// followed so a redirect attack measures only the lookup.
func Run(ctx context.Context, cfg *Config, out io.Writer) error {
	targeter, err := newTargeter(cfg)
	if err != nil {
		return err
	}

	attacker := vegeta.NewAttacker(
		vegeta.Redirects(vegeta.NoFollow),
		vegeta.KeepAlive(true),
		vegeta.Connections(cfg.Connections),
		vegeta.Timeout(5*time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
		vegeta.TLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}), //nolint:gosec // local benchmarks use self-signed certs
	)

	fmt.Fprintf(out, "Starting %s attack: rate=%d/s duration=%s\n", cfg.Type, cfg.Rate, cfg.Duration)

	var metrics vegeta.Metrics
	results := attacker.Attack(targeter, vegeta.Rate{Freq: cfg.Rate, Per: time.Second}, cfg.Duration, cfg.Type)
	for {
		select {
		case <-ctx.Done():
			attacker.Stop()
			for res := range results {
				metrics.Add(res)
			}
			metrics.Close()
			return vegeta.NewTextReporter(&metrics).Report(out)
		case res, ok := <-results:
			if !ok {
				metrics.Close()
				return vegeta.NewTextReporter(&metrics).Report(out)
			}
			metrics.Add(res)
		}
	}
}
