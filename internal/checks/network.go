package checks

import (
	"context"
	"net"
	"strconv"

	"github.com/tmiller/ttscheck/internal/config"
	"github.com/tmiller/ttscheck/internal/validate"
)

// Network checks TCP reachability of the configured endpoints (DNS, GitHub,
// Hugging Face by default). Connectivity problems are warnings only; an
// air-gapped deploy with pre-fetched models is still viable.
func Network(ctx context.Context, col *validate.Collector, cfg *config.Config) {
	d := net.Dialer{Timeout: dialTimeout}
	for _, ep := range cfg.Endpoints {
		addr := net.JoinHostPort(ep.Host, strconv.Itoa(ep.Port))
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			col.Record(validate.CategoryNetwork, ep.Name, validate.StatusWarn,
				"Connection failed", err.Error())
			continue
		}
		conn.Close()
		col.Record(validate.CategoryNetwork, ep.Name, validate.StatusPass,
			"Connection successful", addr)
	}
}
