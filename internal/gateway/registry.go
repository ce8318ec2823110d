package gateway

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Registry maps method codes to gateways. It is built once at startup and
// is safe for concurrent reads.
type Registry struct {
	gateways map[string]PaymentGateway
}

// NewRegistry folds the given adapters into a registry keyed by
// GatewayType. Two adapters reporting the same type is a startup error.
func NewRegistry(gateways ...PaymentGateway) (*Registry, error) {
	byType := make(map[string]PaymentGateway, len(gateways))
	for _, gw := range gateways {
		key := gw.GatewayType()
		if _, exists := byType[key]; exists {
			return nil, fmt.Errorf("duplicate gateway type %q", key)
		}
		byType[key] = gw
	}

	r := &Registry{gateways: byType}
	log.Info().Strs("gateways", r.Types()).Msg("payment gateway registry initialized")
	return r, nil
}

// Lookup resolves a method code case-insensitively.
func (r *Registry) Lookup(paymentMethod string) (PaymentGateway, bool) {
	gw, ok := r.gateways[strings.ToUpper(paymentMethod)]
	return gw, ok
}

// Types returns the registered method codes in sorted order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.gateways))
	for key := range r.gateways {
		types = append(types, key)
	}
	sort.Strings(types)
	return types
}
