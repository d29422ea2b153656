package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/valkey-io/valkey-go"
)

// ChannelPrefix namespaces the per-user pub/sub channels.
const ChannelPrefix = "hackmate:dm:"

// Channel returns the pub/sub channel carrying events for userID.
func Channel(userID string) string {
	return ChannelPrefix + userID
}

// ValkeyPublisher publishes events on per-user Valkey channels.
type ValkeyPublisher struct {
	client valkey.Client
}

// NewValkeyPublisher connects to the Valkey server at addr.
func NewValkeyPublisher(addr string) (*ValkeyPublisher, error) {
	client, err := valkey.NewClient(valkey.ClientOption{InitAddress: []string{addr}})
	if err != nil {
		return nil, fmt.Errorf("connect valkey %s: %w", addr, err)
	}
	return &ValkeyPublisher{client: client}, nil
}

func (p *ValkeyPublisher) Notify(ctx context.Context, userIDs []string, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	var errs []error
	for _, id := range lo.Uniq(userIDs) {
		cmd := p.client.B().Publish().Channel(Channel(id)).Message(string(payload)).Build()
		if err := p.client.Do(ctx, cmd).Error(); err != nil {
			errs = append(errs, fmt.Errorf("publish %s: %w", Channel(id), err))
		}
	}
	return errors.Join(errs...)
}

// Close releases the underlying connection pool.
func (p *ValkeyPublisher) Close() {
	p.client.Close()
}
