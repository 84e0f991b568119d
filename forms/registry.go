package forms

import (
	"slices"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zekroTJA/timedmap"
)

// Instance is a visitor's form together with the notifications it raised
// since the last render.
type Instance struct {
	*Form
	Notices *NotificationQueue
}

// Registry hands out one form instance per visitor session and definition.
// Instances expire after ttl without use.
type Registry struct {
	mu     sync.Mutex
	items  *timedmap.TimedMap
	ttl    time.Duration
	client SubmissionClient
	opts   []Option
}

func NewRegistry(client SubmissionClient, ttl time.Duration, opts ...Option) *Registry {
	cleanup := ttl / 2
	if cleanup < time.Second {
		cleanup = time.Second
	}
	return &Registry{
		items:  timedmap.New(cleanup),
		ttl:    ttl,
		client: client,
		opts:   opts,
	}
}

// Get returns the session's instance of def, creating it on first use, and
// pushes its expiry back.
func (r *Registry) Get(sessionID string, def *Definition) *Instance {
	key := sessionID + "/" + def.Slug

	r.mu.Lock()
	defer r.mu.Unlock()

	if inst, ok := r.items.GetValue(key).(*Instance); ok {
		if err := r.items.SetExpires(key, r.ttl); err != nil {
			// Expired between the lookup and the refresh; keep the visitor's form.
			log.WithError(err).WithField("key", key).Debug("Re-registering form instance")
			r.items.Set(key, inst, r.ttl)
		}
		return inst
	}

	queue := &NotificationQueue{}
	opts := append(slices.Clone(r.opts), WithLogger(log.WithField("session", sessionID)))
	inst := &Instance{
		Form:    NewForm(def, r.client, queue, opts...),
		Notices: queue,
	}
	r.items.Set(key, inst, r.ttl)
	return inst
}

func (r *Registry) Len() int { return r.items.Size() }

func (r *Registry) Close() { r.items.StopCleaner() }
