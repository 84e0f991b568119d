package forms_test

import (
	"context"
	"sync"

	"github.com/kgnconstruction/kgnbackend/models"
)

type insertCall struct {
	Table  string
	Row    models.Row
	CtxErr error
}

// fakeClient records every write. started and release, when set, let a test
// hold a write in flight.
type fakeClient struct {
	mu      sync.Mutex
	calls   []insertCall
	err     error
	panicV  any
	started chan struct{}
	release chan struct{}
}

func (c *fakeClient) Insert(ctx context.Context, table string, row models.Row) (models.StoredRecord, error) {
	c.mu.Lock()
	c.calls = append(c.calls, insertCall{Table: table, Row: row, CtxErr: ctx.Err()})
	c.mu.Unlock()

	if c.started != nil {
		c.started <- struct{}{}
	}
	if c.release != nil {
		<-c.release
	}
	if c.panicV != nil {
		panic(c.panicV)
	}
	if c.err != nil {
		return models.StoredRecord{}, c.err
	}
	return models.StoredRecord{Table: table, ID: "42", Fields: row}, nil
}

func (c *fakeClient) Calls() []insertCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]insertCall(nil), c.calls...)
}
