package services

import (
	"context"
	"encoding/json"
	"testing"
)

type call struct {
	Method string
	Path   string
	Body   string
}

// fakeClient replies with canned JSON keyed by "METHOD path" and records
// every call with its encoded body.
type fakeClient struct {
	t       *testing.T
	replies map[string]string
	err     error
	calls   []call
}

func newFakeClient(t *testing.T) *fakeClient {
	return &fakeClient{t: t, replies: map[string]string{}}
}

func (f *fakeClient) Do(ctx context.Context, method, path string, body, out any) error {
	c := call{Method: method, Path: path}
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			f.t.Fatalf("marshal body: %v", err)
		}
		c.Body = string(b)
	}
	f.calls = append(f.calls, c)
	if f.err != nil {
		return f.err
	}
	if reply, ok := f.replies[method+" "+path]; ok && out != nil {
		if err := json.Unmarshal([]byte(reply), out); err != nil {
			f.t.Fatalf("unmarshal reply: %v", err)
		}
	}
	return nil
}

func (f *fakeClient) last() call {
	if len(f.calls) == 0 {
		f.t.Fatalf("no calls recorded")
	}
	return f.calls[len(f.calls)-1]
}
