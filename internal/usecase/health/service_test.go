package health

import (
	"context"
	"errors"
	"testing"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

func TestCheck_Healthy(t *testing.T) {
	svc := New(&mockPinger{})

	rep := svc.Check(context.Background())
	if rep.Status != Healthy {
		t.Errorf("expected %s, got %s", Healthy, rep.Status)
	}
	if rep.Checks["store"] != CheckOK {
		t.Errorf("expected store check ok, got %s", rep.Checks["store"])
	}
}

func TestCheck_Degraded(t *testing.T) {
	svc := New(&mockPinger{err: errors.New("connection refused")})

	rep := svc.Check(context.Background())
	if rep.Status != Degraded {
		t.Errorf("expected %s, got %s", Degraded, rep.Status)
	}
	if rep.Checks["store"] != CheckError {
		t.Errorf("expected store check error, got %s", rep.Checks["store"])
	}
}
