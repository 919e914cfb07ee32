package workerproc

import (
	"errors"
	"testing"
)

func TestParseMessage(t *testing.T) {
	msg, meta, err := ParseMessage(`{"auditId":"audit-1","requestId":"req-1","version":1}`)
	if err != nil {
		t.Fatalf("ParseMessage: %v", err)
	}
	if msg.AuditID != "audit-1" || msg.RequestID != "req-1" {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if meta.BodyLen == 0 || meta.BodySHA == "" {
		t.Fatalf("expected populated meta, got %+v", meta)
	}
}

func TestParseMessageEmptyBody(t *testing.T) {
	_, _, err := ParseMessage("   ")
	var emptyErr ErrEmptyBody
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected ErrEmptyBody, got %v", err)
	}
}

func TestParseMessageDecodeFailure(t *testing.T) {
	_, meta, err := ParseMessage("{broken")
	var decodeErr ErrDecode
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if meta.BodyLen != len("{broken") {
		t.Fatalf("unexpected meta: %+v", meta)
	}
}

func TestParseMessageMissingAuditID(t *testing.T) {
	_, _, err := ParseMessage(`{"requestId":"req-1"}`)
	var missingErr ErrMissingAuditID
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected ErrMissingAuditID, got %v", err)
	}
	if missingErr.RequestID != "req-1" {
		t.Fatalf("expected request id to be carried, got %+v", missingErr)
	}
}
