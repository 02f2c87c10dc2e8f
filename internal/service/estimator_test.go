package service

import (
	"errors"
	"math"
	"testing"

	"github.com/genix/genix-go/internal/model"
	"github.com/genix/genix-go/internal/secret"
)

func TestCheck_LowercaseInput(t *testing.T) {
	svc := NewEstimatorService()
	resp, err := svc.Check(model.EstimateRequest{Input: "lowercaseonly"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 13 * math.Log2(26)
	if math.Abs(resp.Bits-want) > 1e-6 {
		t.Errorf("expected %f bits, got %f", want, resp.Bits)
	}
	// 13 * log2(26) ≈ 61.1 bits
	if resp.Verdict != "weak" {
		t.Errorf("expected verdict \"weak\" for %.2f bits, got %q", resp.Bits, resp.Verdict)
	}
}

func TestCheck_PassphraseStyle(t *testing.T) {
	svc := NewEstimatorService()
	resp, err := svc.Check(model.EstimateRequest{
		Input: "apple-banana-orange",
		Style: "passphrase",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 3 * math.Log2(2048)
	if math.Abs(resp.Bits-want) > 1e-6 {
		t.Errorf("expected %f bits, got %f", want, resp.Bits)
	}
}

func TestCheck_UnknownStyle(t *testing.T) {
	svc := NewEstimatorService()
	_, err := svc.Check(model.EstimateRequest{Input: "whatever", Style: "bogus"})
	if !errors.Is(err, secret.ErrUnknownStyle) {
		t.Errorf("expected ErrUnknownStyle, got %v", err)
	}
}

func TestProfile_CharacterInput(t *testing.T) {
	svc := NewEstimatorService()
	resp, err := svc.Profile(model.EstimateRequest{Input: "Passw0rd!"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.CharsetSize != 94 {
		t.Errorf("expected charset size 94, got %d", resp.CharsetSize)
	}
	if !resp.HasLower || !resp.HasUpper || !resp.HasDigit || !resp.HasSymbol {
		t.Error("expected all class flags set")
	}
	if resp.WordCount != nil || resp.AssumedWordlistSize != nil {
		t.Error("passphrase fields should be absent for character input")
	}
	if resp.Verdict == "" {
		t.Error("expected a verdict")
	}
}

func TestProfile_Passphrase(t *testing.T) {
	svc := NewEstimatorService()
	resp, err := svc.Profile(model.EstimateRequest{
		Input: "tree-cloud-river",
		Style: "passphrase",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.WordCount == nil || *resp.WordCount != 3 {
		t.Fatalf("expected word count 3, got %v", resp.WordCount)
	}
	if resp.AssumedWordlistSize == nil || *resp.AssumedWordlistSize != 2048 {
		t.Fatalf("expected assumed wordlist size 2048, got %v", resp.AssumedWordlistSize)
	}
	if resp.HasLower || resp.HasUpper || resp.HasDigit || resp.HasSymbol {
		t.Error("class flags should be false for passphrase input")
	}
}

func TestProfile_EmptyInputDefaultStyle(t *testing.T) {
	// Empty input falls back to the random style hint: 0 bits, no error.
	svc := NewEstimatorService()
	resp, err := svc.Profile(model.EstimateRequest{Input: ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Bits != 0 {
		t.Errorf("expected 0 bits, got %f", resp.Bits)
	}
	if resp.Verdict != "very weak" {
		t.Errorf("expected verdict \"very weak\", got %q", resp.Verdict)
	}
}
