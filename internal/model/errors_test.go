package model

import (
	"encoding/json"
	"errors"
	"os"
	"testing"
)

func TestCLIError_JSON(t *testing.T) {
	err := Wrap(ECReadError, "bad", os.ErrInvalid)
	ce, ok := err.(CLIError)
	if !ok {
		t.Fatalf("wrap did not return CLIError")
	}
	raw := ce.JSON()
	var decoded map[string]string
	if json.Unmarshal([]byte(raw), &decoded) != nil {
		t.Fatalf("json unmarshal failed")
	}
	if decoded["code"] != string(ECReadError) {
		t.Fatalf("wrong code json: %v", decoded)
	}
	if decoded["detail"] != os.ErrInvalid.Error() {
		t.Fatalf("wrong detail json: %v", decoded)
	}
}

func TestCLIError_Error(t *testing.T) {
	err := Wrap(ECNoMatch, "pattern missing", ErrNoMatchFound)
	if err.Error() != "pattern missing: pattern not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	bare := CLIError{Code: ECUnknown, Message: "boom"}
	if bare.Error() != "boom" {
		t.Fatalf("unexpected bare message: %q", bare.Error())
	}
}

func TestCLIError_Unwrap(t *testing.T) {
	err := Wrap(ECNoMatch, "pattern missing", ErrNoMatchFound)

	if !errors.Is(err, ErrNoMatchFound) {
		t.Fatal("errors.Is must reach the wrapped sentinel")
	}

	var ce CLIError
	if !errors.As(err, &ce) {
		t.Fatal("errors.As must extract the CLIError")
	}
	if ce.Code != ECNoMatch {
		t.Fatalf("wrong code: %s", ce.Code)
	}

	if Wrap(ECUnknown, "no inner", nil).(CLIError).Unwrap() != nil {
		t.Fatal("nil inner must stay nil")
	}
}
